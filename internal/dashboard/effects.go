package dashboard

import "sync"

// Notifier shows transient toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator changes the page. Push is a client-side navigation; Assign is a
// full page load.
type Navigator interface {
	Push(path string)
	Assign(path string)
}

// Refresher re-fetches server data for the current view.
type Refresher interface {
	Refresh()
}

// Clipboard writes text to the user's clipboard.
type Clipboard interface {
	Write(text string)
}

// Effects bundles the side effects a component may trigger.
type Effects struct {
	Notifier
	Navigator
	Refresher
	Clipboard
}

// Toast is a recorded notification.
type Toast struct {
	Error   bool
	Message string
}

// Recorder is an Effects implementation that remembers what happened. The
// web layer replays it into response headers.
type Recorder struct {
	mu        sync.Mutex
	Toasts    []Toast
	Pushed    []string
	Assigned  []string
	Refreshes int
	Copied    []string
}

// Effects returns r wired into every effect slot.
func (r *Recorder) Effects() Effects {
	return Effects{Notifier: r, Navigator: r, Refresher: r, Clipboard: r}
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Toasts = append(r.Toasts, Toast{Message: msg})
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Toasts = append(r.Toasts, Toast{Error: true, Message: msg})
}

func (r *Recorder) Push(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Pushed = append(r.Pushed, path)
}

func (r *Recorder) Assign(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Assigned = append(r.Assigned, path)
}

func (r *Recorder) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Refreshes++
}

func (r *Recorder) Write(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Copied = append(r.Copied, text)
}
