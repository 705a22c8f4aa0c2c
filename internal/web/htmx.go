package web

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/storeadmin/internal/dashboard"
)

type toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// applyEffects turns what a dashboard component did into htmx response
// headers. Push becomes HX-Location, Assign becomes HX-Redirect, refreshes
// fire a "refresh" event that list tables listen for, and toasts and
// clipboard writes are client events handled by the base layout script.
func applyEffects(w http.ResponseWriter, rec *dashboard.Recorder) {
	events := map[string]any{}
	if len(rec.Toasts) > 0 {
		items := make([]toast, 0, len(rec.Toasts))
		for _, t := range rec.Toasts {
			level := "success"
			if t.Error {
				level = "error"
			}
			items = append(items, toast{Level: level, Message: t.Message})
		}
		events["toast"] = map[string]any{"items": items}
	}
	if n := len(rec.Copied); n > 0 {
		events["copy"] = map[string]string{"text": rec.Copied[n-1]}
	}
	if rec.Refreshes > 0 {
		events["refresh"] = true
	}
	if len(events) > 0 {
		raw, err := json.Marshal(events)
		if err == nil {
			w.Header().Set("HX-Trigger", string(raw))
		}
	}

	switch {
	case len(rec.Assigned) > 0:
		w.Header().Set("HX-Redirect", rec.Assigned[len(rec.Assigned)-1])
	case len(rec.Pushed) > 0:
		w.Header().Set("HX-Location", rec.Pushed[len(rec.Pushed)-1])
	}
}
