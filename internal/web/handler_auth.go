package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/georgemunganga/storeadmin/internal/db"
	"github.com/georgemunganga/storeadmin/internal/modules/auth"
	"github.com/georgemunganga/storeadmin/internal/modules/user"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

type authPage struct {
	layout
	Email  string
	Name   string
	Error  string
	Errors validation.Errors
}

func (s *Server) handleSignInPage(w http.ResponseWriter, r *http.Request) {
	s.logRender(r, s.renderPage(w, authPage{layout: layout{Title: "Sign in"}}, "base.html", "pages/sign_in.html"))
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	in := auth.SignInInput{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
	sess, err := s.svc.Auth.SignIn(r.Context(), in)
	if err != nil {
		page := authPage{layout: layout{Title: "Sign in"}, Email: in.Email}
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			page.Errors = verrs
		case errors.Is(err, auth.ErrInvalidCredentials):
			page.Error = "Invalid email or password."
		default:
			s.fail(w, r, "sign in", err)
			return
		}
		rejectForm(w, r)
		s.logRender(r, s.renderPage(w, page, "base.html", "pages/sign_in.html"))
		return
	}
	auth.SetSessionCookie(w, sess)
	redirect(w, r, "/")
}

func (s *Server) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	s.logRender(r, s.renderPage(w, authPage{layout: layout{Title: "Sign up"}}, "base.html", "pages/sign_up.html"))
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	in := user.RegisterInput{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
	}
	sess, err := s.svc.Auth.SignUp(r.Context(), in)
	if err != nil {
		page := authPage{layout: layout{Title: "Sign up"}, Email: in.Email, Name: in.Name}
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			page.Errors = verrs
		case errors.Is(err, db.ErrDuplicate):
			page.Error = "An account with this email already exists."
		default:
			s.fail(w, r, "sign up", err)
			return
		}
		rejectForm(w, r)
		s.logRender(r, s.renderPage(w, page, "base.html", "pages/sign_up.html"))
		return
	}
	auth.SetSessionCookie(w, sess)
	redirect(w, r, "/")
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	redirect(w, r, "/sign-in")
}
