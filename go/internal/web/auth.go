package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mcdev12/gridiron/go/internal/metrics"
	"github.com/mcdev12/gridiron/go/internal/session"
	"github.com/mcdev12/gridiron/go/internal/users"
)

type signupForm struct {
	Username string
	Email    string
	ImageURL string
	Error    string
}

type loginForm struct {
	Username string
	Error    string
}

func (s *Server) handleSignupForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "users/signup.html", signupForm{})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "users/signup.html", signupForm{Error: "Malformed form"})
		return
	}

	form := signupForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		ImageURL: strings.TrimSpace(r.PostFormValue("image_url")),
	}

	user, err := s.deps.Users.Register(r.Context(), users.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: r.PostFormValue("password"),
		ImageURL: form.ImageURL,
	})
	switch {
	case errors.Is(err, users.ErrValidation):
		form.Error = err.Error()
		s.render(w, r, http.StatusBadRequest, "users/signup.html", form)
		return
	case errors.Is(err, users.ErrConflict):
		flash(r, "danger", "Username/email already taken")
		s.render(w, r, http.StatusConflict, "users/signup.html", form)
		return
	case err != nil:
		s.serverError(w, r, err)
		return
	}

	if sess, ok := session.FromContext(r.Context()); ok {
		s.deps.Sessions.Login(r.Context(), sess, user.ID)
	}
	redirect(w, r, "/")
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "users/login.html", loginForm{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "users/login.html", loginForm{Error: "Malformed form"})
		return
	}

	form := loginForm{Username: strings.TrimSpace(r.PostFormValue("username"))}
	password := r.PostFormValue("password")
	if form.Username == "" || password == "" {
		form.Error = "Username and password are required"
		s.render(w, r, http.StatusBadRequest, "users/login.html", form)
		return
	}

	user, err := s.deps.Users.Authenticate(r.Context(), form.Username, password)
	if err != nil {
		if !errors.Is(err, users.ErrNotAuthenticated) {
			s.serverError(w, r, err)
			return
		}
		metrics.RecordLogin("failure")
		flash(r, "danger", "Invalid username/password!")
		s.render(w, r, http.StatusUnauthorized, "users/login.html", form)
		return
	}

	metrics.RecordLogin("success")
	if sess, ok := session.FromContext(r.Context()); ok {
		s.deps.Sessions.Login(r.Context(), sess, user.ID)
	}
	flash(r, "success", fmt.Sprintf("Welcome back %s!", user.Username))
	redirect(w, r, "/")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok && sess.Authenticated() {
		s.deps.Sessions.Logout(r.Context(), sess)
	}
	flash(r, "success", "Logout successful!")
	redirect(w, r, "/")
}
