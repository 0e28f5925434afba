package controllers

import (
	"net/http"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/api/validators"
	"github.com/rmarquez/shopcore-backend/internal/store"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthLogin signs a user in. Success and failure are a boolean outcome:
// a failed attempt never reveals whether the email or the password was
// wrong.
func AuthLogin(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !st.Login(body.Email, body.Password) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password"))
			return
		}

		responses.WriteSuccess(w, st.Session())
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthRegister creates a customer account and signs it in.
func AuthRegister(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body registerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !st.Register(body.Name, body.Email, body.Password) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "account already exists"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, st.Session())
	}
}

// AuthLogout clears the session unconditionally.
func AuthLogout(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st.Logout()
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// SessionShow returns the signed-in account.
func SessionShow(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := st.Session()
		if session == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
			return
		}
		responses.WriteSuccess(w, session)
	}
}
