package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/api/validators"
	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/enums"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// AdminListUsers lists every account.
func AdminListUsers(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Users())
	}
}

type userCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=customer seller"`
}

// AdminCreateUser adds an account with a selectable role. Email
// uniqueness is deliberately not enforced, matching the store contract.
func AdminCreateUser(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body userCreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseRole(body.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		user := st.AddUser(store.UserInput{
			Email:    body.Email,
			Name:     body.Name,
			Password: &body.Password,
			Role:     role,
		})

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// AdminDeleteUser removes an account. Seller accounts are refused at
// this layer; the store operation itself stays unrestricted.
func AdminDeleteUser(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "userID")

		var target *store.User
		for _, u := range st.Users() {
			if u.ID == id {
				user := u
				target = &user
				break
			}
		}
		if target == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
			return
		}
		if target.Role == enums.RoleSeller {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "seller accounts cannot be deleted"))
			return
		}

		st.DeleteUser(id)
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
