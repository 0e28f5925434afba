package middleware

import (
	"net/http"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/enums"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// RequireSession rejects requests while nobody is signed in. The session
// is the store's single process-wide slot, so there is no token to parse;
// the guard just reads the current snapshot.
func RequireSession(st *store.Store, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := st.Session()
			if session == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
				return
			}

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithUserID(ctx, session.ID)
				ctx = logg.WithRole(ctx, session.Role.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSeller additionally rejects customer sessions. This is the
// admin console's access policy, not a store invariant.
func RequireSeller(st *store.Store, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := st.Session()
			if session == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required"))
				return
			}
			if session.Role != enums.RoleSeller {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "seller account required"))
				return
			}

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithUserID(ctx, session.ID)
				ctx = logg.WithRole(ctx, session.Role.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
