package controllers

import (
	"net/http"

	"github.com/rmarquez/shopcore-backend/api/responses"
	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// AdminDashboard folds the live collections into the dashboard stats.
func AdminDashboard(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Stats())
	}
}
