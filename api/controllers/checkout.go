package controllers

import (
	"net/http"

	"github.com/rmarquez/shopcore-backend/api/responses"
	checkoutsvc "github.com/rmarquez/shopcore-backend/internal/checkout"
	pkgerrors "github.com/rmarquez/shopcore-backend/pkg/errors"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
)

// CheckoutPlaceOrder turns the cart into an order for the signed-in user.
func CheckoutPlaceOrder(svc *checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		order, err := svc.PlaceOrder(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
