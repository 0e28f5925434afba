package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmarquez/shopcore-backend/api/controllers"
	"github.com/rmarquez/shopcore-backend/api/middleware"
	checkoutsvc "github.com/rmarquez/shopcore-backend/internal/checkout"
	"github.com/rmarquez/shopcore-backend/internal/store"
	"github.com/rmarquez/shopcore-backend/pkg/config"
	"github.com/rmarquez/shopcore-backend/pkg/logger"
	"github.com/rmarquez/shopcore-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	st *store.Store,
	checkoutService *checkoutsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// public storefront surface
		r.Get("/products", controllers.ListProducts(st, logg))
		r.Get("/products/{productID}", controllers.GetProduct(st, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(st, logg))
			r.Post("/register", controllers.AuthRegister(st, logg))
			r.Post("/logout", controllers.AuthLogout(st, logg))
		})

		// session-scoped surface
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(st, logg))

			r.Get("/session", controllers.SessionShow(st, logg))
			r.Get("/orders", controllers.MyOrders(st, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartShow(st, logg))
				r.Post("/", controllers.CartAdd(st, logg))
				r.Delete("/", controllers.CartClear(st, logg))
				r.Get("/quote", controllers.CartQuote(checkoutService, logg))
				r.Patch("/{productID}", controllers.CartUpdateQuantity(st, logg))
				r.Delete("/{productID}", controllers.CartRemove(st, logg))
			})

			r.Post("/checkout", controllers.CheckoutPlaceOrder(checkoutService, logg))
		})
	})

	// seller console
	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.RequireSeller(st, logg))

		r.Get("/dashboard", controllers.AdminDashboard(st, logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(st, logg))
			r.Patch("/{productID}", controllers.AdminUpdateProduct(st, logg))
			r.Delete("/{productID}", controllers.AdminDeleteProduct(st, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(st, logg))
			r.Patch("/{orderID}/status", controllers.AdminUpdateOrderStatus(st, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminListUsers(st, logg))
			r.Post("/", controllers.AdminCreateUser(st, logg))
			r.Delete("/{userID}", controllers.AdminDeleteUser(st, logg))
		})
	})

	return r
}
