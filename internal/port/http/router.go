package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/port/http/middleware"
)

func NewRouter(
	orderHandler *OrderHandler,
	cartHandler *CartHandler,
	listingHandler *ListingHandler,
	wishlistHandler *WishlistHandler,
	jwtSecret string,
	log logger.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(authRouter chi.Router) {
		authRouter.Use(middleware.JWTAuth(jwtSecret, log))

		authRouter.Post("/api/orders", orderHandler.CreateOrder)
		authRouter.Get("/api/orders", orderHandler.ListOrders)
		authRouter.Get("/api/orders/{orderId}", orderHandler.GetOrder)
		authRouter.Get("/api/orders/{orderId}/receipt", orderHandler.GetOrderReceipt)

		authRouter.Get("/api/cart", cartHandler.GetCart)
		authRouter.Post("/api/cart", cartHandler.SetLine)
		authRouter.Put("/api/cart/{phoneId}", cartHandler.UpdateLine)
		authRouter.Delete("/api/cart/{phoneId}", cartHandler.RemoveLine)

		authRouter.Get("/api/phones/{id}", listingHandler.GetListing)
		authRouter.Post("/api/phones/{id}/reviews", listingHandler.SubmitReview)
		authRouter.Patch("/api/phones/{id}/reviews/{reviewIndex}/hidden", listingHandler.SetReviewHidden)

		authRouter.Get("/api/wishlist", wishlistHandler.List)
		authRouter.Post("/api/wishlist/{phoneId}", wishlistHandler.Add)
		authRouter.Delete("/api/wishlist/{phoneId}", wishlistHandler.Remove)
	})

	return r
}
