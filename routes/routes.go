package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Team-Hexagon-607-2/fast-grocer-server/handlers"
	customMiddleware "github.com/Team-Hexagon-607-2/fast-grocer-server/middleware"
)

// SetupRoutes wires the whole HTTP surface. Three tiers: public, bearer
// token required, and admin-gated on top of the token.
func SetupRoutes(e *echo.Echo, h *handlers.Handler) {
	verifyJWT := customMiddleware.VerifyJWT(h.JWTSecret)
	verifyAdmin := customMiddleware.VerifyAdmin(h.Users)

	// Liveness and metrics
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Fast Grocer server is running")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public catalog
	e.GET("/products", h.GetProducts)
	e.GET("/products/page", h.GetProductPage)
	e.GET("/products/:id", h.GetProduct)
	e.GET("/categories", h.GetCategories)
	e.GET("/search", h.SearchProducts)
	e.GET("/autocomplete", h.AutocompleteProducts)

	// Public users and auth
	e.POST("/users", h.SignUp)
	e.POST("/login", h.Login)
	e.GET("/jwt/:email", h.IssueToken)
	e.GET("/users/admin/:email", h.IsAdmin)
	e.GET("/users/deliverymen/:email", h.IsDeliveryman)
	e.GET("/users/buyers/:email", h.IsBuyer)

	// Public reviews and coupons
	e.POST("/review", h.CreateReview)
	e.GET("/reviews", h.GetReviews)
	e.GET("/coupons", h.GetCoupons)

	// Token-gated self-service
	e.POST("/wishlist", h.AddWishlistItem, verifyJWT)
	e.GET("/wishlist/:email", h.GetWishlist, verifyJWT)
	e.DELETE("/wishlist/:id", h.DeleteWishlistItem, verifyJWT)

	e.POST("/order", h.CreateOrder, verifyJWT)
	e.GET("/order/:email", h.GetBuyerOrders, verifyJWT)
	e.GET("/delivery-order/:email", h.GetAssignedOrders, verifyJWT)
	e.GET("/delivered-orders/:email", h.GetDeliveredOrders, verifyJWT)
	e.PATCH("/order/pick/:id", h.PickOrder, verifyJWT)
	e.PATCH("/order/status/:id", h.SetOrderStatus, verifyJWT)
	e.PATCH("/order/deliver/:id", h.DeliverOrder, verifyJWT)
	e.PATCH("/order/cancel/:id", h.CancelOrder, verifyJWT)
	e.PATCH("/order/return/:id", h.RequestReturn, verifyJWT)

	e.PUT("/users/:email", h.UpdateProfile, verifyJWT)
	e.PATCH("/users/availability/:email", h.SetAvailability, verifyJWT)

	e.POST("/create-payment-intent", h.CreatePaymentIntent, verifyJWT)

	// Admin-gated
	e.POST("/products", h.CreateProduct, verifyJWT, verifyAdmin)
	e.PUT("/products/:id", h.UpdateProduct, verifyJWT, verifyAdmin)
	e.DELETE("/products/:id", h.DeleteProduct, verifyJWT, verifyAdmin)
	e.POST("/categories", h.CreateCategory, verifyJWT, verifyAdmin)

	e.GET("/users", h.GetUsers, verifyJWT, verifyAdmin)
	e.GET("/buyers", h.GetBuyers, verifyJWT, verifyAdmin)
	e.GET("/deliverymen", h.GetDeliverymen, verifyJWT, verifyAdmin)
	e.GET("/users/:id", h.GetUser, verifyJWT, verifyAdmin)
	e.DELETE("/users/:id", h.DeleteUser, verifyJWT, verifyAdmin)
	e.PATCH("/users/verify/:id", h.VerifyUser, verifyJWT, verifyAdmin)
	e.PATCH("/users/work-permit/:id", h.SetWorkPermit, verifyJWT, verifyAdmin)

	e.GET("/orders", h.GetAllOrders, verifyJWT, verifyAdmin)
	e.PATCH("/order/assign/:id", h.AssignOrder, verifyJWT, verifyAdmin)
	e.PATCH("/order/return/resolve/:id", h.ResolveReturn, verifyJWT, verifyAdmin)

	e.POST("/coupon", h.CreateCoupon, verifyJWT, verifyAdmin)
	e.DELETE("/coupon/:id", h.DeleteCoupon, verifyJWT, verifyAdmin)
}
