package routes

import (
	"net/http"

	"bazario/auth"
	"bazario/middleware"
	"bazario/orders"
	"bazario/products"
	"bazario/ratelim"
	"bazario/reviews"
	"bazario/shops"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddShopRoutes(router, rateLimiter)
	AddOrderRoutes(router, rateLimiter)
	AddProductRoutes(router, rateLimiter)
	AddStaticRoutes(router)
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/products/*filepath", http.Dir("static/products"))
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/v2/user/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/v2/user/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/v2/user/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/v2/user/token/refresh", rateLimiter.Limit(auth.RefreshToken))
}

func AddShopRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/v2/shop/create-shop", rateLimiter.Limit(shops.CreateShop))
	router.POST("/api/v2/shop/login-shop", rateLimiter.Limit(shops.LoginShop))
	router.GET("/api/v2/shop/get-shop-info/:id", shops.GetShopInfo)
}

func AddOrderRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/v2/order/create-order", rateLimiter.Limit(middleware.Authenticate(orders.CreateOrder)))
	router.GET("/api/v2/order/get-all-orders/:userId", middleware.Authenticate(orders.GetAllOrders))
	router.GET("/api/v2/order/get-seller-all-orders/:shopId", middleware.RequireRole("seller", orders.GetSellerAllOrders))
	router.PUT("/api/v2/order/update-order-status/:id", middleware.RequireRole("seller", orders.UpdateOrderStatus))
	router.PUT("/api/v2/order/order-refund/:id", middleware.Authenticate(orders.OrderRefund))
	router.PUT("/api/v2/order/order-refund-success/:id", middleware.RequireRole("seller", orders.OrderRefundSuccess))
	router.GET("/api/v2/order/admin-all-orders", middleware.RequireRole("admin", orders.AdminAllOrders))
	router.GET("/api/v2/order/calculate-shop-sales/:shopId", middleware.Authenticate(orders.CalculateShopSales))
	router.GET("/api/v2/order/receipt/:id", middleware.Authenticate(orders.OrderReceipt))
}

func AddProductRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/v2/product/create-product", middleware.RequireRole("seller", products.CreateProduct))
	router.GET("/api/v2/product/get-all-products-shop/:id", products.GetAllProductsShop)
	router.GET("/api/v2/product/get-products-by-name/:name", products.GetProductsByName)
	router.GET("/api/v2/product/get-products-by-category/:category", products.GetProductsByCategory)
	router.GET("/api/v2/product/get-all-products", rateLimiter.Limit(products.GetAllProducts))
	router.GET("/api/v2/product/admin-all-products", middleware.RequireRole("admin", products.AdminAllProducts))
	router.DELETE("/api/v2/product/delete-shop-product/:id", middleware.RequireRole("seller", products.DeleteShopProduct))
	router.PUT("/api/v2/product/create-new-review", middleware.Authenticate(reviews.CreateNewReview))
}
