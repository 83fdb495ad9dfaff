package main

import (
	"github.com/gin-gonic/gin"
	"payeasy.backend/internal/interfaces/http/handlers"
	"payeasy.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	productHandler      *handlers.ProductHandler
	paymentLinkHandler  *handlers.PaymentLinkHandler
	checkoutHandler     *handlers.CheckoutHandler
	saleHandler         *handlers.SaleHandler
	withdrawalHandler   *handlers.WithdrawalHandler
	merchantHandler     *handlers.MerchantHandler
	notificationHandler *handlers.NotificationHandler
	adminHandler        *handlers.AdminHandler
	webhookHandler      *handlers.WebhookHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Checkout routes (public, reached by buyers via payment links)
		checkout := v1.Group("/checkout")
		{
			checkout.GET("/:productId", d.checkoutHandler.GetPage)
			checkout.POST("/:productId", middleware.IdempotencyMiddleware(), d.checkoutHandler.Submit)
		}

		// Gateway settlement webhook (public, called by the wallet gateway)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/gateway", d.webhookHandler.HandleGatewayWebhook)
		}

		// Product catalog routes (protected)
		products := v1.Group("/products")
		products.Use(d.authMiddleware)
		{
			products.POST("", d.productHandler.Create)
			products.GET("", d.productHandler.List)
			products.GET("/:id", d.productHandler.Get)
			products.PUT("/:id", d.productHandler.Update)
			products.DELETE("/:id", d.productHandler.Delete)
		}

		// Payment link routes (protected)
		paymentLinks := v1.Group("/payment-links")
		paymentLinks.Use(d.authMiddleware)
		{
			paymentLinks.POST("", d.paymentLinkHandler.Create)
			paymentLinks.GET("", d.paymentLinkHandler.List)
			paymentLinks.DELETE("/:id", d.paymentLinkHandler.Delete)
		}

		// Sale routes (protected)
		sales := v1.Group("/sales")
		sales.Use(d.authMiddleware)
		{
			sales.GET("", d.saleHandler.List)
			sales.GET("/:id", d.saleHandler.Get)
			sales.POST("/:id/refund", d.saleHandler.Refund)
		}

		// Withdrawal routes (protected)
		withdrawals := v1.Group("/withdrawals")
		withdrawals.Use(d.authMiddleware)
		{
			withdrawals.POST("", middleware.IdempotencyMiddleware(), d.withdrawalHandler.Request)
			withdrawals.GET("", d.withdrawalHandler.List)
		}

		// Finance routes (protected)
		finance := v1.Group("/finance")
		finance.Use(d.authMiddleware)
		{
			finance.GET("/overview", d.merchantHandler.FinanceOverview)
			finance.GET("/ledger", d.merchantHandler.Ledger)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("", d.notificationHandler.List)
			notifications.PUT("/read-all", d.notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", d.notificationHandler.MarkRead)
		}

		// Admin routes (protected, admin role)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.Stats)
			admin.GET("/merchants", d.adminHandler.ListMerchants)
			admin.PUT("/merchants/:id/status", d.adminHandler.UpdateMerchantStatus)
			admin.PUT("/products/:id/status", d.adminHandler.ReviewProduct)
			admin.PUT("/withdrawals/:id/status", d.adminHandler.SettleWithdrawal)
		}
	}
}
