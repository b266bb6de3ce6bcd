package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arss011/network-toolkit-management-api/app"
	"github.com/Arss011/network-toolkit-management-api/controllers"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	loanCtl := controllers.NewLoanController(s)
	toolkitCtl := controllers.NewToolkitController(s)
	categoryCtl := controllers.NewCategoryController(s)
	userCtl := controllers.NewUserController(s)

	authMW := app.AuthRequired(s.JWT, s.Tokens, s.Repo)
	adminMW := app.AdminOnly()
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	api := r.Group("/api")

	// ------------------------------
	// Auth
	// ------------------------------
	api.POST("/auth/login", authCtl.Login)
	authed := api.Group("/auth", authMW, seenMW)
	{
		authed.GET("/me", authCtl.Me)
		authed.POST("/logout", authCtl.Logout)
	}

	// ------------------------------
	// Loans
	// ------------------------------
	loans := api.Group("/loans", authMW, seenMW)
	{
		loans.GET("", loanCtl.List) // ?page=&page_size=&search_term=&status=
		loans.GET("/stats", loanCtl.Stats)
		loans.GET("/:id", loanCtl.Get)
		loans.POST("", loanCtl.Create)
		loans.PUT("/:id", loanCtl.Update)
		loans.POST("/:id/return", loanCtl.Return)
		loans.DELETE("/:id", adminMW, loanCtl.Delete)
	}

	// ------------------------------
	// Toolkits
	// ------------------------------
	toolkits := api.Group("/toolkits", authMW, seenMW)
	{
		toolkits.GET("", toolkitCtl.List)
		toolkits.GET("/:id", toolkitCtl.Get) // pre-submit availability re-check
		toolkits.POST("/search", toolkitCtl.Search)

		toolkits.POST("", adminMW, toolkitCtl.Create)
		toolkits.PUT("/:id", adminMW, toolkitCtl.Update)
		toolkits.PATCH("/:id/stock", adminMW, toolkitCtl.UpdateStock)
		toolkits.DELETE("/:id", adminMW, toolkitCtl.Delete)
	}

	// ------------------------------
	// Categories
	// ------------------------------
	categories := api.Group("/categories", authMW, seenMW)
	{
		categories.GET("", categoryCtl.List)
		categories.GET("/tree", categoryCtl.Tree)
		categories.GET("/:id", categoryCtl.Get)

		categories.POST("", adminMW, categoryCtl.Create)
		categories.PUT("/:id", adminMW, categoryCtl.Update)
		categories.DELETE("/:id", adminMW, categoryCtl.Delete)
	}

	// ------------------------------
	// Users (admin only, except search for the loan form)
	// ------------------------------
	users := api.Group("/users", authMW, seenMW)
	{
		users.GET("", userCtl.List)
		users.POST("/search", userCtl.Search)

		users.GET("/:id", adminMW, userCtl.Get)
		users.POST("", adminMW, userCtl.Create)
		users.PUT("/:id", adminMW, userCtl.Update)
		users.DELETE("/:id", adminMW, userCtl.Delete)
	}
}
