package main

import (
	"context"
	"log"
	"os"

	"github.com/Arss011/network-toolkit-management-api/app"
	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/routes"
)

func main() {
	application := app.MustNew()
	defer application.Close()

	app.BootstrapAdmin(context.Background(), application.Config, db.NewRepo(application.DB))

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
