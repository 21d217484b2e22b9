package main

import (
	"Gin_postgres_redis_equipment_lab/app"
	"Gin_postgres_redis_equipment_lab/config"
	"Gin_postgres_redis_equipment_lab/routes"
	"log"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	log.Printf("listening on :%s", application.Config.Port)
	_ = r.Run(":" + application.Config.Port)
}
