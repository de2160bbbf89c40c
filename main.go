package main

import (
	"log"

	"workshophub/config"
	"workshophub/database"
	"workshophub/middleware"
	v1 "workshophub/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title WorkshopHub API
// @version 1.0
// @description Administrative API for managing live, time-boxed group workshops
// @BasePath /api/v1
func main() {
	config.Load()

	database.InitDB()
	database.InitRedis()

	gin.SetMode(config.GinMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	v1.Register(r)

	middleware.UpdateSystemMetrics()

	log.Printf("Starting API on port %s", config.APIPort)
	if err := r.Run(":" + config.APIPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
