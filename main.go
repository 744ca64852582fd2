package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Sampreeth-sv/smart-attendance-new/auth"
	"github.com/Sampreeth-sv/smart-attendance-new/config"
	"github.com/Sampreeth-sv/smart-attendance-new/database"
	"github.com/Sampreeth-sv/smart-attendance-new/handlers"
	"github.com/Sampreeth-sv/smart-attendance-new/sessions"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// databases; the registry falls back to memory-only when the store
	// cannot be opened
	if err := database.Connect(cfg.CatalogDBPath); err != nil {
		log.Printf("Warning: student catalog unavailable: %v", err)
	}
	if err := database.ConnectGORM(cfg.StoreDBPath); err != nil {
		log.Printf("Warning: attendance store unavailable, running in memory only: %v", err)
	}

	registry := sessions.NewRegistry()
	api := handlers.NewAPI(registry, cfg.AllowedOrigins)

	// router
	router := gin.Default()

	teacherOnly := router.Group("/", auth.Middleware(cfg.JWTSecret), auth.RequireRole(auth.RoleTeacher))
	teacherOnly.POST("/qr/generate", api.CreateSession)
	teacherOnly.POST("/qr/stop", api.StopSession)
	teacherOnly.GET("/qr/image/:sessionID", api.QRImage)
	teacherOnly.GET("/attendance/session/:sessionID", api.Roster)
	teacherOnly.GET("/attendance/live/:sessionID", api.LiveRoster)

	studentOnly := router.Group("/", auth.Middleware(cfg.JWTSecret), auth.RequireRole(auth.RoleStudent))
	studentOnly.POST("/attendance/mark", api.SubmitCheckIn)

	authed := router.Group("/", auth.Middleware(cfg.JWTSecret))
	authed.GET("/attendance/history/:studentID", api.History)

	router.GET("/qr/active-session", api.ActiveSession)
	router.GET("/qr/verify/:sessionID", api.VerifySession)

	router.Run(cfg.ListenAddr)
}
