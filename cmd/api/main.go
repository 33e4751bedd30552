package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/abhscancode/cluedin/internal/app"
	"github.com/abhscancode/cluedin/internal/config"
	"github.com/abhscancode/cluedin/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error initialising app: %v", err)
	}
	defer a.Close()

	eventHandler := handler.NewEventHandler(a.Pipeline, cfg.DataCategories, cfg.FilterCategories)
	categoryHandler := handler.NewCategoryHandler(a.LLM, a.Metrics)
	healthHandler := handler.NewHealthHandler(a.LLM.Name())

	failureHandler := handler.NewFailureHandler(a.Failures)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/events", eventHandler.GetEvents)
	r.GET("/categories", eventHandler.GetCategories)
	r.POST("/categories/suggest", categoryHandler.SuggestCategories)
	r.GET("/failures", failureHandler.GetFailures)
	r.GET("/health", healthHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
