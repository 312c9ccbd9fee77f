package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/contactelmaslabs-a11y/MeScience/internal/ai"
	"github.com/contactelmaslabs-a11y/MeScience/internal/api"
)

func main() {
	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	cfg := api.Config{
		TemplatesGlob: filepath.Join(baseDir, "templates", "*.html"),
		StaticDir:     filepath.Join(baseDir, "static"),
		AIConfig: ai.Config{
			APIKey: os.Getenv("GOOGLE_API_KEY"),
			Model:  os.Getenv("GEMINI_MODEL"),
		},
	}

	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	if glob := strings.TrimSpace(os.Getenv("TEMPLATES_GLOB")); glob != "" {
		cfg.TemplatesGlob = glob
	}
	if dir := strings.TrimSpace(os.Getenv("STATIC_DIR")); dir != "" {
		cfg.StaticDir = dir
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logrus.Infof("starting mescience backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
