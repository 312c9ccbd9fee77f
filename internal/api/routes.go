package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/contactelmaslabs-a11y/MeScience/internal/ai"
)

// Config defines server dependencies.
type Config struct {
	AllowedOrigins []string
	TemplatesGlob  string
	StaticDir      string
	AIConfig       ai.Config
}

// detailKeyMissing is the fixed detail reported when no credential is
// configured. The wording is part of the API contract.
const detailKeyMissing = "API Key not configured."

// Server wires HTTP handlers with the explanation engine.
type Server struct {
	explainer      ai.Explainer
	model          string
	allowedOrigins []string
	templatesGlob  string
	staticDir      string
}

// NewServer constructs the API server. A missing Gemini credential is
// not fatal: the server still starts and explanation requests fail
// with a configuration error until a key is supplied.
func NewServer(cfg Config) (*Server, error) {
	model := strings.TrimSpace(cfg.AIConfig.Model)
	if model == "" {
		model = ai.DefaultModel
	}

	var explainer ai.Explainer
	client, err := ai.NewGeminiClient(cfg.AIConfig)
	switch {
	case err == nil:
		explainer = ai.NewEngine(client)
		logrus.WithField("model", model).Info("explanation engine enabled")
	case errors.Is(err, ai.ErrNotConfigured):
		explainer = ai.NewEngine(nil)
		logrus.Warn("GOOGLE_API_KEY not set - explanation requests will fail until configured")
	default:
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Server{
		explainer:      explainer,
		model:          model,
		allowedOrigins: cfg.AllowedOrigins,
		templatesGlob:  cfg.TemplatesGlob,
		staticDir:      cfg.StaticDir,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	if s.templatesGlob != "" {
		matches, err := filepath.Glob(s.templatesGlob)
		if err != nil {
			return nil, fmt.Errorf("template glob: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no templates match %s", s.templatesGlob)
		}
		r.LoadHTMLGlob(s.templatesGlob)
		r.GET("/", s.handleIndex)
	}
	if s.staticDir != "" {
		r.Static("/static", s.staticDir)
	}

	r.POST("/explain", s.handleExplain)
	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	return r, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"model": s.model})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"model":         s.model,
		"ai_configured": s.explainer.Enabled(),
	})
}

func (s *Server) handleExplain(c *gin.Context) {
	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	result, err := s.explainer.Explain(c.Request.Context(), req.Topic)
	duration := time.Since(start)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			s.renderError(c, http.StatusInternalServerError, errors.New(detailKeyMissing))
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{
			"topic_chars": len(req.Topic),
			"duration_ms": duration.Milliseconds(),
		}).Warn("explanation request failed")
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"topic_chars": len(req.Topic),
		"duration_ms": duration.Milliseconds(),
	}).Info("explanation generated")
	c.JSON(http.StatusOK, result)
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"detail": err.Error()})
}
