package app

import (
	"log"
	"os"
	"strings"
	"time"

	"sports_equipment_lending/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Aliases to keep handler signatures short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the shared dependencies: the router, the in-memory state
// and the logger.
type App struct {
	Router *gin.Engine
	Repo   *store.Repo
	Log    *zap.Logger
	Config Config
}

// Config is read from environment variables.
type Config struct {
	AppEnv    string
	Port      string
	WebOrigin string
	SeedDemo  bool
}

func MustNew() *App {
	cfg := loadConfig()

	// --- Logger ---
	var logger *zap.Logger
	var err error
	if cfg.AppEnv == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("zap: %v", err)
	}

	// --- State ---
	repo := store.NewRepo()

	// --- Gin ---
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	a := &App{Router: r, Repo: repo, Log: logger, Config: cfg}
	if cfg.SeedDemo {
		a.SeedDemo()
	}
	return a
}

func (a *App) Close() { _ = a.Log.Sync() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	return Config{
		AppEnv:    get("APP_ENV", "development"),
		Port:      get("PORT", "3001"),
		WebOrigin: get("WEB_ORIGIN", "http://localhost:5173"),
		SeedDemo:  strings.EqualFold(get("SEED_DEMO", "false"), "true"),
	}
}

// Now is the timestamp source for borrow and return events.
func Now() time.Time { return time.Now().UTC() }
