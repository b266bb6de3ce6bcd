package app

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Arss011/network-toolkit-management-api/db"
	"github.com/Arss011/network-toolkit-management-api/session"
)

// Aliases to keep handler signatures short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config

	tokens *session.TokenStore
}

// Config is read from the environment.
type Config struct {
	RedisAddr         string
	RedisPwd          string
	WebOrigin         string
	JWTSecret         string
	SessionTTL        time.Duration
	BootstrapEmail    string
	BootstrapPassword string
}

func (a *App) Tokens() *session.TokenStore { return a.tokens }

func MustNew() *App {
	cfg := loadConfig()

	dbConn := db.ConnectDB()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r, DB: dbConn, RDB: rdb, Config: cfg,
		tokens: session.NewTokenStore(rdb, cfg.SessionTTL),
	}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	_ = godotenv.Load()

	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	ttlSec := get("SESSION_TTL_SECONDS", "86400")
	var ttl time.Duration = 24 * time.Hour
	if d, err := time.ParseDuration(ttlSec + "s"); err == nil {
		ttl = d
	}
	return Config{
		RedisAddr:         get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:          os.Getenv("REDIS_PASSWORD"),
		WebOrigin:         get("WEB_ORIGIN", "http://localhost:5173"),
		JWTSecret:         get("JWT_SECRET", "dev-secret-change-me"),
		SessionTTL:        ttl,
		BootstrapEmail:    get("ADMIN_EMAIL", "admin@example.com"),
		BootstrapPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}
