package app

import (
	"Gin_postgres_redis_equipment_lab/db"
	"Gin_postgres_redis_equipment_lab/session"
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Shorthand aliases for handlers
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies, constructed once at startup
// and passed down explicitly (no package-level singletons).
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Log    *zap.Logger
	Config Config

	tokens *session.TokenStore
}

// Config is read from the environment.
type Config struct {
	Port        string
	WebOrigin   string
	RedisAddr   string
	RedisPwd    string
	JWTSecret   string
	TokenTTL    time.Duration
	UploadDir   string
	AdminEmails []string
}

func (a *App) Tokens() *session.TokenStore { return a.tokens }

func MustNew() *App {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}

	// --- DB: Postgres ---
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
		Router: r, DB: dbConn, RDB: rdb, Log: logger, Config: cfg,
		tokens: session.NewTokenStore(rdb),
	}
}

func (a *App) Close() {
	_ = a.RDB.Close()
	_ = a.Log.Sync()
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttlSec := get("TOKEN_TTL_SECONDS", "3600")
	ttl := time.Hour
	if d, err := time.ParseDuration(ttlSec + "s"); err == nil {
		ttl = d
	}

	adminsCSV := os.Getenv("ADMIN_EMAILS") // e.g. "admin@ex.com,ops@ex.com"
	var admins []string
	for _, s := range strings.Split(adminsCSV, ",") {
		if t := strings.TrimSpace(s); t != "" {
			admins = append(admins, strings.ToLower(t))
		}
	}

	return Config{
		Port:        get("PORT", "5000"),
		WebOrigin:   get("WEB_ORIGIN", "http://localhost:5173"),
		RedisAddr:   get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   get("ACCESS_TOKEN_SECRET", "dev-only-secret"),
		TokenTTL:    ttl,
		UploadDir:   get("UPLOAD_DIR", "uploads"),
		AdminEmails: admins,
	}
}
