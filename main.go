package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DevZuhaib/luxe3d-api/config"
	"github.com/DevZuhaib/luxe3d-api/routes"
	"github.com/DevZuhaib/luxe3d-api/storage"
	"github.com/DevZuhaib/luxe3d-api/store"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Println("✅ Starting Luxe3D API...")

	snap := initSnapshots(cfg)

	s, err := store.New(snap, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		logrus.Fatalf("❌ Failed to restore state: %v", err)
	}

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	routes.SetupRoutes(r, s, cfg)

	logrus.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initSnapshots picks the snapshot backend from configuration.
func initSnapshots(cfg *config.Config) storage.Snapshots {
	switch cfg.StoreDriver {
	case "postgres":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			logrus.Fatal("❌ STORE_DRIVER=postgres requires DATABASE_URL")
		}
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Fatalf("❌ DB connection failed: %v", err)
		}
		snap, err := storage.NewPostgres(db)
		if err != nil {
			logrus.Fatalf("❌ Snapshot table migration failed: %v", err)
		}
		return snap
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("❌ Failed to connect to Redis: %v", err)
		}
		return storage.NewRedis(rdb)
	case "memory":
		logrus.Warn("⚠️ STORE_DRIVER=memory: state is lost on restart")
		return storage.NewMemory()
	default:
		logrus.Fatalf("❌ Unknown STORE_DRIVER %q", cfg.StoreDriver)
		return nil
	}
}
