package main

import (
	"github.com/joho/godotenv"

	"github.com/Maxim-Smirnov-1998/hw05-final/internal/cache"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/config"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/database"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/follow"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/group"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/logs"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/post"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/router"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/storage"
	"github.com/Maxim-Smirnov-1998/hw05-final/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		logs.Fatal("DATABASE_URL is not set", nil)
	}

	database.Connect(cfg.DBUrl)
	database.Migrate(&user.User{}, &group.Group{}, &post.Post{}, &post.Comment{}, &follow.Follow{})

	if err := storage.InitS3(); err != nil {
		logs.LogJSON("WARN", "S3 storage disabled", map[string]interface{}{"error": err.Error()})
	}

	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logs.Fatal("Redis connection failed", map[string]interface{}{"error": err.Error()})
		}
		store = redisStore
	} else {
		logs.LogJSON("WARN", "REDIS_URL not set, page cache is in-memory", nil)
		store = cache.NewMemoryStore()
	}

	r := router.New(cfg, store)

	logs.LogJSON("INFO", "Server starting", map[string]interface{}{"addr": cfg.Addr})
	if err := r.Run(cfg.Addr); err != nil {
		logs.Fatal("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
