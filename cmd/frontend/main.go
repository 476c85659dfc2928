package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"library-api/internal/core/config"
	"library-api/internal/core/logger"
	"library-api/internal/core/server"
)

// 前端伴生服务：只负责静态资源和首页，API 全在 cmd/api
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	staticDir := cfg.App.Frontend.StaticDir
	if staticDir == "" {
		staticDir = "./web/static"
	}

	r := server.NewRouter(log)
	r.Static("/static", staticDir)
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})

	addr := server.Addr(cfg.App.Frontend.Host, cfg.App.Frontend.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	log.Info("frontend starting", zap.String("addr", addr), zap.String("static", staticDir))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("frontend start FAILED", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("frontend stopped gracefully")
}
