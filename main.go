package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/config"
	"github.com/JabirC/Closet/global"
	"github.com/JabirC/Closet/repositories"
	"github.com/JabirC/Closet/routes"
	"github.com/JabirC/Closet/services"
	"github.com/JabirC/Closet/utils"
	"github.com/JabirC/Closet/utils/events"
	"github.com/JabirC/Closet/utils/logger"
	"github.com/JabirC/Closet/utils/redislog"
)

func main() {
	// 1) Load config from file and/or env
	cfg := config.Load()
	logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	// 2) Infrastructure. rdb is nil when Redis is disabled.
	db := config.InitDB(cfg)
	rdb := config.InitRedis(cfg)
	if rdb != nil {
		logrus.AddHook(redislog.New(rdb, global.RedisLogKey, 1000, 7*24*time.Hour, logrus.InfoLevel))
	}
	logrus.WithFields(logrus.Fields{
		"env":       cfg.Env,
		"port":      cfg.HTTPPort,
		"db_driver": cfg.DBDriver,
		"redis":     rdb != nil,
		"version":   global.AppVersion,
	}).Infof("%s starting", cfg.AppName)

	if err := utils.RegisterValidators(); err != nil {
		logrus.Fatalf("[boot] validators: %v", err)
	}

	// 3) Repositories and services
	quota := cfg.Quota()
	bus := events.NewRedisBus(rdb)
	cache := services.NewProfileCache(rdb)

	userRepo := repositories.NewUserRepository(db)
	clothingRepo := repositories.NewClothingRepository(db)
	outfitRepo := repositories.NewOutfitRepository(db)
	calendarRepo := repositories.NewCalendarRepository(db)

	userSvc := services.NewUserService(userRepo, cache, quota)
	clothingSvc := services.NewClothingService(clothingRepo, quota, services.NewRandomClassifier(time.Now().UnixNano()), bus, cache)
	outfitSvc := services.NewOutfitService(outfitRepo, bus)
	calendarSvc := services.NewCalendarService(calendarRepo, bus)
	snapshotSvc := services.NewSnapshotService(userSvc, clothingRepo, outfitRepo, calendarSvc)

	// 4) HTTP
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, routes.Deps{
		Users:       userSvc,
		Clothes:     clothingSvc,
		Outfits:     outfitSvc,
		Calendar:    calendarSvc,
		Wardrobe:    snapshotSvc,
		Events:      bus,
		JWTSecret:   cfg.JWTSecret,
		JWTExpires:  cfg.JWTTTL,
		CORSOrigins: cfg.CORSOrigins,
	})

	// no WriteTimeout: /events connections are long-lived
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("port", cfg.HTTPPort).Info("http server start")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("http server error")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("http server shutdown")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
