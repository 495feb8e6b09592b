package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"regadmin/internal/auth"
	"regadmin/internal/cache"
	"regadmin/internal/config"
	"regadmin/internal/db"
	"regadmin/internal/handler"
	"regadmin/internal/logger"
	"regadmin/internal/model"
	"regadmin/internal/repository"
	"regadmin/internal/router"
	"regadmin/internal/service"
	"regadmin/internal/storage"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zlog.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		zlog.Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Action{},
		&model.Role{},
		&model.Branch{},
		&model.UserInfo{},
		&model.Identification{},
		&model.User{},
		&model.AccessToken{},
		&model.RefreshToken{},
		&model.Content{},
		&model.ContentDetail{},
		&model.ContentImage{},
		&model.Event{},
		&model.HeroSlider{},
	); err != nil {
		zlog.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		zlog.Warn("redis unreachable, cache disabled", zap.Error(err))
	}

	store, err := storage.NewS3Store(context.Background(), storage.Config{
		Endpoint:     cfg.S3Endpoint,
		Region:       cfg.S3Region,
		Bucket:       cfg.S3Bucket,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		zlog.Fatal("object store init", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(gormDB)
	userInfoRepo := repository.NewUserInfoRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	actionRepo := repository.NewActionRepository(gormDB)
	branchRepo := repository.NewBranchRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	contentRepo := repository.NewContentRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	sliderRepo := repository.NewHeroSliderRepository(gormDB)

	jwtSvc := auth.NewJWTService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry,
	)
	gate := auth.NewGate(userRepo, cfg.SuperRole)

	authSvc := service.NewAuthService(userRepo, roleRepo, tokenRepo, jwtSvc, cfg.BcryptCost)
	userSvc := service.NewUserService(userRepo, userInfoRepo, roleRepo, tokenRepo, jwtSvc, cfg.BcryptCost)
	roleSvc := service.NewRoleService(roleRepo, actionRepo)
	actionSvc := service.NewActionService(actionRepo)
	branchSvc := service.NewBranchService(branchRepo, cacheClient, zlog)
	contentSvc := service.NewContentService(contentRepo, store)
	eventSvc := service.NewEventService(eventRepo)
	sliderSvc := service.NewHeroSliderService(sliderRepo, store)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, zlog, jwtSvc, gate,
		handler.NewAuthHandler(authSvc),
		handler.NewActionHandler(actionSvc, cfg.DefaultPageSize),
		handler.NewRoleHandler(roleSvc, cfg.DefaultPageSize),
		handler.NewBranchHandler(branchSvc),
		handler.NewUserHandler(userSvc, cfg.DefaultPageSize),
		handler.NewContentHandler(contentSvc, cfg.DefaultPageSize),
		handler.NewEventHandler(eventSvc, cfg.DefaultPageSize),
		handler.NewHeroSliderHandler(sliderSvc, cfg.DefaultPageSize),
	)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server start", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}
