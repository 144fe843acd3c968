package main

import (
	"BarterAPI/internal/config"
	"BarterAPI/internal/handlers"
	"BarterAPI/internal/middleware"
	"BarterAPI/internal/repo"
	"BarterAPI/internal/service"
	"BarterAPI/internal/token"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	listingRepo := repo.NewListingRepository(gormDB)
	favoriteRepo := repo.NewFavoriteRepository(gormDB)

	userService := service.NewUserService(userRepo, service.BcryptHasher{})
	listingService := service.NewListingService(listingRepo)
	favoriteService := service.NewFavoriteService(userRepo, listingRepo, favoriteRepo)

	issuer := token.NewJWTIssuer(cfg.AuthSecret, 0)

	h := handlers.NewHandler(userService, listingService, favoriteService, issuer, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"UploadDir", cfg.UploadDir,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
