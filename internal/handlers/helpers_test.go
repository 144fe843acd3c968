package handlers_test

import (
	"BarterAPI/internal/config"
	"BarterAPI/internal/handlers"
	"BarterAPI/internal/middleware"
	"BarterAPI/internal/model"
	"BarterAPI/internal/repo"
	"BarterAPI/internal/service"
	"BarterAPI/internal/token"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestRouter поднимает полный роутер поверх in-memory SQLite.
func newTestRouter(t *testing.T) (http.Handler, *config.Config, *gorm.DB) {
	t.Helper()

	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Listing{}, &model.Favorite{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{
		AuthSecret:     "test-secret",
		UploadDir:      t.TempDir(),
		PhotoMaxSizeMB: 1,
		ServerURL:      "http://localhost:8080",
	}
	logger := zap.NewNop().Sugar()

	userRepo := repo.NewUserRepository(db)
	listingRepo := repo.NewListingRepository(db)
	favoriteRepo := repo.NewFavoriteRepository(db)

	userSvc := service.NewUserService(userRepo, service.BcryptHasher{})
	listingSvc := service.NewListingService(listingRepo)
	favoriteSvc := service.NewFavoriteService(userRepo, listingRepo, favoriteRepo)

	issuer := token.NewJWTIssuer(cfg.AuthSecret, 0)

	h := handlers.NewHandler(userSvc, listingSvc, favoriteSvc, issuer, logger, cfg)
	return h.Router, cfg, db
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
