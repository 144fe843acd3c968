package repo

import (
	"BarterAPI/internal/model"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Listing{}, &model.Favorite{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// newTestListing возвращает валидное объявление для вставки в тестах.
func newTestListing(userID int64, title string) *model.Listing {
	return &model.Listing{
		UserID:      userID,
		Title:       title,
		Condition:   "новое",
		Description: "описание",
		Category:    "книги",
		City:        "Москва",
		PhotoPath:   "/images/x.jpg",
		Type:        model.TypeWanted,
	}
}
