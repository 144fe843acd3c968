package repo

import (
	"BarterAPI/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository — контракт доступа к избранному для слоя сервиса.
type FavoriteRepository interface {
	// CreateIfAbsent пытается создать пару (userID, listingID). Если пара уже
	// существует — ничего не делает. Возвращает created=true, если запись
	// была создана этой операцией. Конфликт по уникальному индексу не
	// считается ошибкой.
	CreateIfAbsent(ctx context.Context, userID, listingID int64) (created bool, err error)

	// Delete удаляет пару. Возвращает deleted=false, если записи не было.
	Delete(ctx context.Context, userID, listingID int64) (deleted bool, err error)

	// Exists проверяет наличие пары.
	Exists(ctx context.Context, userID, listingID int64) (bool, error)

	// ListListings возвращает неархивные объявления из избранного
	// пользователя, упорядоченные по id записи избранного.
	ListListings(ctx context.Context, userID int64) ([]model.Listing, error)
}

type favoriteRepo struct {
	db *gorm.DB
}

// NewFavoriteRepository создаёт реализацию репозитория для Favorite.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

// CreateIfAbsent — условная вставка: уникальный индекс (user_id, listing_id)
// плюс DO NOTHING вместо пары «проверить, затем вставить», чтобы два
// одновременных одинаковых запроса не породили дубль.
func (r *favoriteRepo) CreateIfAbsent(ctx context.Context, userID, listingID int64) (bool, error) {
	f := &model.Favorite{UserID: userID, ListingID: listingID}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "listing_id"}},
		DoNothing: true,
	}).Create(f)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *favoriteRepo) Delete(ctx context.Context, userID, listingID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&model.Favorite{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *favoriteRepo) Exists(ctx context.Context, userID, listingID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListListings отдаёт сами объявления, а не join-записи. Архивные объявления
// исключаются выборкой, сама запись избранного при архивации не удаляется.
func (r *favoriteRepo) ListListings(ctx context.Context, userID int64) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Select("listings.*").
		Joins("JOIN listings ON listings.id = favorites.listing_id").
		Where("favorites.user_id = ? AND listings.is_archived = ?", userID, false).
		Order("favorites.id").
		Scan(&listings).Error
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	return listings, nil
}
