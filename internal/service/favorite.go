package service

import (
	"BarterAPI/internal/model"
	"BarterAPI/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// FavoriteService — избранные объявления пользователя.
type FavoriteService struct {
	users    repo.UserRepository
	listings repo.ListingRepository
	favs     repo.FavoriteRepository
}

// NewFavoriteService создаёт сервис избранного.
func NewFavoriteService(users repo.UserRepository, listings repo.ListingRepository, favs repo.FavoriteRepository) *FavoriteService {
	return &FavoriteService{users: users, listings: listings, favs: favs}
}

// Add добавляет объявление в избранное. Пользователь и объявление должны
// существовать, пара должна быть новой. Дубликат — и обнаруженный вставкой,
// и пришедший конкурентно — отдаётся как ErrFavoriteExists.
func (s *FavoriteService) Add(ctx context.Context, userID, listingID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}

	created, err := s.favs.CreateIfAbsent(ctx, userID, listingID)
	if err != nil {
		// Нарушение уникальности из стора равнозначно конфликту.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFavoriteExists
		}
		return err
	}
	if !created {
		return ErrFavoriteExists
	}
	return nil
}

// Remove удаляет объявление из избранного.
func (s *FavoriteService) Remove(ctx context.Context, userID, listingID int64) error {
	deleted, err := s.favs.Delete(ctx, userID, listingID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}

// List возвращает избранные объявления пользователя без архивных.
// Пустое избранное — пустой список, не ошибка.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]model.Listing, error) {
	return s.favs.ListListings(ctx, userID)
}
