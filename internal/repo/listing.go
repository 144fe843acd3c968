package repo

import (
	"BarterAPI/internal/model"
	"context"

	"gorm.io/gorm"
)

// ListingRepository — контракт доступа к объявлениям для слоя сервиса.
type ListingRepository interface {
	// Create вставляет новое объявление и возвращает его с присвоенным id.
	Create(ctx context.Context, l *model.Listing) (*model.Listing, error)

	// Update сохраняет изменённые поля объявления.
	Update(ctx context.Context, l *model.Listing) error

	// GetByID возвращает объявление по id (включая архивные) или
	// gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Listing, error)

	// ListByOwner возвращает объявления пользователя с указанным состоянием
	// архивации, упорядоченные по id.
	ListByOwner(ctx context.Context, userID int64, archived bool) ([]model.Listing, error)

	// Scan обходит все объявления по возрастанию id и возвращает те, для
	// которых pred вернул true. nil-предикат пропускает всё.
	Scan(ctx context.Context, pred func(*model.Listing) bool) ([]model.Listing, error)
}

type listingRepo struct {
	db *gorm.DB
}

// NewListingRepository создаёт реализацию репозитория для Listing.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) Create(ctx context.Context, l *model.Listing) (*model.Listing, error) {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepo) Update(ctx context.Context, l *model.Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *listingRepo) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	var l model.Listing
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) ListByOwner(ctx context.Context, userID int64, archived bool) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_archived = ?", userID, archived).
		Order("id").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	if listings == nil {
		// пустой результат — пустой массив в JSON, не null
		listings = []model.Listing{}
	}
	return listings, nil
}

func (r *listingRepo) Scan(ctx context.Context, pred func(*model.Listing) bool) ([]model.Listing, error) {
	var all []model.Listing
	if err := r.db.WithContext(ctx).Order("id").Find(&all).Error; err != nil {
		return nil, err
	}
	if pred == nil {
		if all == nil {
			all = []model.Listing{}
		}
		return all, nil
	}
	matched := make([]model.Listing, 0, len(all))
	for i := range all {
		if pred(&all[i]) {
			matched = append(matched, all[i])
		}
	}
	return matched, nil
}
