package repo

import (
	"BarterAPI/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — контракт доступа к пользователям для слоя сервиса.
type UserRepository interface {
	// GetByEmail возвращает пользователя по email или gorm.ErrRecordNotFound.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID возвращает пользователя по id или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// EmailTaken проверяет, занят ли email другим пользователем.
	// excludeID исключает владельца (0 — не исключать никого).
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)

	// Create вставляет нового пользователя и возвращает его с присвоенным id.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Update сохраняет изменённые поля пользователя.
	Update(ctx context.Context, user *model.User) error

	// ListAll возвращает всех пользователей (отладочная выборка).
	ListAll(ctx context.Context) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}
