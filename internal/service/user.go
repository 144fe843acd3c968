package service

import (
	"BarterAPI/internal/model"
	"BarterAPI/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// UserService — регистрация, вход и управление профилем.
type UserService struct {
	repo   repo.UserRepository
	hasher PasswordHasher
}

// NewUserService создаёт сервис пользователей.
func NewUserService(r repo.UserRepository, h PasswordHasher) *UserService {
	return &UserService{repo: r, hasher: h}
}

// Register регистрирует пользователя. Email должен быть свободен, пароль —
// проходить политику. Сохраняется только хеш пароля.
func (s *UserService) Register(ctx context.Context, email, password, name, phone string) (*model.User, error) {
	taken, err := s.repo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if !validPassword(password) {
		return nil, NewValidationError(map[string]string{
			"password": "Пароль должен содержать минимум 6 символов, хотя бы одну заглавную букву, одну строчную букву и одну цифру.",
		})
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.User{
		Email:    email,
		Password: hash,
		Name:     name,
		Phone:    phone,
	})
}

// Login проверяет учётные данные и возвращает пользователя.
// Несуществующий email и неверный пароль неразличимы для вызывающего.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID возвращает пользователя по id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListAll возвращает всех пользователей (отладочный список).
func (s *UserService) ListAll(ctx context.Context) ([]model.User, error) {
	return s.repo.ListAll(ctx)
}

// UpdateProfile обновляет имя, телефон и email. Новый email не должен быть
// занят другим пользователем.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, email, name, phone string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	taken, err := s.repo.EmailTaken(ctx, email, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	user.Name = name
	user.Phone = phone
	user.Email = email
	return s.repo.Update(ctx, user)
}

// ValidatePassword сверяет пароль с сохранённым хешем пользователя.
func (s *UserService) ValidatePassword(ctx context.Context, id int64, password string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(password, user.Password) {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangePassword меняет пароль: текущий должен подойти, новый — пройти
// политику.
func (s *UserService) ChangePassword(ctx context.Context, id int64, current, newPassword string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(current, user.Password) {
		return ErrInvalidCredentials
	}
	if !validPassword(newPassword) {
		return NewValidationError(map[string]string{
			"newPassword": "Новый пароль должен содержать минимум 6 символов, хотя бы одну заглавную букву, одну строчную букву и одну цифру.",
		})
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.repo.Update(ctx, user)
}
