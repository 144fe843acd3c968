package service

import (
	"BarterAPI/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, BcryptHasher{})

	t.Run("ok when email free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("EmailTaken", mock.Anything, "john@mail.ru", int64(0)).Return(false, nil).Once()
		created := &model.User{ID: 10, Email: "john@mail.ru"}
		m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// сохраняется хеш, а не исходный пароль
			return u.Email == "john@mail.ru" && u.Password != "" && u.Password != "Abc123"
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, "john@mail.ru", "Abc123", "John", "+7")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("conflict when email taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("EmailTaken", mock.Anything, "john@mail.ru", int64(0)).Return(true, nil).Once()

		user, err := svc.Register(ctx, "john@mail.ru", "Abc123", "John", "+7")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.ErrorIs(t, err, ErrConflict)
		m.AssertExpectations(t)
	})

	t.Run("validation when password weak", func(t *testing.T) {
		// без заглавной буквы
		m.ExpectedCalls = nil
		m.On("EmailTaken", mock.Anything, "john@mail.ru", int64(0)).Return(false, nil).Once()

		user, err := svc.Register(ctx, "john@mail.ru", "abc123", "John", "+7")
		assert.Nil(t, user)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "password")
		m.AssertExpectations(t)
	})
}

func TestPasswordPolicy(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Abc123", true},
		{"abc123", false},  // нет заглавной
		{"ABC123", false},  // нет строчной
		{"Abcdef", false},  // нет цифры
		{"Ab1", false},     // короче шести символов
		{"Abc123!", true},  // прочие символы политикой игнорируются
		{"Пароль1", true},  // кириллица классифицируется так же
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, validPassword(c.password), "password %q", c.password)
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, BcryptHasher{})

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "alice@mail.ru").Return(&model.User{ID: 2, Email: "alice@mail.ru", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@mail.ru", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("invalid password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "alice@mail.ru").Return(&model.User{ID: 2, Email: "alice@mail.ru", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@mail.ru", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		m.AssertExpectations(t)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByEmail", mock.Anything, "ghost@mail.ru").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		user, err := svc.Login(ctx, "ghost@mail.ru", "secret")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		m.AssertExpectations(t)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, BcryptHasher{})

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(5)).Return(&model.User{ID: 5, Email: "old@mail.ru"}, nil).Once()
		m.On("EmailTaken", mock.Anything, "new@mail.ru", int64(5)).Return(false, nil).Once()
		m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@mail.ru" && u.Name == "New" && u.Phone == "+1"
		})).Return(nil).Once()

		assert.NoError(t, svc.UpdateProfile(ctx, 5, "new@mail.ru", "New", "+1"))
		m.AssertExpectations(t)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(5)).Return(&model.User{ID: 5, Email: "old@mail.ru"}, nil).Once()
		m.On("EmailTaken", mock.Anything, "taken@mail.ru", int64(5)).Return(true, nil).Once()

		assert.ErrorIs(t, svc.UpdateProfile(ctx, 5, "taken@mail.ru", "New", "+1"), ErrEmailTaken)
		m.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(404)).Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		assert.ErrorIs(t, svc.UpdateProfile(ctx, 404, "x@mail.ru", "X", ""), ErrUserNotFound)
		m.AssertExpectations(t)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, BcryptHasher{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("Current1"), bcrypt.DefaultCost)

	t.Run("ok", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(3)).Return(&model.User{ID: 3, Password: string(hash)}, nil).Once()
		m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// пароль перехеширован
			return u.Password != string(hash) && u.Password != "NewPass1"
		})).Return(nil).Once()

		assert.NoError(t, svc.ChangePassword(ctx, 3, "Current1", "NewPass1"))
		m.AssertExpectations(t)
	})

	t.Run("wrong current password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(3)).Return(&model.User{ID: 3, Password: string(hash)}, nil).Once()

		assert.ErrorIs(t, svc.ChangePassword(ctx, 3, "Wrong1", "NewPass1"), ErrUnauthenticated)
		m.AssertExpectations(t)
	})

	t.Run("weak new password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, int64(3)).Return(&model.User{ID: 3, Password: string(hash)}, nil).Once()

		var verr *ValidationError
		err := svc.ChangePassword(ctx, 3, "Current1", "weak")
		assert.ErrorAs(t, err, &verr)
		m.AssertExpectations(t)
	})
}

func TestUserService_ValidatePassword(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, BcryptHasher{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("Current1"), bcrypt.DefaultCost)
	m.On("GetByID", mock.Anything, int64(7)).Return(&model.User{ID: 7, Password: string(hash)}, nil)

	assert.NoError(t, svc.ValidatePassword(ctx, 7, "Current1"))
	assert.ErrorIs(t, svc.ValidatePassword(ctx, 7, "nope"), ErrUnauthenticated)
}
