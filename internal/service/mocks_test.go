package service

import (
	"BarterAPI/internal/model"
	"BarterAPI/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.ListingRepository
type mockListingRepo struct{ mock.Mock }

func (m *mockListingRepo) Create(ctx context.Context, l *model.Listing) (*model.Listing, error) {
	args := m.Called(ctx, l)
	if v, ok := args.Get(0).(*model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) Update(ctx context.Context, l *model.Listing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockListingRepo) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) ListByOwner(ctx context.Context, userID int64, archived bool) ([]model.Listing, error) {
	args := m.Called(ctx, userID, archived)
	if v, ok := args.Get(0).([]model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) Scan(ctx context.Context, pred func(*model.Listing) bool) ([]model.Listing, error) {
	args := m.Called(ctx, pred)
	if v, ok := args.Get(0).([]model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ListingRepository = (*mockListingRepo)(nil)

// fakeListingRepo применяет предикат к набору фикстур — для тестов поиска.
type fakeListingRepo struct {
	mockListingRepo
	items []model.Listing
}

func (f *fakeListingRepo) Scan(ctx context.Context, pred func(*model.Listing) bool) ([]model.Listing, error) {
	if pred == nil {
		return f.items, nil
	}
	matched := make([]model.Listing, 0, len(f.items))
	for i := range f.items {
		if pred(&f.items[i]) {
			matched = append(matched, f.items[i])
		}
	}
	return matched, nil
}

var _ repo.ListingRepository = (*fakeListingRepo)(nil)

// мок для repo.FavoriteRepository
type mockFavoriteRepo struct{ mock.Mock }

func (m *mockFavoriteRepo) CreateIfAbsent(ctx context.Context, userID, listingID int64) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, userID, listingID int64) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) Exists(ctx context.Context, userID, listingID int64) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) ListListings(ctx context.Context, userID int64) ([]model.Listing, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.FavoriteRepository = (*mockFavoriteRepo)(nil)
