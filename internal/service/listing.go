package service

import (
	"BarterAPI/internal/model"
	"BarterAPI/internal/repo"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Сентинел «фото не менялось» в запросе обновления.
const photoUnchanged = "-"

// ListingService — жизненный цикл объявлений и поиск по каталогу.
type ListingService struct {
	repo repo.ListingRepository
}

// NewListingService создаёт сервис объявлений.
func NewListingService(r repo.ListingRepository) *ListingService {
	return &ListingService{repo: r}
}

// ListingInput — входные поля создания/обновления объявления.
type ListingInput struct {
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
	PhotoPath   string `json:"photoPath"`
	Type        string `json:"type"`
}

// validateRequired собирает все отсутствующие обязательные поля, а не только
// первое.
func (in *ListingInput) validateRequired() *ValidationError {
	violations := map[string]string{}
	if in.Title == "" {
		violations["title"] = "Название обязательно."
	}
	if in.Condition == "" {
		violations["condition"] = "Состояние обязательно."
	}
	if in.Description == "" {
		violations["description"] = "Описание обязательно."
	}
	if in.Category == "" {
		violations["category"] = "Категория обязательна."
	}
	if in.City == "" {
		violations["city"] = "Город обязателен."
	}
	if in.PhotoPath == "" {
		violations["photoPath"] = "Фотография обязательна."
	}
	if len(violations) == 0 {
		return nil
	}
	return NewValidationError(violations)
}

// Create создаёт объявление: все обязательные поля заполнены, пустой тип
// приводится к значению по умолчанию, архивный флаг сброшен, время создания
// выставляется сервисом.
func (s *ListingService) Create(ctx context.Context, in ListingInput) (*model.Listing, error) {
	if verr := in.validateRequired(); verr != nil {
		return nil, verr
	}

	l := &model.Listing{
		UserID:      in.UserID,
		Title:       in.Title,
		Condition:   in.Condition,
		Description: in.Description,
		Category:    in.Category,
		City:        in.City,
		PhotoPath:   in.PhotoPath,
		CreatedAt:   time.Now().UTC(),
		IsArchived:  false,
	}
	l.SetType(in.Type)

	return s.repo.Create(ctx, l)
}

// Update перезаписывает поля объявления. Фото обновляется только если
// пришло не сентинел-значение "-". Архивный флаг и владелец через этот путь
// не меняются.
func (s *ListingService) Update(ctx context.Context, id int64, in ListingInput) (*model.Listing, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Condition = in.Condition
	existing.Description = in.Description
	existing.Category = in.Category
	existing.SetType(in.Type)
	if in.PhotoPath != photoUnchanged {
		existing.PhotoPath = in.PhotoPath
	}
	existing.City = in.City

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Archive переводит объявление в архив. Повторная архивация — не ошибка.
func (s *ListingService) Archive(ctx context.Context, id int64) error {
	listing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	listing.IsArchived = true
	return s.repo.Update(ctx, listing)
}

// GetByID возвращает объявление независимо от архивного состояния.
func (s *ListingService) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

// ListByOwner возвращает объявления пользователя: archived=false — только
// активные, archived=true — только архивные.
func (s *ListingService) ListByOwner(ctx context.Context, userID int64, archived bool) ([]model.Listing, error) {
	return s.repo.ListByOwner(ctx, userID, archived)
}

// All возвращает все объявления без фильтрации.
func (s *ListingService) All(ctx context.Context) ([]model.Listing, error) {
	return s.repo.Scan(ctx, nil)
}

// Search выполняет составной фильтр по типу, категориям и подстроке.
// Активные условия объединяются по И; архивные объявления здесь не
// отсекаются — это ответственность вызывающего.
func (s *ListingService) Search(ctx context.Context, query, categories, listingType string) ([]model.Listing, error) {
	var filters []func(*model.Listing) bool

	// Фильтр по типу: "Нужно" дополнительно пропускает пустой тип
	// (терпимость к старым записям), "Отдам" — только точное совпадение,
	// прочие значения фильтр не включают.
	switch listingType {
	case model.TypeWanted:
		filters = append(filters, func(l *model.Listing) bool {
			return l.Type == model.TypeWanted || l.Type == ""
		})
	case model.TypeGiving:
		filters = append(filters, func(l *model.Listing) bool {
			return l.Type == model.TypeGiving
		})
	}

	// Фильтр по категориям: список через запятую, без нормализации.
	if categories != "" {
		catSet := map[string]struct{}{}
		for _, c := range strings.Split(categories, ",") {
			catSet[c] = struct{}{}
		}
		filters = append(filters, func(l *model.Listing) bool {
			_, ok := catSet[l.Category]
			return ok
		})
	}

	// Поиск подстроки в названии или описании, с учётом регистра.
	if strings.TrimSpace(query) != "" {
		filters = append(filters, func(l *model.Listing) bool {
			return strings.Contains(l.Title, query) || strings.Contains(l.Description, query)
		})
	}

	pred := func(l *model.Listing) bool {
		for _, f := range filters {
			if !f(l) {
				return false
			}
		}
		return true
	}
	return s.repo.Scan(ctx, pred)
}
