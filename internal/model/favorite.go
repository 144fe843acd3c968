package model

// Favorite — закладка пользователя на объявление (join-таблица без полезной
// нагрузки). Пара (UserID, ListingID) уникальна на уровне БД: составной
// индекс закрывает гонку двух одинаковых добавлений.
type Favorite struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_favorites_user_listing" json:"userId"`
	ListingID int64 `gorm:"not null;uniqueIndex:idx_favorites_user_listing" json:"listingId"`

	// Связь с объявлением
	Listing *Listing `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"listing,omitempty"`
}
