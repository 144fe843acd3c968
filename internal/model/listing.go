package model

import (
	"strings"
	"time"
)

// Типы объявлений.
const (
	TypeWanted = "Нужно" // пользователь ищет вещь
	TypeGiving = "Отдам" // пользователь отдаёт вещь
)

// Listing — объявление пользователя.
type Listing struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null;index" json:"userId"` // ссылка на users.id

	Title       string `gorm:"not null" json:"title"`
	Condition   string `gorm:"not null" json:"condition"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null" json:"category"`
	City        string `gorm:"not null" json:"city"`
	PhotoPath   string `gorm:"not null" json:"photoPath"` // непрозрачная ссылка, файл не проверяется

	// Тип объявления. Пустое значение всегда приводится к TypeWanted,
	// присваивать только через SetType.
	Type string `gorm:"not null" json:"type"`

	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	IsArchived bool      `gorm:"not null;default:false" json:"isArchived"`
}

// SetType нормализует тип при каждом присваивании: пустая строка или
// пробелы — это TypeWanted. Правило действует и при обновлении, не только
// при создании.
func (l *Listing) SetType(v string) {
	if strings.TrimSpace(v) == "" {
		l.Type = TypeWanted
		return
	}
	l.Type = v
}
