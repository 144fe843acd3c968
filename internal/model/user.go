package model

// User — зарегистрированный пользователь площадки.
// Password хранит bcrypt-хеш и никогда не сериализуется в ответы.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// Profile — публичная часть пользователя (без пароля).
type Profile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PublicProfile возвращает публичные поля пользователя.
func (u *User) PublicProfile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name, Phone: u.Phone}
}
