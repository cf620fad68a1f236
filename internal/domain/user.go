package domain

import "strings"

// User represents a registered account. The email doubles as the login
// identity; the password is stored as a bcrypt hash.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string `gorm:"type:varchar(150);not null;default:''" json:"first_name"`
	LastName     string `gorm:"type:varchar(150);not null;default:''" json:"last_name"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns "first last" trimmed, falling back to the email when
// both name parts are empty.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Email
	}
	return full
}

// SplitFullName splits a display name into first and last name.
// The first whitespace-delimited token becomes the first name, the
// remainder the last name (empty if absent).
func SplitFullName(fullname string) (first, last string) {
	parts := strings.Fields(fullname)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
