package models

import (
	"regexp"
	"time"
)

// phoneRegex matches local mobile numbers: 09 followed by nine digits.
var phoneRegex = regexp.MustCompile(`^09\d{9}$`)

// ValidPhone reports whether s is an acceptable customer phone number.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

type Customer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number" gorm:"uniqueIndex;not null"`
	TableNumber int       `json:"table_number"`
	Points      int       `json:"points" gorm:"default:0"` // loyalty points, only ever increases
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
