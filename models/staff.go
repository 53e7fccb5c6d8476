package models

import "time"

// StaffRole defines allowed roles in the system
type StaffRole string

const (
	RoleManager       StaffRole = "manager"
	RoleWaiter        StaffRole = "waiter"
	RoleChef          StaffRole = "chef"
	RoleAssistantCook StaffRole = "assistant_cook"
	RoleDishWasher    StaffRole = "dish_washer"
	RoleServices      StaffRole = "services"
)

// ValidRoles is the closed set of staff roles.
var ValidRoles = map[StaffRole]bool{
	RoleManager:       true,
	RoleWaiter:        true,
	RoleChef:          true,
	RoleAssistantCook: true,
	RoleDishWasher:    true,
	RoleServices:      true,
}

type Staff struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         StaffRole `json:"role" gorm:"not null;default:'waiter'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
