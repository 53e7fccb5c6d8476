package models

import "time"

type Cafe struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Address     string    `json:"address"`
	OpeningTime string    `json:"opening_time" gorm:"not null"` // "HH:MM", 24-hour
	ClosingTime string    `json:"closing_time" gorm:"not null"`
	Tables      []Table   `json:"tables,omitempty" gorm:"foreignKey:CafeID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOpenAt reports whether the café is open at the given local time.
func (cafe *Cafe) IsOpenAt(t time.Time) bool {
	now := t.Format("15:04")
	return cafe.OpeningTime <= now && now <= cafe.ClosingTime
}

type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableUnavailable TableStatus = "unavailable"
)

type Table struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	CafeID    uint        `json:"cafe_id" gorm:"not null"`
	Number    int         `json:"number" gorm:"not null"`
	Status    TableStatus `json:"status" gorm:"not null;default:'available'"`
	CreatedAt time.Time   `json:"created_at"`
}

func (t *Table) IsAvailable() bool {
	return t.Status == TableAvailable
}
