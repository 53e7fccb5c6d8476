package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	valid := []string{"09123456789", "09000000000"}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), p)
	}

	invalid := []string{"", "9123456789", "0912345678", "091234567890", "0912345678a", "+989123456789"}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), p)
	}
}

func TestCafeIsOpenAt(t *testing.T) {
	cafe := Cafe{OpeningTime: "08:00", ClosingTime: "22:00"}

	at := func(h, m int) time.Time {
		return time.Date(2026, 1, 15, h, m, 0, 0, time.Local)
	}

	assert.True(t, cafe.IsOpenAt(at(8, 0)))
	assert.True(t, cafe.IsOpenAt(at(12, 30)))
	assert.True(t, cafe.IsOpenAt(at(22, 0)))
	assert.False(t, cafe.IsOpenAt(at(7, 59)))
	assert.False(t, cafe.IsOpenAt(at(22, 1)))
}

func TestTableIsAvailable(t *testing.T) {
	assert.True(t, (&Table{Status: TableAvailable}).IsAvailable())
	assert.False(t, (&Table{Status: TableUnavailable}).IsAvailable())
}
