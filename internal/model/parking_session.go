package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParkingSession represents one occupancy event for a plate, from entry to
// exit. The plate is free-form text and deliberately not linked to the vehicle
// registry, so walk-in vehicles can park without a registered Vehicle record.
// A nil ExitTime means the vehicle is currently parked.
type ParkingSession struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Plate     string          `json:"plate" gorm:"size:10;not null;index"`
	EntryTime time.Time       `json:"entry_time" gorm:"not null;index"`
	ExitTime  *time.Time      `json:"exit_time"`
	Fee       decimal.Decimal `json:"fee" gorm:"type:decimal(10,2);not null;default:0"`
}
