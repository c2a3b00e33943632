package model

import "time"

// Vehicle represents a registered plate/model/color tuple owned by an account.
// Plates are stored normalized to uppercase.
type Vehicle struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Plate     string    `json:"plate" gorm:"uniqueIndex;size:10;not null"`
	Model     string    `json:"model" gorm:"size:255;not null"`
	Color     string    `json:"color" gorm:"size:100;not null"`
	AccountID *uint     `json:"account_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Account *Account `json:"account,omitempty" gorm:"foreignKey:AccountID"`
}
