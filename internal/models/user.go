package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null"`
	Phone    string `gorm:"uniqueIndex;not null"`
	Role     string `gorm:"default:'seller'"`
	Status   string `gorm:"default:'active'"`

	// Storefront visibility flags, cascaded by the KYC approval workflow.
	IsVerified bool `gorm:"default:false"`
	Approved   bool `gorm:"default:false"`

	// Mirror of the seller's current KYC status for cheap storefront reads.
	KYCStatus string `gorm:"default:'draft'"`

	LastLoginAt  time.Time
	LastLoginIP  string
	TokenVersion int `gorm:"default:1"`
}
