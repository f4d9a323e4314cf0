// Package model contains the GORM persistence models backing the repositories.
package model

import "time"

// FarmerModel mirrors the 'farmers' table: one row per credential record,
// keyed by the unique username chosen at signup.
type FarmerModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	FullName          string  `gorm:"type:varchar(100)"`
	Phone             string  `gorm:"type:varchar(20)"`
	Location          string  `gorm:"type:varchar(255)"`
	LandSizeAcres     float64 `gorm:""`
	SoilType          string  `gorm:"type:varchar(50)"`
	IrrigationSource  string  `gorm:"type:varchar(50)"`
	LastSeasonCrops   string  `gorm:"type:varchar(255)"`
	PreferredLanguage string  `gorm:"type:varchar(10)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerModel) TableName() string {
	return "farmers"
}
