package model

import "time"

// PreferenceModel mirrors the 'preferences' table, a small key-value store
// for device-level settings that outlive any session.
type PreferenceModel struct {
	Key       string `gorm:"primaryKey;type:varchar(100)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "preferences"
}

// PreferenceKeyLanguage stores the device-level UI language.
const PreferenceKeyLanguage = "language"
