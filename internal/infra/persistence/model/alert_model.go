package model

import "time"

// AlertModel mirrors the 'alerts' table of admin-published outbreak alerts.
type AlertModel struct {
	ID        string `gorm:"primaryKey;type:varchar(50)"`
	Disease   string `gorm:"type:varchar(100);not null"`
	Area      string `gorm:"type:varchar(255);not null"`
	Advice    string `gorm:"type:text;not null"`
	Date      time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
