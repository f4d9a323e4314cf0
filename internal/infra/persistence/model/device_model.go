package model

import "time"

// DeviceModel mirrors the 'devices' table: push tokens of farmer devices.
// One row per username/platform pair; re-registration replaces the token.
type DeviceModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(100);not null;uniqueIndex:idx_devices_owner"`
	Platform  string `gorm:"type:varchar(20);not null;uniqueIndex:idx_devices_owner"`
	FCMToken  string `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
