package model

import "time"

// WeatherCacheModel mirrors the 'weather_cache' table: the last successful
// forecast payload per coordinate pair, for offline fallback.
type WeatherCacheModel struct {
	// PointKey is the "lon,lat" pair formatted to 4 decimal places.
	PointKey  string `gorm:"primaryKey;type:varchar(50)"`
	Payload   string `gorm:"type:text;not null"` // JSON-encoded report
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeatherCacheModel) TableName() string {
	return "weather_cache"
}
