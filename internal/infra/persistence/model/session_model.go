package model

import "time"

// SessionModel mirrors the 'session' table. It holds at most one row, the
// serialized snapshot of the currently logged-in principal.
type SessionModel struct {
	ID        uint   `gorm:"primaryKey"`
	Payload   string `gorm:"type:text;not null"` // JSON-encoded principal
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "session"
}

// SessionRowID is the fixed primary key of the single snapshot row.
const SessionRowID uint = 1
