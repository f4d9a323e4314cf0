package entity

import "time"

// FarmerSummary is the admin dashboard's row for one registered farmer.
type FarmerSummary struct {
	ID           string   `json:"id"` // username
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Phone        string   `json:"phone"`
	PrimaryCrops []string `json:"primaryCrops"`
}

// CropStat counts how many farmers grow a crop, for the analytics chart.
type CropStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PestReportStat is one day of the pest-report time series.
type PestReportStat struct {
	Date    string `json:"date"` // short display date, e.g. "12 Sep"
	Reports int    `json:"reports"`
}

// Analytics bundles the admin dashboard charts.
type Analytics struct {
	CropData []CropStat       `json:"cropData"`
	PestData []PestReportStat `json:"pestData"`
}

// FarmerDevice is a registered mobile device that receives alert pushes.
type FarmerDevice struct {
	Username  string    `json:"username"`
	FCMToken  string    `json:"fcmToken"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"createdAt"`
}
