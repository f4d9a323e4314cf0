package entity

import "time"

// PumpState is the water pump switch position.
type PumpState string

const (
	PumpOn  PumpState = "ON"
	PumpOff PumpState = "OFF"
)

// SensorSnapshot is one reading from a farmer's soil sensor kit.
// NPK values are in mg/kg, moisture in percent, temperature in °C.
type SensorSnapshot struct {
	PH          float64   `json:"ph"`
	Moisture    float64   `json:"moisture"`
	Temperature float64   `json:"temperature"`
	Nitrogen    float64   `json:"nitrogen"`
	Phosphorus  float64   `json:"phosphorus"`
	Potassium   float64   `json:"potassium"`
	Pump        PumpState `json:"pumpStatus"`
}

// TimestampedReading is a sensor snapshot with its capture time, used for the
// admin device history view.
type TimestampedReading struct {
	SensorSnapshot
	Timestamp time.Time `json:"timestamp"`
}

// DeviceOverview summarises one farmer's sensor device for the admin panel.
type DeviceOverview struct {
	DeviceID    string               `json:"id"`
	FarmerID    string               `json:"farmerId"`
	FarmerName  string               `json:"farmerName"`
	LastReading TimestampedReading   `json:"lastReading"`
	History     []TimestampedReading `json:"history"`
}
