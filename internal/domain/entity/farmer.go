// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// SoilType enumerates the soil categories a farmer can register with.
// The empty value is legal pre-validation (signup form not yet filled in).
type SoilType string

const (
	SoilClay  SoilType = "Clay"
	SoilSandy SoilType = "Sandy"
	SoilLoamy SoilType = "Loamy"
	SoilBlack SoilType = "Black"
	SoilRed   SoilType = "Red"
)

// IrrigationSource enumerates the primary irrigation sources.
type IrrigationSource string

const (
	IrrigationCanal    IrrigationSource = "Canal"
	IrrigationBorewell IrrigationSource = "Borewell"
	IrrigationRainfed  IrrigationSource = "Rain-fed"
	IrrigationTank     IrrigationSource = "Tank"
)

// FarmerProfile holds the farm details a farmer provides at signup.
// It is owned exclusively by its farmer and mutated only through the
// profile-update operation.
type FarmerProfile struct {
	FullName          string           `json:"fullName"`
	Phone             string           `json:"phone"`
	Location          string           `json:"location"` // village / district
	LandSizeAcres     float64          `json:"landSize"`
	SoilType          SoilType         `json:"soilType"`
	IrrigationSource  IrrigationSource `json:"irrigationSource"`
	LastSeasonCrops   string           `json:"lastSeasonCrops"`
	PreferredLanguage Language         `json:"preferredLanguage"`
}

// Farmer is a registered farmer account: the credential record's public half.
type Farmer struct {
	Username  string        `json:"username"`
	Profile   FarmerProfile `json:"profile"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Credential is the authentication half of a farmer record. The password is
// stored as a bcrypt hash, never as plaintext.
type Credential struct {
	Username     string
	PasswordHash string
}
