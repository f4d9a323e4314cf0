package entity

import "time"

// Scheme is a government support scheme farmers can apply to.
type Scheme struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	Eligibility     string `json:"eligibility"`
	Benefits        string `json:"benefits"`
	ApplicationLink string `json:"applicationLink"`
}

// AllocationStatus tracks an allocation through its lifecycle.
type AllocationStatus string

const (
	AllocationAllocated AllocationStatus = "Allocated"
	AllocationPending   AllocationStatus = "Pending"
	AllocationDelivered AllocationStatus = "Delivered"
)

// Allocation is one seed/fertilizer/subsidy grant assigned to a farmer.
type Allocation struct {
	ID       string           `json:"id"`
	Item     string           `json:"item"`
	Quantity string           `json:"quantity"`
	Status   AllocationStatus `json:"status"`
	Date     string           `json:"date"` // YYYY-MM-DD
}

// OutbreakAlert is a pest/disease warning published by an admin for an area.
type OutbreakAlert struct {
	ID      string    `json:"id"`
	Disease string    `json:"disease"`
	Area    string    `json:"area"`
	Advice  string    `json:"advice"`
	Date    time.Time `json:"date"`
}
