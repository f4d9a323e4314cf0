// Package content serves the government scheme and allocation catalogs. Both
// are maintained by the agriculture department and change a few times a year,
// so they ship with the binary rather than living in the database.
package content

import (
	"context"

	"saathi/internal/domain/entity"
	"saathi/internal/domain/service"
)

var schemes = []entity.Scheme{
	{
		ID:              1,
		Title:           "PM-KISAN Scheme",
		Summary:         "A central sector scheme with 100% funding from the Government of India. It provides income support to all landholding farmer families.",
		Eligibility:     "All landholding farmer families with cultivable landholding in their names.",
		Benefits:        "₹6,000 per year in three equal installments of ₹2,000 each directly into the bank accounts of the beneficiaries.",
		ApplicationLink: "https://pmkisan.gov.in/",
	},
	{
		ID:              2,
		Title:           "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
		Summary:         "An insurance service for farmers for their yields. It aims to provide comprehensive insurance cover against failure of the crop thus helping in stabilising the income of the farmers.",
		Eligibility:     "All farmers including sharecroppers and tenant farmers growing notified crops in the notified areas are eligible for coverage.",
		Benefits:        "Provides insurance coverage and financial support to the farmers in the event of failure of any of the notified crop as a result of natural calamities, pests & diseases.",
		ApplicationLink: "https://pmfby.gov.in/",
	},
	{
		ID:              3,
		Title:           "Kisan Credit Card (KCC)",
		Summary:         "The KCC scheme was introduced to ensure that farmers have access to credit at an affordable interest rate.",
		Eligibility:     "All farmers, individuals/joint borrowers, tenant farmers, oral lessees, and sharecroppers are eligible.",
		Benefits:        "Short-term credit for cultivation of crops, post-harvest expenses, and other farm-related activities. The interest rate is as low as 4% upon prompt repayment.",
		ApplicationLink: "https://www.sbi.co.in/web/agri-rural/agriculture-banking/crop-finance/kisan-credit-card",
	},
}

var allocations = []entity.Allocation{
	{
		ID:       "alloc_seed_1",
		Item:     "Certified Wheat Seeds",
		Quantity: "50 KG",
		Status:   entity.AllocationAllocated,
		Date:     "2024-10-15",
	},
	{
		ID:       "alloc_fert_1",
		Item:     "Urea Fertilizer",
		Quantity: "2 Bags (45kg each)",
		Status:   entity.AllocationDelivered,
		Date:     "2024-10-05",
	},
	{
		ID:       "alloc_subsidy_1",
		Item:     "PM-Kisan Installment",
		Quantity: "₹2000",
		Status:   entity.AllocationDelivered,
		Date:     "2024-09-01",
	},
	{
		ID:       "alloc_seed_2",
		Item:     "Soybean Seeds (Kharif)",
		Quantity: "30 KG",
		Status:   entity.AllocationPending,
		Date:     "2025-05-20",
	},
}

type staticContent struct{}

// NewStaticContent is the constructor for the bundled content catalog.
func NewStaticContent() service.ContentService {
	return &staticContent{}
}

// Schemes returns copies so callers cannot mutate the catalog.
func (c *staticContent) Schemes(_ context.Context) ([]entity.Scheme, error) {
	out := make([]entity.Scheme, len(schemes))
	copy(out, schemes)

	return out, nil
}

func (c *staticContent) Allocations(_ context.Context) ([]entity.Allocation, error) {
	out := make([]entity.Allocation, len(allocations))
	copy(out, allocations)

	return out, nil
}
