package entity

// CurrentPrice is today's quote for a crop at a mandi.
type CurrentPrice struct {
	PricePerQuintal int     `json:"price_per_qtl"`
	Market          string  `json:"market"`
	ChangePct       float64 `json:"change_pct"`
}

// PricePoint is one day of price history.
type PricePoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Price int    `json:"price"`
}

// MarketData is the market view payload for one crop/region pair.
type MarketData struct {
	Crop    string       `json:"crop"`
	Region  string       `json:"region"`
	Current CurrentPrice `json:"current"`
	History []PricePoint `json:"history"`
}
