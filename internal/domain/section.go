package domain

// Section is a seating section of a stadium, the unit of priced inventory.
// EventID links the section to its marketplace quote.
type Section struct {
	ID      string `json:"id"`
	GameID  string `json:"game_id"`
	EventID string `json:"event_id"`
}

// SectionPrice is the canonical stored price for a section.
// MinPrice is whole dollars; the marketplace feed carries cents, so a
// rounding step sits between the two.
type SectionPrice struct {
	MinPrice int    `json:"min_price"`
	ImageURL string `json:"image_url"`
}

// MarketplaceQuote is externally sourced resale price data for an event,
// refreshed by the ingestion pipeline between runs. Read-only here.
type MarketplaceQuote struct {
	EventID        string  `json:"event_id"`
	MinTicketPrice float64 `json:"min_ticket_price"`
	AvgTicketPrice float64 `json:"avg_ticket_price"`
}
