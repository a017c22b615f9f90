package domain

// Status describes the shop for the page header.
type Status struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	// LocalTime is the current shop-local time, "HH:MM".
	LocalTime string `json:"localTime"`
	Open      bool   `json:"open"`
}
