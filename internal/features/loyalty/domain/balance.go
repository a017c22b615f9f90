package domain

import (
	"bytes"
	"encoding/json"
)

// Level is the user's loyalty tier. The endpoint sends either a bare name or an object.
type Level struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// UnmarshalJSON accepts "Gold" as well as {"name":"Gold","color":"#f1c40f"}.
func (l *Level) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &l.Name)
	}

	type plain Level
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Level(p)
	return nil
}

// Balance is the user's loyalty balance.
type Balance struct {
	Points int    `json:"points"`
	Level  *Level `json:"level,omitempty"`
}

// MaxDiscount is the whole currency units the balance converts to.
func (b Balance) MaxDiscount(pointsPerUnit int) int {
	if pointsPerUnit <= 0 || b.Points <= 0 {
		return 0
	}
	return b.Points / pointsPerUnit
}
