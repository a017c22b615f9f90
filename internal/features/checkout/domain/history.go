package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusPending is the status of every order recorded at submission.
const StatusPending = "pending"

// HistoryEntry summarizes a submitted order for the order history page.
type HistoryEntry struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Status string          `json:"status"`
	Items  []OrderItem     `json:"items"`
}

// NewHistoryEntry records payload under the display number.
func NewHistoryEntry(number string, payload OrderPayload) HistoryEntry {
	return HistoryEntry{
		ID:     number,
		Date:   payload.CreatedAt,
		Total:  payload.Total,
		Status: StatusPending,
		Items:  payload.Items,
	}
}

// PrependHistory puts e first and keeps at most limit entries.
func PrependHistory(entries []HistoryEntry, e HistoryEntry, limit int) []HistoryEntry {
	out := append([]HistoryEntry{e}, entries...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DisplayNumber renders the order number shown to the customer. A receiver reference
// wins; otherwise random supplies a placeholder in [0, 90000) that is not unique.
func DisplayNumber(reference string, random func(n int) int) string {
	if ref := strings.TrimSpace(reference); ref != "" {
		return "#" + strings.TrimPrefix(ref, "#")
	}
	return fmt.Sprintf("#%d", 10000+random(90000))
}
