package domain

import (
	"time"

	cart "coffee-checkout/internal/features/cart/domain"
)

// SnapshotVersion is written into every snapshot.
const SnapshotVersion = 1

// Snapshot is the recovery copy of a checkout in progress.
type Snapshot struct {
	Version  int         `json:"version"`
	SavedAt  time.Time   `json:"savedAt"`
	Contact  Contact     `json:"contact"`
	Delivery Delivery    `json:"delivery"`
	Payment  Payment     `json:"payment"`
	Loyalty  Loyalty     `json:"loyalty"`
	Notes    string      `json:"notes"`
	Cart     []cart.Item `json:"cart"`
}

// NewSnapshot captures d and items at now.
func NewSnapshot(d Draft, items []cart.Item, now time.Time) Snapshot {
	return Snapshot{
		Version:  SnapshotVersion,
		SavedAt:  now,
		Contact:  d.Contact,
		Delivery: d.Delivery,
		Payment:  d.Payment,
		Loyalty:  d.Loyalty,
		Notes:    d.Notes,
		Cart:     append([]cart.Item(nil), items...),
	}
}

// Expired reports whether the snapshot is older than ttl at now.
func (s Snapshot) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.SavedAt) > ttl
}

// Apply restores the snapshot's fields into d. The user id is kept from d.
// Restored selections go through the draft mutators so they keep its invariants.
func (s Snapshot) Apply(d *Draft) {
	userID := d.Contact.UserID
	d.Contact = s.Contact
	if userID != 0 {
		d.Contact.UserID = userID
	}

	restored := NewDraft()
	if err := restored.SetDeliveryType(s.Delivery.Type); err == nil {
		restored.SetAddress(s.Delivery.Address)
	}
	if err := restored.SetTimeType(s.Delivery.TimeType); err == nil && s.Delivery.TimeType == TimeScheduled {
		restored.SetScheduledTime(s.Delivery.ScheduledTime)
		restored.Delivery.ScheduledDate = s.Delivery.ScheduledDate
	}
	_ = restored.SetPaymentMethod(s.Payment.Method)

	d.Delivery = restored.Delivery
	d.Payment = restored.Payment
	d.Loyalty = s.Loyalty
	d.Notes = s.Notes
}
