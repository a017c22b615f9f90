package domain

import (
	"encoding/json"
	"testing"
	"time"

	cart "coffee-checkout/internal/features/cart/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledDraft(t *testing.T) Draft {
	t.Helper()
	d := NewDraft()
	d.Contact = Contact{Name: "Анна", LastName: "Петрова", Phone: "89161234567", Email: "anna@example.ru", UserID: 42}
	require.NoError(t, d.SetDeliveryType(DeliveryDelivery))
	d.SetAddress("ул. Пушкина, дом 10")
	require.NoError(t, d.SetTimeType(TimeScheduled))
	d.SetScheduledTime("12:30")
	require.NoError(t, d.SetPaymentMethod(PaymentCard))
	require.NoError(t, d.UsePoints(500, 800, 100))
	d.Notes = "без сахара"
	d.Agreements = Agreements{Terms: true, Rules: true}
	return d
}

func TestSnapshot_Expired(t *testing.T) {
	saved := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewSnapshot(NewDraft(), nil, saved)

	assert.False(t, s.Expired(saved.Add(59*time.Minute), time.Hour))
	assert.False(t, s.Expired(saved.Add(time.Hour), time.Hour))
	assert.True(t, s.Expired(saved.Add(61*time.Minute), time.Hour))
}

func TestSnapshot_RoundTripRestoresAllFields(t *testing.T) {
	src := filledDraft(t)
	lines := items(180, 1, 170, 2)
	s := NewSnapshot(src, lines, time.Now())

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var loaded Snapshot
	require.NoError(t, json.Unmarshal(raw, &loaded))

	dst := NewDraft()
	dst.Contact.UserID = 42
	loaded.Apply(&dst)

	assert.Equal(t, src.Contact, dst.Contact)
	assert.Equal(t, src.Delivery, dst.Delivery)
	assert.Equal(t, src.Payment, dst.Payment)
	assert.Equal(t, src.Loyalty, dst.Loyalty)
	assert.Equal(t, src.Notes, dst.Notes)
	assert.False(t, dst.Agreements.Terms, "consents are not restored")
	assert.Len(t, loaded.Cart, 2)
	assert.Equal(t, SnapshotVersion, loaded.Version)
}

func TestSnapshot_ApplyKeepsInvariants(t *testing.T) {
	s := Snapshot{
		Delivery: Delivery{Type: DeliveryPickup, Address: "ул. Пушкина, дом 10", TimeType: TimeASAP, ScheduledTime: "12:00"},
		Payment:  Payment{Method: PaymentCard},
	}

	d := NewDraft()
	s.Apply(&d)

	assert.Empty(t, d.Delivery.Address)
	assert.Empty(t, d.Delivery.ScheduledTime)
	assert.Equal(t, PaymentCash, d.Payment.Method)
}

func TestSnapshot_ApplyUnknownValues(t *testing.T) {
	s := Snapshot{Delivery: Delivery{Type: "teleport", TimeType: "never"}, Payment: Payment{Method: "barter"}}

	d := NewDraft()
	s.Apply(&d)

	assert.Equal(t, NewDraft().Delivery, d.Delivery)
	assert.Equal(t, PaymentCash, d.Payment.Method)
}

func TestSnapshot_CopiesCart(t *testing.T) {
	lines := []cart.Item{{ID: 1, Quantity: 1}}
	s := NewSnapshot(NewDraft(), lines, time.Now())
	lines[0].Quantity = 5

	assert.Equal(t, 1, s.Cart[0].Quantity)
}
