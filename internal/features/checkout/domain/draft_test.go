package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()

	assert.Equal(t, DeliveryPickup, d.Delivery.Type)
	assert.Equal(t, TimeASAP, d.Delivery.TimeType)
	assert.Equal(t, PaymentCash, d.Payment.Method)
	assert.Zero(t, d.Loyalty)
}

func TestDraft_SetDeliveryType(t *testing.T) {
	t.Run("PickupClearsAddressAndCard", func(t *testing.T) {
		d := NewDraft()
		assert.NoError(t, d.SetDeliveryType(DeliveryDelivery))
		d.SetAddress("ул. Пушкина, дом 10")
		assert.NoError(t, d.SetPaymentMethod(PaymentCard))

		assert.NoError(t, d.SetDeliveryType(DeliveryPickup))
		assert.Empty(t, d.Delivery.Address)
		assert.Equal(t, PaymentCash, d.Payment.Method)
	})

	t.Run("PickupKeepsCardCourier", func(t *testing.T) {
		d := NewDraft()
		assert.NoError(t, d.SetPaymentMethod(PaymentCardCourier))
		assert.NoError(t, d.SetDeliveryType(DeliveryPickup))
		assert.Equal(t, PaymentCardCourier, d.Payment.Method)
	})

	t.Run("Unknown", func(t *testing.T) {
		d := NewDraft()
		assert.ErrorIs(t, d.SetDeliveryType("drone"), ErrInvalidOption)
		assert.Equal(t, DeliveryPickup, d.Delivery.Type)
	})
}

func TestDraft_SetAddressIgnoredForPickup(t *testing.T) {
	d := NewDraft()
	d.SetAddress("ул. Пушкина, дом 10")
	assert.Empty(t, d.Delivery.Address)
}

func TestDraft_SetTimeType(t *testing.T) {
	d := NewDraft()
	assert.NoError(t, d.SetTimeType(TimeScheduled))
	d.SetScheduledTime("12:30")
	d.Delivery.ScheduledDate = "2026-03-11"

	assert.NoError(t, d.SetTimeType(TimeASAP))
	assert.Empty(t, d.Delivery.ScheduledTime)
	assert.Empty(t, d.Delivery.ScheduledDate)

	assert.ErrorIs(t, d.SetTimeType("tomorrow"), ErrInvalidOption)
}

func TestDraft_SetPaymentMethod(t *testing.T) {
	d := NewDraft()
	assert.ErrorIs(t, d.SetPaymentMethod(PaymentCard), ErrCardRequiresDelivery)
	assert.Equal(t, PaymentCash, d.Payment.Method)

	assert.NoError(t, d.SetDeliveryType(DeliveryDelivery))
	assert.NoError(t, d.SetPaymentMethod(PaymentCard))
	assert.Equal(t, PaymentCard, d.Payment.Method)

	assert.ErrorIs(t, d.SetPaymentMethod("crypto"), ErrInvalidOption)
}

func TestDraft_UsePoints(t *testing.T) {
	d := NewDraft()

	assert.NoError(t, d.UsePoints(1250, 1300, 100))
	assert.Equal(t, Loyalty{UsePoints: true, PointsUsed: 1250, Discount: 12}, d.Loyalty)

	assert.NoError(t, d.UsePoints(0, 1300, 100))
	assert.Equal(t, Loyalty{}, d.Loyalty)

	assert.ErrorIs(t, d.UsePoints(1301, 1300, 100), ErrInvalidPoints)
	assert.ErrorIs(t, d.UsePoints(-1, 1300, 100), ErrInvalidPoints)
	assert.Equal(t, Loyalty{}, d.Loyalty, "rejected selection leaves loyalty untouched")
}

func TestDraft_RefitLoyalty(t *testing.T) {
	d := NewDraft()
	assert.NoError(t, d.UsePoints(500, 500, 100))

	assert.False(t, d.RefitLoyalty(800, 100))
	assert.Equal(t, Loyalty{UsePoints: true, PointsUsed: 500, Discount: 5}, d.Loyalty)

	assert.True(t, d.RefitLoyalty(200, 100))
	assert.Equal(t, Loyalty{}, d.Loyalty)
}

func TestDraft_RefitLoyaltyRecomputesDiscount(t *testing.T) {
	d := NewDraft()
	d.Loyalty = Loyalty{UsePoints: true, PointsUsed: 300, Discount: 9999}

	assert.False(t, d.RefitLoyalty(1300, 100))
	assert.Equal(t, 3, d.Loyalty.Discount)

	d.Loyalty = Loyalty{UsePoints: true, PointsUsed: 0, Discount: 50}
	assert.False(t, d.RefitLoyalty(1300, 100))
	assert.Equal(t, Loyalty{}, d.Loyalty)
}
