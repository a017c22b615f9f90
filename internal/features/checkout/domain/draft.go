package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidOption is returned when a selector receives an unknown value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrCardRequiresDelivery is returned when online card payment is chosen for pickup.
	ErrCardRequiresDelivery = errors.New("online card payment is only available for delivery")
	// ErrInvalidPoints is returned when the points to spend are negative or exceed the balance.
	ErrInvalidPoints = errors.New("points must be between 0 and the available balance")
)

// DeliveryType is how the order reaches the customer.
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// TimeType is when the order should be ready.
type TimeType string

const (
	TimeASAP      TimeType = "asap"
	TimeScheduled TimeType = "scheduled"
)

// PaymentMethod is how the order is paid.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentCard        PaymentMethod = "card"
	PaymentCardCourier PaymentMethod = "card_courier"
)

// Contact identifies the customer. UserID, Name and LastName are prefilled from the host identity.
type Contact struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	UserID   int64  `json:"userId"`
	Username string `json:"username,omitempty"`
}

// Delivery holds the delivery selection.
type Delivery struct {
	Type    DeliveryType `json:"type"`
	Address string       `json:"address"`
	// TimeType asap leaves ScheduledTime empty.
	TimeType      TimeType `json:"timeType"`
	ScheduledTime string   `json:"scheduledTime,omitempty"`
	// ScheduledDate is set, as YYYY-MM-DD, when the order was moved to a later day.
	ScheduledDate string `json:"scheduledDate,omitempty"`
}

// Payment holds the payment selection.
type Payment struct {
	Method PaymentMethod `json:"method"`
}

// Loyalty holds the points spent on this order. Discount is PointsUsed / perUnit, floored.
type Loyalty struct {
	UsePoints  bool `json:"usePoints"`
	PointsUsed int  `json:"pointsUsed"`
	Discount   int  `json:"discount"`
}

// Agreements are the consents required before submission.
type Agreements struct {
	Terms bool `json:"terms"`
	Rules bool `json:"rules"`
}

// Draft is the in-progress order. Mutate it through its methods to keep the
// delivery, payment and loyalty invariants.
type Draft struct {
	Contact    Contact    `json:"contact"`
	Delivery   Delivery   `json:"delivery"`
	Payment    Payment    `json:"payment"`
	Loyalty    Loyalty    `json:"loyalty"`
	Notes      string     `json:"notes"`
	Agreements Agreements `json:"agreements"`
	// SaveContact opts in to storing phone and email for the next checkout.
	SaveContact bool `json:"saveContact"`
}

// NewDraft returns a draft with the default selections: pickup, as soon as possible, cash.
func NewDraft() Draft {
	return Draft{
		Delivery: Delivery{Type: DeliveryPickup, TimeType: TimeASAP},
		Payment:  Payment{Method: PaymentCash},
	}
}

// SetDeliveryType switches between pickup and delivery. Pickup clears the address
// and replaces online card payment with cash.
func (d *Draft) SetDeliveryType(t DeliveryType) error {
	switch t {
	case DeliveryPickup:
		d.Delivery.Address = ""
		if d.Payment.Method == PaymentCard {
			d.Payment.Method = PaymentCash
		}
	case DeliveryDelivery:
	default:
		return ErrInvalidOption
	}
	d.Delivery.Type = t
	return nil
}

// SetAddress sets the delivery address. It is ignored for pickup.
func (d *Draft) SetAddress(address string) {
	if d.Delivery.Type != DeliveryDelivery {
		return
	}
	d.Delivery.Address = strings.TrimSpace(address)
}

// SetTimeType switches between asap and scheduled. Asap clears the scheduled time.
func (d *Draft) SetTimeType(t TimeType) error {
	switch t {
	case TimeASAP:
		d.Delivery.ScheduledTime = ""
		d.Delivery.ScheduledDate = ""
	case TimeScheduled:
	default:
		return ErrInvalidOption
	}
	d.Delivery.TimeType = t
	return nil
}

// SetScheduledTime records the requested "HH:MM". The value is checked by step validation.
func (d *Draft) SetScheduledTime(hhmm string) {
	d.Delivery.ScheduledTime = strings.TrimSpace(hhmm)
}

// SetPaymentMethod selects the payment method.
func (d *Draft) SetPaymentMethod(m PaymentMethod) error {
	switch m {
	case PaymentCash, PaymentCardCourier:
	case PaymentCard:
		if d.Delivery.Type != DeliveryDelivery {
			return ErrCardRequiresDelivery
		}
	default:
		return ErrInvalidOption
	}
	d.Payment.Method = m
	return nil
}

// UsePoints spends points out of the available balance at perUnit points per currency unit.
func (d *Draft) UsePoints(points, available, perUnit int) error {
	if points < 0 || points > available || perUnit <= 0 {
		return ErrInvalidPoints
	}
	d.Loyalty = Loyalty{
		UsePoints:  points > 0,
		PointsUsed: points,
		Discount:   points / perUnit,
	}
	return nil
}

// RefitLoyalty recomputes the points selection against the balance and rate,
// so a restored discount never outlives the points it was derived from.
// It reports whether the selection had to be dropped.
func (d *Draft) RefitLoyalty(available, perUnit int) bool {
	if d.Loyalty.PointsUsed == 0 {
		d.Loyalty = Loyalty{}
		return false
	}
	if err := d.UsePoints(d.Loyalty.PointsUsed, available, perUnit); err != nil {
		d.Loyalty = Loyalty{}
		return true
	}
	return false
}
