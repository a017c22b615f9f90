package domain

import (
	"fmt"
	"time"

	shop "coffee-checkout/internal/features/shop/domain"

	"github.com/shopspring/decimal"
)

// Notice is a one-shot message for the page.
type Notice string

const (
	NoticeDraftRestored Notice = "draft_restored"
	NoticeRescheduled   Notice = "shop_closed_rescheduled"
)

// DefaultScheduledTime is proposed when an asap order is placed outside opening hours.
const DefaultScheduledTime = "10:00"

// GuardInput is what a guard sees before a forward transition. Guards may adjust Draft.
type GuardInput struct {
	Step     int
	Draft    *Draft
	Subtotal decimal.Decimal
	Now      time.Time
}

// Block explains why a transition did not happen.
type Block struct {
	Guard   string           `json:"guard"`
	Message string           `json:"message"`
	Fields  ValidationErrors `json:"fields,omitempty"`
	Notice  Notice           `json:"notice,omitempty"`
}

// Guard is a named check evaluated before moving forward. A nil Block lets the transition through.
type Guard struct {
	Name  string
	Check func(in *GuardInput) *Block
}

// StepValidation blocks when the current step's fields are invalid.
func StepValidation(hours shop.Hours) Guard {
	return Guard{
		Name: "step-validation",
		Check: func(in *GuardInput) *Block {
			errs := ValidateStep(in.Step, *in.Draft, hours)
			if errs.OK() {
				return nil
			}
			return &Block{Message: "Проверьте правильность заполнения полей", Fields: errs}
		},
	}
}

// MinOrder blocks leaving the delivery step while the subtotal is below min.
func MinOrder(min decimal.Decimal) Guard {
	return Guard{
		Name: "min-order",
		Check: func(in *GuardInput) *Block {
			if in.Step != StepDelivery || in.Subtotal.GreaterThanOrEqual(min) {
				return nil
			}
			return &Block{Message: fmt.Sprintf("Минимальная сумма заказа %s₽", min.String())}
		},
	}
}

// OpeningHours reschedules an asap order placed while the shop is closed to the next
// day and blocks once so the customer sees the change.
func OpeningHours(hours shop.Hours) Guard {
	return Guard{
		Name: "opening-hours",
		Check: func(in *GuardInput) *Block {
			d := in.Draft
			if in.Step != StepDelivery || d.Delivery.TimeType != TimeASAP || hours.OpenAt(in.Now) {
				return nil
			}

			slot := DefaultScheduledTime
			if m, _ := shop.ParseClock(slot); !hours.Contains(m) {
				slot = shop.FormatClock(hours.Open)
			}

			d.Delivery.TimeType = TimeScheduled
			d.Delivery.ScheduledTime = slot
			d.Delivery.ScheduledDate = hours.Local(in.Now).AddDate(0, 0, 1).Format(time.DateOnly)

			return &Block{
				Message: fmt.Sprintf("Сейчас кофейня закрыта. Заказ запланирован на завтра, %s", slot),
				Notice:  NoticeRescheduled,
			}
		},
	}
}

// DefaultGuards is the guard order used at checkout.
func DefaultGuards(p Pricing, hours shop.Hours) []Guard {
	return []Guard{
		StepValidation(hours),
		MinOrder(p.MinOrder),
		OpeningHours(hours),
	}
}

// Wizard walks the four checkout steps. Forward moves pass every guard in order;
// backward moves are never checked.
type Wizard struct {
	step   int
	guards []Guard
}

// NewWizard starts a wizard at the contact step.
func NewWizard(guards ...Guard) *Wizard {
	return &Wizard{step: StepContact, guards: guards}
}

// Step is the current step.
func (w *Wizard) Step() int {
	return w.step
}

// Next runs the guards and advances one step when none blocks. The last step stays put.
func (w *Wizard) Next(in GuardInput) *Block {
	in.Step = w.step
	for _, g := range w.guards {
		if b := g.Check(&in); b != nil {
			b.Guard = g.Name
			return b
		}
	}
	if w.step < StepConfirm {
		w.step++
	}
	return nil
}

// Back moves one step back. At the first step it reports exit instead.
func (w *Wizard) Back() (exit bool) {
	if w.step <= StepContact {
		return true
	}
	w.step--
	return false
}
