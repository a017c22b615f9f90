package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	shop "coffee-checkout/internal/features/shop/domain"
)

// Field keys used in ValidationErrors.
const (
	FieldName          = "name"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldAddress       = "address"
	FieldScheduledTime = "scheduledTime"
	FieldTerms         = "terms"
	FieldRules         = "rules"
)

// Wizard steps.
const (
	StepContact  = 1
	StepDelivery = 2
	StepReview   = 3
	StepConfirm  = 4
)

// ValidationErrors maps a field to its user-facing message. Empty means valid.
type ValidationErrors map[string]string

// OK reports whether there are no errors.
func (v ValidationErrors) OK() bool {
	return len(v) == 0
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidName requires at least two characters after trimming.
func ValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= 2
}

// ValidPhone accepts Russian mobile numbers: 11 digits starting with 7 or 8
// followed by an operator code starting with 4, 8 or 9.
func ValidPhone(phone string) bool {
	digits := NormalizePhone(phone)
	if len(digits) != 11 {
		return false
	}
	if digits[0] != '7' && digits[0] != '8' {
		return false
	}
	return strings.ContainsRune("489", rune(digits[1]))
}

// ValidEmail accepts an empty value or a local@domain.tld address.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email == "" || emailPattern.MatchString(email)
}

// ValidAddress requires at least ten characters after trimming.
func ValidAddress(address string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(address)) >= 10
}

// ValidateStep checks the fields owned by step. Step 3 never fails.
func ValidateStep(step int, d Draft, hours shop.Hours) ValidationErrors {
	errs := ValidationErrors{}

	switch step {
	case StepContact:
		if !ValidName(d.Contact.Name) {
			errs[FieldName] = "Имя должно содержать минимум 2 символа"
		}
		if !ValidPhone(d.Contact.Phone) {
			errs[FieldPhone] = "Введите корректный номер телефона"
		}
		if !ValidEmail(d.Contact.Email) {
			errs[FieldEmail] = "Введите корректный email"
		}

	case StepDelivery:
		if d.Delivery.Type == DeliveryDelivery && !ValidAddress(d.Delivery.Address) {
			errs[FieldAddress] = "Адрес должен содержать минимум 10 символов"
		}
		if d.Delivery.TimeType == TimeScheduled {
			if msg := validateScheduledTime(d.Delivery.ScheduledTime, hours); msg != "" {
				errs[FieldScheduledTime] = msg
			}
		}

	case StepConfirm:
		if !d.Agreements.Terms {
			errs[FieldTerms] = "Необходимо согласие с условиями"
		}
		if !d.Agreements.Rules {
			errs[FieldRules] = "Необходимо согласие с правилами"
		}
	}

	return errs
}

func validateScheduledTime(hhmm string, hours shop.Hours) string {
	if hhmm == "" {
		return "Выберите время"
	}
	minute, err := shop.ParseClock(hhmm)
	if err != nil || !hours.Contains(minute) {
		return fmt.Sprintf("Время должно быть между %s и %s",
			shop.FormatClock(hours.Open), shop.FormatClock(hours.Close))
	}
	return ""
}

// ValidateOrder checks every step that has fields, for the final submission.
func ValidateOrder(d Draft, hours shop.Hours) ValidationErrors {
	errs := ValidationErrors{}
	for _, step := range []int{StepContact, StepDelivery, StepConfirm} {
		for field, msg := range ValidateStep(step, d, hours) {
			errs[field] = msg
		}
	}
	return errs
}
