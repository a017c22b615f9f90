package domain

import "strings"

// ContactInput replaces the editable contact fields.
type ContactInput struct {
	Name     string
	LastName string
	Phone    string
	Email    string
}

// DeliveryInput changes the delivery selection. Nil fields are left as they are.
// Fields apply in order: type, address, time type, scheduled time.
type DeliveryInput struct {
	Type          *DeliveryType
	Address       *string
	TimeType      *TimeType
	ScheduledTime *string
}

// AgreementsInput changes the consents and the contact opt-in. Nil fields are left as they are.
type AgreementsInput struct {
	Terms       *bool
	Rules       *bool
	SaveContact *bool
}

// ApplyContact replaces the editable contact fields.
func (d *Draft) ApplyContact(in ContactInput) {
	d.Contact.Name = strings.TrimSpace(in.Name)
	d.Contact.LastName = strings.TrimSpace(in.LastName)
	d.Contact.Phone = strings.TrimSpace(in.Phone)
	d.Contact.Email = strings.TrimSpace(in.Email)
}

// ApplyDelivery applies the non-nil fields of in. It stops at the first rejected value.
func (d *Draft) ApplyDelivery(in DeliveryInput) error {
	if in.Type != nil {
		if err := d.SetDeliveryType(*in.Type); err != nil {
			return err
		}
	}
	if in.Address != nil {
		d.SetAddress(*in.Address)
	}
	if in.TimeType != nil {
		if err := d.SetTimeType(*in.TimeType); err != nil {
			return err
		}
	}
	if in.ScheduledTime != nil {
		d.SetScheduledTime(*in.ScheduledTime)
	}
	return nil
}

// ApplyAgreements applies the non-nil fields of in.
func (d *Draft) ApplyAgreements(in AgreementsInput) {
	if in.Terms != nil {
		d.Agreements.Terms = *in.Terms
	}
	if in.Rules != nil {
		d.Agreements.Rules = *in.Rules
	}
	if in.SaveContact != nil {
		d.SaveContact = *in.SaveContact
	}
}
