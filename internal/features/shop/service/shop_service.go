package service

import (
	"context"
	"time"

	"coffee-checkout/internal/features/shop/domain"
)

// ShopService reports the shop's identity and whether it is open.
type ShopService struct {
	name    string
	address string
	hours   domain.Hours
	now     func() time.Time
}

// NewShopService creates a new instance of ShopService.
func NewShopService(name, address string, hours domain.Hours) *ShopService {
	return &ShopService{
		name:    name,
		address: address,
		hours:   hours,
		now:     time.Now,
	}
}

// Status returns the shop status at the current time.
func (s *ShopService) Status(ctx context.Context) domain.Status {
	now := s.now()
	return domain.Status{
		Name:        s.name,
		Address:     s.address,
		OpeningTime: domain.FormatClock(s.hours.Open),
		ClosingTime: domain.FormatClock(s.hours.Close),
		LocalTime:   s.hours.Local(now).Format("15:04"),
		Open:        s.hours.OpenAt(now),
	}
}
