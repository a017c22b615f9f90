package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"coffee-checkout/internal/core/identity"
	"coffee-checkout/internal/core/logger"
	cart "coffee-checkout/internal/features/cart/domain"
	"coffee-checkout/internal/features/checkout/domain"
	"coffee-checkout/internal/features/checkout/ports"
	loyalty "coffee-checkout/internal/features/loyalty/domain"
	shop "coffee-checkout/internal/features/shop/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCart is returned when checkout starts or submits with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoSession is returned when the user has no checkout in progress.
	ErrNoSession = errors.New("checkout not started")
	// ErrNotAtFinalStep is returned when submitting before the confirmation step.
	ErrNotAtFinalStep = errors.New("order can only be submitted from the last step")
	// ErrSubmissionInProgress is returned while another submission of the same checkout runs.
	ErrSubmissionInProgress = errors.New("order submission already in progress")
	// ErrSubmissionFailed is returned when the order channel did not acknowledge the order.
	ErrSubmissionFailed = errors.New("order could not be delivered")
)

// ValidationError carries the per-field messages that blocked a submission.
type ValidationError struct {
	Block *domain.Block
}

func (e *ValidationError) Error() string {
	return e.Block.Message
}

// Settings are the business rules and lifetimes the checkout runs with.
type Settings struct {
	Pricing       domain.Pricing
	Hours         shop.Hours
	PointsPerUnit int
	PickupAddress string
	// DraftTTL is how long a snapshot can be restored.
	DraftTTL time.Duration
	// SaveInterval is the autosave cadence.
	SaveInterval time.Duration
	// IdleTTL evicts sessions untouched for this long. Zero keeps them.
	IdleTTL      time.Duration
	HistoryLimit int
	// LockTTL bounds a single submission.
	LockTTL time.Duration
}

// Dependencies are the collaborators of CheckoutService.
type Dependencies struct {
	Carts     ports.CartStore
	Drafts    ports.DraftRepository
	Contacts  ports.ContactRepository
	History   ports.HistoryRepository
	Loyalty   ports.LoyaltyReader
	Submitter ports.OrderSubmitter
	Locker    ports.Locker
}

// session is one user's live checkout.
type session struct {
	mu             sync.Mutex
	userID         int64
	draft          domain.Draft
	wizard         *domain.Wizard
	items          []cart.Item
	balance        loyalty.Balance
	idempotencyKey string
	// dirty is set by every change and cleared by a successful snapshot.
	dirty   bool
	touched time.Time
	// closed sessions were submitted or evicted and must not be used.
	closed bool
}

// CheckoutService runs the checkout wizard for every user with a checkout in progress.
type CheckoutService struct {
	settings Settings
	deps     Dependencies
	guards   []domain.Guard
	log      *zap.Logger

	now    func() time.Time
	random func(n int) int
	newKey func() string

	mu       sync.Mutex
	sessions map[int64]*session
}

// NewCheckoutService creates a new instance of CheckoutService.
func NewCheckoutService(settings Settings, deps Dependencies) *CheckoutService {
	if settings.LockTTL <= 0 {
		settings.LockTTL = time.Minute
	}
	return &CheckoutService{
		settings: settings,
		deps:     deps,
		guards:   domain.DefaultGuards(settings.Pricing, settings.Hours),
		log:      logger.Named("checkout"),
		now:      time.Now,
		random:   rand.Intn,
		newKey:   uuid.NewString,
		sessions: make(map[int64]*session),
	}
}

// Begin enters checkout: it prefills the draft, restores a recent snapshot and
// writes a fresh one. A session already in progress is replaced.
func (s *CheckoutService) Begin(ctx context.Context, id *identity.Identity) (domain.View, error) {
	if id == nil {
		return domain.View{}, ErrNoSession
	}
	userID := id.User.ID
	now := s.now()

	key := s.newKey()
	if prev := s.detach(userID); prev != nil {
		key = prev.idempotencyKey
		s.closeSession(ctx, prev, now)
	}

	items, err := s.deps.Carts.Items(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}

	snap, err := s.deps.Drafts.Load(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}
	if snap != nil && snap.Expired(now, s.settings.DraftTTL) {
		s.log.Debug("Discarding expired draft", zap.Int64("user_id", userID), zap.Time("saved_at", snap.SavedAt))
		if err := s.deps.Drafts.Delete(ctx, userID); err != nil {
			s.log.Warn("Failed to delete expired draft", zap.Int64("user_id", userID), zap.Error(err))
		}
		snap = nil
	}

	// The snapshot's cart only recovers a cart record that is gone; a cart the
	// user emptied stays empty.
	if len(items) == 0 && snap != nil && len(snap.Cart) > 0 {
		stored, err := s.deps.Carts.Stored(ctx, userID)
		if err != nil {
			return domain.View{}, err
		}
		if stored {
			s.log.Debug("Cart was emptied, not restoring it from the draft", zap.Int64("user_id", userID))
		} else {
			if err := s.deps.Carts.Restore(ctx, userID, snap.Cart); err != nil {
				return domain.View{}, err
			}
			if items, err = s.deps.Carts.Items(ctx, userID); err != nil {
				return domain.View{}, err
			}
		}
	}
	if len(items) == 0 {
		return domain.View{}, ErrEmptyCart
	}

	draft := domain.NewDraft()
	draft.Contact = domain.Contact{
		UserID:   userID,
		Name:     id.User.FirstName,
		LastName: id.User.LastName,
		Username: id.User.Username,
	}
	saved, found, err := s.deps.Contacts.Load(ctx, userID)
	if err != nil {
		s.log.Warn("Contact prefill unavailable", zap.Int64("user_id", userID), zap.Error(err))
	}
	if found {
		draft.Contact.Phone = saved.Phone
		draft.Contact.Email = saved.Email
	}

	balance := s.deps.Loyalty.Balance(ctx)

	var notice domain.Notice
	if snap != nil {
		snap.Apply(&draft)
		notice = domain.NoticeDraftRestored
	}
	if draft.RefitLoyalty(balance.Points, s.settings.PointsPerUnit) {
		s.log.Info("Restored points exceed balance, dropping them", zap.Int64("user_id", userID))
	}

	sess := &session{
		userID:         userID,
		draft:          draft,
		wizard:         domain.NewWizard(s.guards...),
		items:          items,
		balance:        balance,
		idempotencyKey: key,
		dirty:          true,
		touched:        now,
	}
	if err := s.save(ctx, sess, now); err != nil {
		s.log.Warn("Initial draft snapshot failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()

	s.log.Info("Checkout started",
		zap.Int64("user_id", userID),
		zap.Bool("restored", snap != nil),
		zap.Int("items", len(items)),
	)
	return s.view(sess, notice), nil
}

// Get returns the checkout with fresh totals.
func (s *CheckoutService) Get(ctx context.Context, userID int64) (domain.View, error) {
	sess, err := s.lockSession(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}
	defer sess.mu.Unlock()

	sess.touched = s.now()
	return s.view(sess, ""), nil
}

// UpdateContact replaces the editable contact fields.
func (s *CheckoutService) UpdateContact(ctx context.Context, userID int64, in domain.ContactInput) (domain.View, error) {
	return s.update(ctx, userID, func(_ *session, d *domain.Draft) error {
		d.ApplyContact(in)
		return nil
	})
}

// UpdateDelivery applies a delivery change as a whole; a rejected value changes nothing.
func (s *CheckoutService) UpdateDelivery(ctx context.Context, userID int64, in domain.DeliveryInput) (domain.View, error) {
	return s.update(ctx, userID, func(_ *session, d *domain.Draft) error {
		return d.ApplyDelivery(in)
	})
}

// SetDeliveryType switches between pickup and delivery.
func (s *CheckoutService) SetDeliveryType(ctx context.Context, userID int64, t domain.DeliveryType) (domain.View, error) {
	return s.UpdateDelivery(ctx, userID, domain.DeliveryInput{Type: &t})
}

// SetAddress sets the delivery address.
func (s *CheckoutService) SetAddress(ctx context.Context, userID int64, address string) (domain.View, error) {
	return s.UpdateDelivery(ctx, userID, domain.DeliveryInput{Address: &address})
}

// SetTimeType switches between asap and scheduled.
func (s *CheckoutService) SetTimeType(ctx context.Context, userID int64, t domain.TimeType) (domain.View, error) {
	return s.UpdateDelivery(ctx, userID, domain.DeliveryInput{TimeType: &t})
}

// SetScheduledTime sets the requested "HH:MM".
func (s *CheckoutService) SetScheduledTime(ctx context.Context, userID int64, hhmm string) (domain.View, error) {
	return s.UpdateDelivery(ctx, userID, domain.DeliveryInput{ScheduledTime: &hhmm})
}

// SetPaymentMethod selects the payment method.
func (s *CheckoutService) SetPaymentMethod(ctx context.Context, userID int64, m domain.PaymentMethod) (domain.View, error) {
	return s.update(ctx, userID, func(_ *session, d *domain.Draft) error {
		return d.SetPaymentMethod(m)
	})
}

// UsePoints spends points from the balance read at checkout entry.
func (s *CheckoutService) UsePoints(ctx context.Context, userID int64, points int) (domain.View, error) {
	return s.update(ctx, userID, func(sess *session, d *domain.Draft) error {
		return d.UsePoints(points, sess.balance.Points, s.settings.PointsPerUnit)
	})
}

// SetNotes sets the free-text notes.
func (s *CheckoutService) SetNotes(ctx context.Context, userID int64, notes string) (domain.View, error) {
	return s.update(ctx, userID, func(_ *session, d *domain.Draft) error {
		d.Notes = strings.TrimSpace(notes)
		return nil
	})
}

// SetAgreements changes the consents and the contact opt-in.
func (s *CheckoutService) SetAgreements(ctx context.Context, userID int64, in domain.AgreementsInput) (domain.View, error) {
	return s.update(ctx, userID, func(_ *session, d *domain.Draft) error {
		d.ApplyAgreements(in)
		return nil
	})
}

// SetSaveContact opts in or out of storing phone and email for next time.
func (s *CheckoutService) SetSaveContact(ctx context.Context, userID int64, save bool) (domain.View, error) {
	return s.SetAgreements(ctx, userID, domain.AgreementsInput{SaveContact: &save})
}

// Next tries to move one step forward. A refused move is reported in View.Block.
func (s *CheckoutService) Next(ctx context.Context, userID int64) (domain.View, error) {
	sess, err := s.lockSession(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}
	defer sess.mu.Unlock()

	d := sess.draft
	block := sess.wizard.Next(domain.GuardInput{
		Draft:    &d,
		Subtotal: cart.Subtotal(sess.items),
		Now:      s.now(),
	})
	sess.draft = d
	s.touch(sess)

	v := s.view(sess, "")
	if block != nil {
		v.Block = block
		v.Notice = block.Notice
	}
	return v, nil
}

// Back moves one step back. On the first step the view asks the page to exit.
func (s *CheckoutService) Back(ctx context.Context, userID int64) (domain.View, error) {
	sess, err := s.lockSession(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}
	defer sess.mu.Unlock()

	exit := sess.wizard.Back()
	s.touch(sess)

	v := s.view(sess, "")
	v.Exit = exit
	return v, nil
}

// Submit hands the order to the order channel and waits for its acknowledgement.
// Cart, draft and session are cleared only once the order is acknowledged.
func (s *CheckoutService) Submit(ctx context.Context, userID int64) (domain.Confirmation, error) {
	sess, err := s.lockSession(ctx, userID)
	if err != nil {
		return domain.Confirmation{}, err
	}
	defer sess.mu.Unlock()

	if sess.wizard.Step() != domain.StepConfirm {
		return domain.Confirmation{}, ErrNotAtFinalStep
	}
	if len(sess.items) == 0 {
		return domain.Confirmation{}, ErrEmptyCart
	}
	if errs := domain.ValidateOrder(sess.draft, s.settings.Hours); !errs.OK() {
		return domain.Confirmation{}, &ValidationError{Block: &domain.Block{
			Guard:   "step-validation",
			Message: "Проверьте правильность заполнения полей",
			Fields:  errs,
		}}
	}
	if subtotal := cart.Subtotal(sess.items); !s.settings.Pricing.MeetsMinimum(subtotal) {
		return domain.Confirmation{}, &ValidationError{Block: &domain.Block{
			Guard:   "min-order",
			Message: fmt.Sprintf("Минимальная сумма заказа %s₽", s.settings.Pricing.MinOrder.String()),
		}}
	}

	lockKey := fmt.Sprintf("submit:%d", userID)
	lockToken, acquired, err := s.deps.Locker.Acquire(ctx, lockKey, s.settings.LockTTL)
	if err != nil {
		return domain.Confirmation{}, err
	}
	if !acquired {
		return domain.Confirmation{}, ErrSubmissionInProgress
	}
	defer func() {
		if err := s.deps.Locker.Release(context.WithoutCancel(ctx), lockKey, lockToken); err != nil {
			s.log.Warn("Failed to release submission lock", zap.Int64("user_id", userID), zap.Error(err))
		}
	}()

	d := sess.draft
	if d.SaveContact {
		saved := domain.SavedContact{Phone: d.Contact.Phone, Email: d.Contact.Email}
		if err := s.deps.Contacts.Save(ctx, userID, saved); err != nil {
			s.log.Warn("Failed to save contact prefill", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	now := s.now()
	totals := s.settings.Pricing.Totals(sess.items, d)
	payload := domain.BuildPayload(d, sess.items, totals, sess.idempotencyKey, now)

	ack, err := s.deps.Submitter.Submit(ctx, payload)
	if err != nil {
		s.log.Error("Order submission failed",
			zap.Int64("user_id", userID),
			zap.String("idempotency_key", sess.idempotencyKey),
			zap.Error(err),
		)
		return domain.Confirmation{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	number := domain.DisplayNumber(ack.Reference, s.random)
	s.log.Info("Order submitted",
		zap.Int64("user_id", userID),
		zap.String("order_number", number),
		zap.String("total", totals.Total.String()),
	)

	// The order is accepted; failures below only affect local state.
	if err := s.deps.History.Prepend(ctx, userID, domain.NewHistoryEntry(number, payload), s.settings.HistoryLimit); err != nil {
		s.log.Warn("Failed to record order history", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := s.deps.Carts.Reset(ctx, userID); err != nil {
		s.log.Warn("Failed to clear cart", zap.Int64("user_id", userID), zap.Error(err))
	}
	if err := s.deps.Drafts.Delete(ctx, userID); err != nil {
		s.log.Warn("Failed to delete draft", zap.Int64("user_id", userID), zap.Error(err))
	}

	sess.closed = true
	s.mu.Lock()
	if s.sessions[userID] == sess {
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	return domain.Confirmation{
		OrderNumber: number,
		Reference:   ack.Reference,
		Total:       totals.Total,
		Items:       payload.Items,
		PlacedAt:    now,
	}, nil
}

// History returns the user's recent orders, newest first.
func (s *CheckoutService) History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	return s.deps.History.List(ctx, userID)
}

// Run snapshots changed sessions every SaveInterval until ctx is done, then flushes once more.
func (s *CheckoutService) Run(ctx context.Context) error {
	interval := s.settings.SaveInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.log.Info("Draft autosave started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			saved := s.Flush(flushCtx)
			cancel()
			s.log.Info("Draft autosave stopped", zap.Int("saved", saved))
			return nil
		case <-ticker.C:
			s.Flush(ctx)
		}
	}
}

// Flush snapshots every changed session and evicts sessions idle past IdleTTL.
// Sessions busy with another call are skipped until the next flush.
func (s *CheckoutService) Flush(ctx context.Context) int {
	now := s.now()

	s.mu.Lock()
	live := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		live = append(live, sess)
	}
	s.mu.Unlock()

	saved := 0
	var idle []*session
	for _, sess := range live {
		if !sess.mu.TryLock() {
			continue
		}
		if !sess.closed {
			if sess.dirty {
				if err := s.save(ctx, sess, now); err != nil {
					s.log.Warn("Draft autosave failed", zap.Int64("user_id", sess.userID), zap.Error(err))
				} else {
					saved++
				}
			}
			if s.settings.IdleTTL > 0 && !sess.dirty && now.Sub(sess.touched) > s.settings.IdleTTL {
				sess.closed = true
				idle = append(idle, sess)
			}
		}
		sess.mu.Unlock()
	}

	if len(idle) > 0 {
		s.mu.Lock()
		for _, sess := range idle {
			if s.sessions[sess.userID] == sess {
				delete(s.sessions, sess.userID)
			}
		}
		s.mu.Unlock()
		s.log.Debug("Evicted idle checkouts", zap.Int("count", len(idle)))
	}

	return saved
}

// lockSession returns the user's session locked, with the cart re-read.
func (s *CheckoutService) lockSession(ctx context.Context, userID int64) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return nil, ErrNoSession
	}

	items, err := s.deps.Carts.Items(ctx, userID)
	if err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	sess.items = items
	return sess, nil
}

// update applies fn to a copy of the draft and keeps the copy only when fn succeeds.
func (s *CheckoutService) update(ctx context.Context, userID int64, fn func(sess *session, d *domain.Draft) error) (domain.View, error) {
	sess, err := s.lockSession(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}
	defer sess.mu.Unlock()

	d := sess.draft
	if err := fn(sess, &d); err != nil {
		return domain.View{}, err
	}
	sess.draft = d
	s.touch(sess)

	return s.view(sess, ""), nil
}

// detach removes and returns the user's current session, if any.
func (s *CheckoutService) detach(userID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	delete(s.sessions, userID)
	return sess
}

// closeSession snapshots a replaced session so its latest changes can be restored.
func (s *CheckoutService) closeSession(ctx context.Context, sess *session, now time.Time) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return
	}
	if sess.dirty {
		if err := s.save(ctx, sess, now); err != nil {
			s.log.Warn("Failed to snapshot replaced checkout", zap.Int64("user_id", sess.userID), zap.Error(err))
		}
	}
	sess.closed = true
}

// save writes sess's snapshot with the cart as currently stored. Callers hold sess.mu.
func (s *CheckoutService) save(ctx context.Context, sess *session, now time.Time) error {
	items, err := s.deps.Carts.Items(ctx, sess.userID)
	if err != nil {
		return fmt.Errorf("failed to read cart for snapshot: %w", err)
	}
	sess.items = items

	snap := domain.NewSnapshot(sess.draft, sess.items, now)
	if err := s.deps.Drafts.Save(ctx, sess.userID, snap, s.settings.DraftTTL); err != nil {
		return err
	}
	sess.dirty = false
	return nil
}

func (s *CheckoutService) touch(sess *session) {
	sess.dirty = true
	sess.touched = s.now()
}

func (s *CheckoutService) view(sess *session, notice domain.Notice) domain.View {
	items := sess.items
	if items == nil {
		items = []cart.Item{}
	}

	return domain.View{
		Step:   sess.wizard.Step(),
		Draft:  sess.draft,
		Items:  items,
		Totals: s.settings.Pricing.Totals(items, sess.draft),
		Loyalty: domain.LoyaltyState{
			Available:   sess.balance.Points,
			MaxDiscount: sess.balance.MaxDiscount(s.settings.PointsPerUnit),
			Level:       sess.balance.Level,
		},
		PickupAddress: s.settings.PickupAddress,
		Notice:        notice,
	}
}
