package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coffee-checkout/internal/core/cache"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/features/checkout/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	contactTTL = 180 * 24 * time.Hour
	historyTTL = 180 * 24 * time.Hour
)

func draftKey(userID int64) string   { return fmt.Sprintf("draft:%d", userID) }
func contactKey(userID int64) string { return fmt.Sprintf("contact:%d", userID) }
func historyKey(userID int64) string { return fmt.Sprintf("history:%d", userID) }

// CacheDraftRepository implements ports.DraftRepository on the key-value store.
type CacheDraftRepository struct {
	cache cache.Cache
}

// NewCacheDraftRepository creates a new CacheDraftRepository.
func NewCacheDraftRepository(c cache.Cache) *CacheDraftRepository {
	return &CacheDraftRepository{cache: c}
}

// Load returns the user's snapshot, or nil when it is missing or unreadable.
func (r *CacheDraftRepository) Load(ctx context.Context, userID int64) (*domain.Snapshot, error) {
	var s domain.Snapshot
	found, err := cache.GetJSON(ctx, r.cache, draftKey(userID), &s)
	if errors.Is(err, cache.ErrCorrupt) {
		logger.Get().Warn("Discarding unreadable draft", zap.Int64("user_id", userID), zap.Error(err))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &s, nil
}

// Save stores the snapshot; the store drops it after ttl.
func (r *CacheDraftRepository) Save(ctx context.Context, userID int64, s domain.Snapshot, ttl time.Duration) error {
	if err := cache.PutJSON(ctx, r.cache, draftKey(userID), s, ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Delete removes the user's snapshot.
func (r *CacheDraftRepository) Delete(ctx context.Context, userID int64) error {
	if err := r.cache.Delete(ctx, draftKey(userID)); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// CacheContactRepository implements ports.ContactRepository on the key-value store.
type CacheContactRepository struct {
	cache cache.Cache
}

// NewCacheContactRepository creates a new CacheContactRepository.
func NewCacheContactRepository(c cache.Cache) *CacheContactRepository {
	return &CacheContactRepository{cache: c}
}

// Load returns the saved prefill, reporting false when there is none.
func (r *CacheContactRepository) Load(ctx context.Context, userID int64) (domain.SavedContact, bool, error) {
	var c domain.SavedContact
	found, err := cache.GetJSON(ctx, r.cache, contactKey(userID), &c)
	if errors.Is(err, cache.ErrCorrupt) {
		logger.Get().Warn("Discarding unreadable contact prefill", zap.Int64("user_id", userID), zap.Error(err))
		return domain.SavedContact{}, false, nil
	}
	if err != nil {
		return domain.SavedContact{}, false, fmt.Errorf("failed to load contact: %w", err)
	}
	return c, found, nil
}

// Save stores the prefill.
func (r *CacheContactRepository) Save(ctx context.Context, userID int64, c domain.SavedContact) error {
	if err := cache.PutJSON(ctx, r.cache, contactKey(userID), c, contactTTL); err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

// CacheHistoryRepository implements ports.HistoryRepository on the key-value store.
// The list is stored as one value and rewritten on every order.
type CacheHistoryRepository struct {
	cache cache.Cache
}

// NewCacheHistoryRepository creates a new CacheHistoryRepository.
func NewCacheHistoryRepository(c cache.Cache) *CacheHistoryRepository {
	return &CacheHistoryRepository{cache: c}
}

// List returns the user's orders, newest first.
func (r *CacheHistoryRepository) List(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	_, err := cache.GetJSON(ctx, r.cache, historyKey(userID), &entries)
	if errors.Is(err, cache.ErrCorrupt) {
		logger.Get().Warn("Discarding unreadable order history", zap.Int64("user_id", userID), zap.Error(err))
		return []domain.HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return entries, nil
}

// Prepend adds e in front and trims the list to limit entries.
func (r *CacheHistoryRepository) Prepend(ctx context.Context, userID int64, e domain.HistoryEntry, limit int) error {
	entries, err := r.List(ctx, userID)
	if err != nil {
		return err
	}

	entries = domain.PrependHistory(entries, e, limit)
	if err := cache.PutJSON(ctx, r.cache, historyKey(userID), entries, historyTTL); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// CacheLocker implements ports.Locker with SetIfAbsent. Each acquisition stores
// its own token, and only the holder of that token can release the lock.
type CacheLocker struct {
	cache    cache.Cache
	newToken func() string
}

// NewCacheLocker creates a new CacheLocker.
func NewCacheLocker(c cache.Cache) *CacheLocker {
	return &CacheLocker{cache: c, newToken: uuid.NewString}
}

// Acquire takes the lock for ttl and returns the token needed to release it.
// ok is false when the lock is already held.
func (l *CacheLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := l.newToken()
	ok, err := l.cache.SetIfAbsent(ctx, key, []byte(token), ttl)
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire %s: %w", key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the lock if token still owns it. A lock that expired and was
// taken by someone else is left alone.
func (l *CacheLocker) Release(ctx context.Context, key, token string) error {
	released, err := l.cache.DeleteIfEquals(ctx, key, []byte(token))
	if err != nil {
		return fmt.Errorf("failed to release %s: %w", key, err)
	}
	if !released {
		logger.Get().Warn("Lock no longer held by this owner", zap.String("key", key))
	}
	return nil
}
