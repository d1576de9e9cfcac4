package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"pickles_back_end/internal/models"
)

// --- Panier en mémoire ---

// MemoryCartStore garde les paniers dans le processus. ttlcache évince les paniers
// expirés en arrière-plan ; deux ajouts concurrents sur la même session restent last-write-wins.
type MemoryCartStore struct {
	ttl   time.Duration
	carts *ttlcache.Cache[string, models.Cart]
}

// NewMemoryCartStore ttl <= 0 : pas d'expiration. Close arrête l'éviction.
func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	carts := ttlcache.New[string, models.Cart](
		ttlcache.WithDisableTouchOnHit[string, models.Cart](),
	)
	go carts.Start()
	return &MemoryCartStore{ttl: ttl, carts: carts}
}

func (s *MemoryCartStore) Load(_ context.Context, sessionID string) (models.Cart, error) {
	item := s.carts.Get(sessionID)
	if item == nil {
		return emptyCart(sessionID), nil
	}
	return copyCart(item.Value()), nil
}

// Save remet la durée de vie à ttl, comme SET ... EX côté Redis
func (s *MemoryCartStore) Save(_ context.Context, sessionID string, cart models.Cart) error {
	cart.SessionID = sessionID
	s.carts.Set(sessionID, copyCart(cart), entryTTL(s.ttl))
	return nil
}

func (s *MemoryCartStore) Take(_ context.Context, sessionID string) (models.Cart, error) {
	item, ok := s.carts.GetAndDelete(sessionID)
	if !ok || item.IsExpired() {
		return emptyCart(sessionID), nil
	}
	return item.Value(), nil
}

// Len nombre de paniers encore en mémoire
func (s *MemoryCartStore) Len() int {
	return s.carts.Len()
}

func (s *MemoryCartStore) Close() error {
	s.carts.Stop()
	return nil
}

func entryTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttlcache.NoTTL
	}
	return ttl
}

// --- Pub/Sub en mémoire ---

const subscriptionBuffer = 16

type MemoryBroker struct {
	mu   sync.Mutex
	subs map[string]map[*memorySubscription]struct{}
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: make(map[string]map[*memorySubscription]struct{})}
}

func (b *MemoryBroker) Publish(_ context.Context, channel, payload string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs[channel] {
		select {
		case sub.ch <- payload:
		default:
			log.Printf("⚠️ Abonné lent sur %s, message %q ignoré", channel, payload)
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(_ context.Context, channel string) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &memorySubscription{
		broker:  b,
		channel: channel,
		ch:      make(chan string, subscriptionBuffer),
	}
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[*memorySubscription]struct{})
	}
	b.subs[channel][sub] = struct{}{}
	return sub, nil
}

type memorySubscription struct {
	broker  *MemoryBroker
	channel string
	ch      chan string
	once    sync.Once
}

func (s *memorySubscription) Messages() <-chan string {
	return s.ch
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		s.broker.mu.Lock()
		defer s.broker.mu.Unlock()

		delete(s.broker.subs[s.channel], s)
		if len(s.broker.subs[s.channel]) == 0 {
			delete(s.broker.subs, s.channel)
		}
		close(s.ch)
	})
	return nil
}

// --- Compteur en mémoire ---

type counterEntry struct {
	n int64
}

// MemoryCounter fenêtre fixe : la durée de vie est posée au premier hit et n'est
// jamais prolongée. Les compteurs expirés sont évincés par ttlcache.
type MemoryCounter struct {
	mu      sync.Mutex
	entries *ttlcache.Cache[string, *counterEntry]
}

func NewMemoryCounter() *MemoryCounter {
	entries := ttlcache.New[string, *counterEntry](
		ttlcache.WithDisableTouchOnHit[string, *counterEntry](),
	)
	go entries.Start()
	return &MemoryCounter{entries: entries}
}

func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var entry *counterEntry
	if item := c.entries.Get(key); item != nil {
		entry = item.Value()
	} else {
		entry = &counterEntry{}
		c.entries.Set(key, entry, entryTTL(window))
	}
	entry.n++
	return entry.n, nil
}

func (c *MemoryCounter) Get(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item := c.entries.Get(key); item != nil {
		return item.Value().n, nil
	}
	return 0, nil
}

func (c *MemoryCounter) Reset(_ context.Context, key string) error {
	c.entries.Delete(key)
	return nil
}

// Len nombre de compteurs encore en mémoire
func (c *MemoryCounter) Len() int {
	return c.entries.Len()
}

func (c *MemoryCounter) Close() error {
	c.entries.Stop()
	return nil
}
