package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
)

type fakeCache struct {
	mu         sync.Mutex
	entries    map[domain.CacheKey][]byte
	ttls       map[domain.CacheKey]time.Duration
	failWrites bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[domain.CacheKey][]byte),
		ttls:    make(map[domain.CacheKey]time.Duration),
	}
}

func (c *fakeCache) Get(_ context.Context, key domain.CacheKey) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload, ok := c.entries[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return payload, nil
}

func (c *fakeCache) Set(_ context.Context, key domain.CacheKey, payload []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failWrites {
		return errors.New("cache store unavailable")
	}

	c.entries[key] = payload
	c.ttls[key] = ttl
	return nil
}

type fakeMarket struct {
	listings []domain.ExchangeListing
	err      error
	calls    int
}

func (m *fakeMarket) FetchSnapshot(context.Context) ([]domain.ExchangeListing, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	out := make([]domain.ExchangeListing, len(m.listings))
	copy(out, m.listings)
	return out, nil
}

type fakeRefPrice struct {
	price float64
	calls int
}

func (p *fakeRefPrice) ReferencePrice(context.Context) float64 {
	p.calls++
	return p.price
}

type fakeSpot struct {
	price float64
}

func (p *fakeSpot) CurrentPrice(context.Context) float64 { return p.price }

type fakeBook struct {
	book domain.OrderBook
	err  error
}

func (b *fakeBook) OrderBook(context.Context, int) (domain.OrderBook, error) {
	if b.err != nil {
		return domain.OrderBook{}, b.err
	}
	return b.book, nil
}

type fakeChart struct {
	points   []domain.PricePoint
	err      error
	calls    int
	lastDays int
}

func (c *fakeChart) MarketChart(_ context.Context, days int) ([]domain.PricePoint, error) {
	c.calls++
	c.lastDays = days
	if c.err != nil {
		return nil, c.err
	}
	return c.points, nil
}

type fakeStore struct {
	mu       sync.RWMutex
	listings map[string]domain.SyntheticListing
	order    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{listings: make(map[string]domain.SyntheticListing)}
}

func (s *fakeStore) List() []domain.SyntheticListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SyntheticListing, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.listings[key])
	}
	return out
}

func (s *fakeStore) Get(name string) (domain.SyntheticListing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[domain.SyntheticListing{ExchangeName: name}.Key()]
	return l, ok
}

func (s *fakeStore) Put(listing domain.SyntheticListing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := listing.Key()
	if _, ok := s.listings[key]; !ok {
		s.order = append(s.order, key)
	}
	s.listings[key] = listing
}

func (s *fakeStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.SyntheticListing{ExchangeName: name}.Key()
	if _, ok := s.listings[key]; !ok {
		return false
	}
	delete(s.listings, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
