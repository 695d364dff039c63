package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/nalmatov/ltc-backend/internal/core/domain"
	"github.com/nalmatov/ltc-backend/internal/core/port"
)

var _ port.SyntheticStorePort = (*SyntheticStore)(nil)

// SyntheticStore holds operator-curated listings in process memory, keyed
// by lower-cased exchange name. Listings live until deleted or the process
// restarts; there is no durable storage behind it.
type SyntheticStore struct {
	mu       sync.RWMutex
	listings map[string]domain.SyntheticListing
}

func NewSyntheticStore() *SyntheticStore {
	return &SyntheticStore{
		listings: make(map[string]domain.SyntheticListing),
	}
}

// List returns the current contents ordered by store key, so repeated calls
// over an unchanged store produce the same sequence.
func (s *SyntheticStore) List() []domain.SyntheticListing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.listings))
	for key := range s.listings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]domain.SyntheticListing, 0, len(keys))
	for _, key := range keys {
		result = append(result, s.listings[key])
	}

	return result
}

func (s *SyntheticStore) Get(name string) (domain.SyntheticListing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[strings.ToLower(name)]
	return listing, ok
}

// Put stores the listing under its key, overwriting any existing entry with
// the same lower-cased name.
func (s *SyntheticStore) Put(listing domain.SyntheticListing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings[listing.Key()] = listing
}

// Delete removes the listing with the given name. It reports whether an
// entry was present.
func (s *SyntheticStore) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := s.listings[key]; !ok {
		return false
	}

	delete(s.listings, key)
	return true
}

// Len reports the number of stored listings.
func (s *SyntheticStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.listings)
}
