package dataset

import (
	"fmt"
	"time"

	"datachat/cache"
)

// Store keeps each session's active dataset in memory with a TTL.
// Storing under an existing session replaces the dataset wholesale.
type Store struct {
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	return &Store{cache: cache.NewWithTTL(ttl, 10*time.Minute)}
}

func (s *Store) Put(sessionID string, ds *Dataset) {
	s.cache.SetDefault(datasetKey(sessionID), ds)
}

func (s *Store) Get(sessionID string) (*Dataset, bool) {
	v, ok := s.cache.Get(datasetKey(sessionID))
	if !ok {
		return nil, false
	}
	ds, ok := v.(*Dataset)
	return ds, ok
}

func (s *Store) Delete(sessionID string) {
	s.cache.Delete(datasetKey(sessionID))
}

// Count reports how many session datasets are held, including expired
// entries the cache has not swept yet.
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

func datasetKey(sessionID string) string {
	return fmt.Sprintf("dataset:%s", sessionID)
}
