// fetcher.go - Cache-through fetch pipeline
package main

import (
	"time"

	"github.com/rs/zerolog"
)

// Fetcher combines the API client with the per-query cache. Repeated
// fetches for the same parameter inside the TTL window return the cached
// snapshot without touching the network. Failures are not cached, so a
// transient outage clears on the next interaction.
type Fetcher struct {
	client *apiClient
	cache  *queryCache
	log    zerolog.Logger
}

func newFetcher(baseURL string, timeout, ttl time.Duration, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: newAPIClient(baseURL, timeout, log),
		cache:  newQueryCache(ttl),
		log:    log,
	}
}

// Fetch returns the states for the given query, from cache when possible.
func (f *Fetcher) Fetch(q Query) (resultSet, error) {
	key := q.cacheKey()
	if rs, ok := f.cache.get(key); ok {
		f.log.Debug().Str("query", key).Msg("cache hit")
		return rs, nil
	}

	rs, err := f.client.fetchStates(q)
	if err != nil {
		return resultSet{}, err
	}

	f.cache.set(key, rs)
	return rs, nil
}
