// Package cache provides a generic in-memory LRU cache.
//
// The importer uses it to remember which user-agent hashes are already
// stored so repeated corpus lines skip the database round trip:
//
//	seen := cache.NewLRUCache[string, uuid.UUID](10_000)
//	id, err := seen.GetOrLoad(hash, func(h string) (uuid.UUID, error) {
//		return store.UpsertUserAgent(ctx, h, ua)
//	})
package cache
