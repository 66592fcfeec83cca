package service

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"summa-reader/internal/cache"
	"summa-reader/internal/domain"
	"summa-reader/internal/logger"
	"sync"
	"time"

	"github.com/zeebo/blake3"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DocumentCache decides whether repeated loads hit the source.
// Entries are keyed by the loader's source id and dropped with Invalidate.
type DocumentCache interface {
	Get(ctx context.Context, loader domain.DocumentLoader) (*domain.Structure, error)
	Invalidate(ctx context.Context, sourceID string) error
}

// NoopDocumentCache loads the document on every call
type NoopDocumentCache struct{}

// NewNoopDocumentCache creates a cache that never stores anything
func NewNoopDocumentCache() DocumentCache {
	return NoopDocumentCache{}
}

func (NoopDocumentCache) Get(ctx context.Context, loader domain.DocumentLoader) (*domain.Structure, error) {
	return loader.LoadDocument(ctx)
}

func (NoopDocumentCache) Invalidate(ctx context.Context, sourceID string) error {
	return nil
}

// MemoryDocumentCache keeps decoded documents in process memory.
// Loads are serialized, so concurrent misses for a source fetch it once.
type MemoryDocumentCache struct {
	mu   sync.Mutex
	docs map[string]*domain.Structure
}

// NewMemoryDocumentCache creates an empty in-process cache
func NewMemoryDocumentCache() *MemoryDocumentCache {
	return &MemoryDocumentCache{docs: make(map[string]*domain.Structure)}
}

func (c *MemoryDocumentCache) Get(ctx context.Context, loader domain.DocumentLoader) (*domain.Structure, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := loader.SourceID()
	if doc, ok := c.docs[id]; ok {
		return doc, nil
	}
	doc, err := loader.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}
	c.docs[id] = doc
	return doc, nil
}

func (c *MemoryDocumentCache) Invalidate(ctx context.Context, sourceID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, sourceID)
	return nil
}

// cachedDocument is the value stored in the shared cache
type cachedDocument struct {
	Version  string            `json:"version"`
	Document *domain.Structure `json:"document"`
}

// RedisDocumentCache shares decoded documents between instances through domain.Cache.
// Cache failures are logged and fall back to loading from the source.
// Concurrent misses for the same key within one instance share a single load.
type RedisDocumentCache struct {
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewRedisDocumentCache creates a shared cache. A nil cache falls back to no caching.
func NewRedisDocumentCache(c domain.Cache, ttl time.Duration) DocumentCache {
	if c == nil {
		logger.Get().Warn("RedisDocumentCache initialized with nil cache. Documents will not be cached.")
		return NewNoopDocumentCache()
	}
	return &RedisDocumentCache{cache: c, ttl: ttl}
}

// DocumentCacheKey is the shared cache key of a source
func DocumentCacheKey(sourceID string) string {
	sum := blake3.Sum256([]byte(sourceID))
	return cache.GenerateCacheKey("summa", "document", hex.EncodeToString(sum[:8]))
}

func (c *RedisDocumentCache) Get(ctx context.Context, loader domain.DocumentLoader) (*domain.Structure, error) {
	key := DocumentCacheKey(loader.SourceID())

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil && data != "":
		var cached cachedDocument
		if errUnmarshal := json.Unmarshal([]byte(data), &cached); errUnmarshal == nil && cached.Document != nil {
			cached.Document.Version = cached.Version
			logger.Get().Debug("Document cache hit", zap.String("key", key))
			return cached.Document, nil
		} else {
			logger.Get().Warn("Discarding undecodable cached document", zap.String("key", key), zap.Error(errUnmarshal))
		}
	case errors.Is(err, domain.ErrCacheMiss), err == nil:
		logger.Get().Debug("Document cache miss", zap.String("key", key))
	default:
		logger.Get().Error("Failed to read document from cache", zap.String("key", key), zap.Error(err))
	}

	// one waiter's cancellation must not cancel the shared load
	sharedCtx := context.WithoutCancel(ctx)
	res, err, _ := c.sfGroup.Do(key, func() (interface{}, error) {
		doc, err := loader.LoadDocument(sharedCtx)
		if err != nil {
			return nil, err
		}

		payload, err := json.Marshal(cachedDocument{Version: doc.Version, Document: doc})
		if err != nil {
			logger.Get().Error("Failed to marshal document for caching", zap.Error(err))
			return doc, nil
		}
		if err := c.cache.Set(sharedCtx, key, string(payload), c.ttl); err != nil {
			logger.Get().Error("Failed to cache document", zap.String("key", key), zap.Error(err))
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	doc, ok := res.(*domain.Structure)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for document: %T", res)
	}
	return doc, nil
}

func (c *RedisDocumentCache) Invalidate(ctx context.Context, sourceID string) error {
	key := DocumentCacheKey(sourceID)
	if err := c.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to invalidate cached document %s", key), err)
	}
	return nil
}
