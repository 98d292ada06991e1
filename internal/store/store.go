package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/lock"
	"github.com/fekuna/omnipos-warehouse-service/internal/pkg/logger"
	"go.uber.org/zap"
)

// Store is the typed entry point over a Backend. It owns the snapshot cache; cached documents are
// kept encoded so every Load hands out a private copy.
type Store struct {
	backend Backend
	cache   *cache.TTL[Collection, []byte]
	logger  logger.ZapLogger
}

func New(backend Backend, c *cache.TTL[Collection, []byte], log logger.ZapLogger) *Store {
	return &Store{
		backend: backend,
		cache:   c,
		logger:  log,
	}
}

// document serves c from the cache unless ctx holds a lock; locked reads always go to the backend
// and refresh the cache with what they find.
func (s *Store) document(ctx context.Context, c Collection) ([]byte, error) {
	if !lock.Held(ctx) {
		if data, ok := s.cache.Get(c); ok {
			s.logger.Debug("serving collection from cache", zap.String("collection", string(c)))
			return data, nil
		}
	}

	data, err := s.backend.Load(ctx, c)
	if err != nil {
		return nil, err
	}
	s.cache.Set(c, data)
	s.logger.Debug("collection cache refreshed", zap.String("collection", string(c)))
	return data, nil
}

// Load decodes collection c. A missing or empty collection yields an empty, non-nil slice.
func Load[T any](ctx context.Context, s *Store, c Collection) ([]T, error) {
	data, err := s.document(ctx, c)
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Batch collects whole-collection replacements that are committed together.
type Batch struct {
	docs map[Collection]interface{}
}

func NewBatch() *Batch {
	return &Batch{docs: make(map[Collection]interface{})}
}

func (b *Batch) Put(c Collection, records interface{}) *Batch {
	b.docs[c] = records
	return b
}

func (b *Batch) Len() int {
	return len(b.docs)
}

func (s *Store) Commit(ctx context.Context, b *Batch) error {
	if b.Len() == 0 {
		return nil
	}

	encoded := make(map[Collection][]byte, len(b.docs))
	keys := make([]Collection, 0, len(b.docs))
	for c, records := range b.docs {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", c, err)
		}
		if bytes.Equal(data, []byte("null")) {
			data = emptyDocument
		}
		encoded[c] = data
		keys = append(keys, c)
	}

	if err := s.backend.Save(ctx, encoded); err != nil {
		s.cache.Delete(keys...)
		return fmt.Errorf("failed to commit %v: %w", keys, err)
	}

	for c, data := range encoded {
		s.cache.Set(c, data)
	}
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}
