package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/config"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

const draftKeyPrefix = "order_draft:"

// ErrDraftNotFound is returned when a draft id is unknown or expired.
var ErrDraftNotFound = errors.New("order draft not found")

// DraftStore persists in-flight order-composition drafts so an open modal
// survives a process restart. Drafts expire; an expired draft whose order
// header was already created leaves a pending zero-item order upstream.
type DraftStore interface {
	Put(ctx context.Context, draft *models.OrderDraft) error
	Get(ctx context.Context, id string) (*models.OrderDraft, error)
	Delete(ctx context.Context, id string) error
}

// RedisDraftStore implements DraftStore using Redis.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Entry
}

// NewRedisDraftStore creates a Redis-backed draft store.
func NewRedisDraftStore(cfg config.RedisConfig, logger *logrus.Entry) *RedisDraftStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisDraftStore{
		client: client,
		ttl:    cfg.DraftTTL,
		logger: logger,
	}
}

// Put writes the draft, resetting its TTL.
func (s *RedisDraftStore) Put(ctx context.Context, draft *models.OrderDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, draftKeyPrefix+draft.ID, data, s.ttl).Err(); err != nil {
		s.logger.WithFields(logrus.Fields{
			"draft_id": draft.ID,
			"error":    err.Error(),
		}).Error("Draft store set failed")
		return err
	}
	return nil
}

// Get loads a draft by id.
func (s *RedisDraftStore) Get(ctx context.Context, id string) (*models.OrderDraft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}

	var draft models.OrderDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Delete removes a draft.
func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, draftKeyPrefix+id).Err()
}

// MemoryDraftStore is an in-process DraftStore, used in tests and when
// draft persistence is disabled by feature flag.
type MemoryDraftStore struct {
	mu   sync.Mutex
	data map[string]*models.OrderDraft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{data: make(map[string]*models.OrderDraft)}
}

func (s *MemoryDraftStore) Put(ctx context.Context, draft *models.OrderDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *draft
	copied.Rows = append([]models.DraftRow(nil), draft.Rows...)
	s.data[draft.ID] = &copied
	return nil
}

func (s *MemoryDraftStore) Get(ctx context.Context, id string) (*models.OrderDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.data[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copied := *draft
	copied.Rows = append([]models.DraftRow(nil), draft.Rows...)
	return &copied, nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// NewDraftID generates an opaque draft identifier.
func NewDraftID() (string, error) {
	return newStoreID("drf")
}
