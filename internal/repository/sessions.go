// Package repository holds the service's only local state: admin sessions
// and in-flight order-composition drafts, both in Redis. Every business
// entity lives at the external back-office API.
package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/tokokita/tokokita-admin-service/internal/config"
	"github.com/tokokita/tokokita-admin-service/internal/models"
)

const sessionKeyPrefix = "admin_session:"

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists the bearer token and user profile issued at login,
// keyed by an opaque session id handed to the browser as a cookie.
type SessionStore interface {
	Create(ctx context.Context, sess *models.Session) (string, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore implements SessionStore using Redis.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Entry
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(cfg config.RedisConfig, logger *logrus.Entry) *RedisSessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisSessionStore{
		client: client,
		ttl:    cfg.SessionTTL,
		logger: logger,
	}
}

// Create stores the session under a fresh id and returns that id.
func (s *RedisSessionStore) Create(ctx context.Context, sess *models.Session) (string, error) {
	id, err := newStoreID("ses")
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, s.ttl).Err(); err != nil {
		s.logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Session store set failed")
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"user": sess.User.Username,
		"ttl":  s.ttl.String(),
	}).Debug("Session created")
	return id, nil
}

// Get loads a session by id.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

// MemorySessionStore is an in-process SessionStore for tests.
type MemorySessionStore struct {
	mu   sync.Mutex
	data map[string]*models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: make(map[string]*models.Session)}
}

func (s *MemorySessionStore) Create(ctx context.Context, sess *models.Session) (string, error) {
	id, err := newStoreID("ses")
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.data[id] = &copied
	return id, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.data[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func newStoreID(prefix string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return prefix + "_" + hex.EncodeToString(buf), nil
}
