package session

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"staffbot/internal/models"
)

// Session is the per-chat cache: the message currently on screen, the resolved
// role, and scratch data (such as the open shift's issue key). It is a cache
// over the tracker, not a system of record; losing it only costs the next
// interaction a role re-resolution.
type Session struct {
	LastMessageID int
	Role          models.Role
	Data          map[string]string
}

// Patch is a partial session update. A non-empty Role overwrites the cached
// role; Data entries are merged key by key, an empty value deleting the key.
type Patch struct {
	Role models.Role
	Data map[string]string
}

// Store holds sessions for the process lifetime, bounded by an LRU so that
// chat churn cannot grow memory without limit. Safe for concurrent use;
// updates to the same chat are last-write-wins.
type Store struct {
	mu    sync.Mutex
	cache *lru.Cache[int64, Session]
}

const DefaultCapacity = 10000

func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[int64, Session](capacity)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{cache: cache}, nil
}

// Update merges patch into the chat's session, always overwriting the last
// rendered message id. A session is created on first update.
func (s *Store) Update(chatID int64, messageID int, patch Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, _ := s.cache.Get(chatID)
	sess.LastMessageID = messageID
	if patch.Role != "" {
		sess.Role = patch.Role
	}
	if len(patch.Data) > 0 {
		merged := make(map[string]string, len(sess.Data)+len(patch.Data))
		for k, v := range sess.Data {
			merged[k] = v
		}
		for k, v := range patch.Data {
			if v == "" {
				delete(merged, k)
			} else {
				merged[k] = v
			}
		}
		sess.Data = merged
	}
	s.cache.Add(chatID, sess)
}

// Get returns the chat's session, or a zero session if none is stored. The
// returned Data map is a copy; mutating it does not touch the store.
func (s *Store) Get(chatID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.cache.Get(chatID)
	if !ok {
		return Session{}
	}
	if sess.Data != nil {
		copied := make(map[string]string, len(sess.Data))
		for k, v := range sess.Data {
			copied[k] = v
		}
		sess.Data = copied
	}
	return sess
}

// Len reports how many chats currently have a session.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
