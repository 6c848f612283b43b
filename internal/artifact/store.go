// Package artifact stores exported review material (markdown reports,
// conversation transcripts) keyed by review result id.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Store defines operations for persisting export artifacts of one review.
type Store interface {
	Put(ctx context.Context, resultID, path string, content []byte) error
	Get(ctx context.Context, resultID, path string) ([]byte, error)
	List(ctx context.Context, resultID string) ([]string, error)
}

var ErrNotFound = errors.New("artifact not found")

func objectKey(resultID, path string) string {
	return strings.TrimSpace(resultID) + "/" + strings.TrimLeft(strings.TrimSpace(path), "/")
}

// MemoryStore keeps artifacts in process memory. Used when no object
// storage is configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: map[string][]byte{}}
}

func (s *MemoryStore) Put(ctx context.Context, resultID, path string, content []byte) error {
	resultID = strings.TrimSpace(resultID)
	path = strings.TrimSpace(path)
	if resultID == "" {
		return fmt.Errorf("result id is required")
	}
	if path == "" {
		return fmt.Errorf("path is required")
	}
	if content == nil {
		content = []byte{}
	}
	buf := make([]byte, len(content))
	copy(buf, content)
	s.mu.Lock()
	s.objects[objectKey(resultID, path)] = buf
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, resultID, path string) ([]byte, error) {
	s.mu.RLock()
	content, ok := s.objects[objectKey(resultID, path)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (s *MemoryStore) List(ctx context.Context, resultID string) ([]string, error) {
	prefix := strings.TrimSpace(resultID) + "/"
	s.mu.RLock()
	var paths []string
	for key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			paths = append(paths, strings.TrimPrefix(key, prefix))
		}
	}
	s.mu.RUnlock()
	sort.Strings(paths)
	return paths, nil
}
