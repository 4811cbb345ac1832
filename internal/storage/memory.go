package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Memory is an in-process ObjectStorage used by tests and local runs.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
	types   map[string]string

	// PublicBaseURL, when set, makes GetPublicURL return addressable URLs.
	PublicBaseURL string
}

// NewMemory creates an empty in-memory object store.
func NewMemory() *Memory {
	return &Memory{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (m *Memory) Upload(ctx context.Context, path string, data []byte, opts UploadOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.objects[path]; exists && !opts.Upsert {
		return fmt.Errorf("object already exists at %s", path)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[path] = buf
	m.types[path] = opts.ContentType
	return nil
}

func (m *Memory) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[path]; !ok {
		return "", fmt.Errorf("no object at %s", path)
	}
	exp := time.Now().Add(ttl).Unix()
	return fmt.Sprintf("memory://%s?expires=%d", path, exp), nil
}

func (m *Memory) GetPublicURL(path string) string {
	if m.PublicBaseURL == "" {
		return ""
	}
	return m.PublicBaseURL + "/" + path
}

// Object returns a stored object's bytes and content type.
func (m *Memory) Object(path string) ([]byte, string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[path]
	return data, m.types[path], ok
}

// Len reports the number of stored objects.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
