package store

import (
	"context"
	"sync"

	"github.com/Raikerian/go-voice-auth/internal/enrollment"
)

// Memory is an in-process TemplateStore. It is safe for concurrent use and
// intended for tests and single-node development.
type Memory struct {
	mu   sync.RWMutex
	data map[string]enrollment.Template
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]enrollment.Template)}
}

func (m *Memory) Get(_ context.Context, userID string) (*enrollment.Template, error) {
	m.mu.RLock()
	tpl, ok := m.data[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &tpl, nil
}

func (m *Memory) Save(_ context.Context, tpl *enrollment.Template) error {
	if tpl == nil || tpl.UserID == "" {
		return errInvalidTemplate
	}
	m.mu.Lock()
	m.data[tpl.UserID] = *tpl
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[userID]; !ok {
		return ErrNotFound
	}
	delete(m.data, userID)
	return nil
}

// Len returns the number of stored templates.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *Memory) Close() error {
	return nil
}
