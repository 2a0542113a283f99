package testhelpers

import (
	"sync"

	"github.com/pluqqy/cvbuilder/pkg/editor"
	"github.com/pluqqy/cvbuilder/pkg/files"
)

// MemoryStore is an in-memory persistence gateway
type MemoryStore struct {
	mu      sync.Mutex
	data    []byte
	Saves   int
	SaveErr error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = append([]byte(nil), data...)
	s.Saves++
	return nil
}

func (s *MemoryStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, files.ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStore) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

func (s *MemoryStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data != nil
}

// Notification is one recorded notifier call
type Notification struct {
	Message  string
	Severity editor.Severity
	Title    string
}

// RecordingNotifier keeps every notification in order
type RecordingNotifier struct {
	mu    sync.Mutex
	Items []Notification
}

func (n *RecordingNotifier) Notify(message string, severity editor.Severity, title string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Items = append(n.Items, Notification{Message: message, Severity: severity, Title: title})
}

// Last returns the most recent notification
func (n *RecordingNotifier) Last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Items) == 0 {
		return Notification{}, false
	}
	return n.Items[len(n.Items)-1], true
}

// Titles returns the titles of every notification
func (n *RecordingNotifier) Titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	titles := make([]string, len(n.Items))
	for i, item := range n.Items {
		titles[i] = item.Title
	}
	return titles
}
