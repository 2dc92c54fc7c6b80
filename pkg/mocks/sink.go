package mocks

import (
	"image"
	"sync"

	"github.com/user/gifmaker/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	PreparedFrames map[int]image.Image
	Manifest       []byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:        enabled,
		PreparedFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SavePreparedFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PreparedFrames[index] = img
	return nil
}

func (m *DebugSink) SaveManifest(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Manifest = data
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
