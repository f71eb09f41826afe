package soundbank

import (
	"fmt"

	"github.com/google/uuid"
)

// Source is a playback slot holding at most one buffer reference. The
// reference keeps the buffer alive in the backend: unloading a referenced
// buffer is denied until every source referencing it has been detached or
// purged.
//
// Playback itself (gain, position, mixing) is out of scope; sources exist
// here as the reference holders the purge protocol operates on.
type Source struct {
	id      uuid.UUID
	manager *Manager
	group   *BufferGroup
	buffer  Handle
}

func newSource(m *Manager) *Source {
	return &Source{
		id:      uuid.New(),
		manager: m,
	}
}

// ID returns the source's unique identifier.
func (s *Source) ID() uuid.UUID { return s.id }

// Buffer returns the currently attached buffer handle, or NoBuffer.
func (s *Source) Buffer() Handle { return s.buffer }

// Group returns the group the attached buffer belongs to, or nil.
func (s *Source) Group() *BufferGroup { return s.group }

// SetBuffer attaches the source to a loaded buffer of the given group,
// replacing any previous attachment. Attaching to a registered but
// unloaded entry fails with ErrBufferNotLoaded.
func (s *Source) SetBuffer(g *BufferGroup, path string) error {
	handle := g.Buffer(path)
	if handle == NoBuffer {
		return fmt.Errorf("source %s: %q: %w", s.id, path, ErrBufferNotLoaded)
	}

	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()

	s.detachLocked()
	s.manager.backend.Retain(handle)
	s.group = g
	s.buffer = handle
	return nil
}

// Clear detaches the source from its buffer, releasing the backend
// reference.
func (s *Source) Clear() {
	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()
	s.detachLocked()
}

// detachLocked releases the buffer reference. Caller holds the manager
// mutex.
func (s *Source) detachLocked() {
	if s.buffer != NoBuffer {
		s.manager.backend.Release(s.buffer)
		s.buffer = NoBuffer
		s.group = nil
	}
}
