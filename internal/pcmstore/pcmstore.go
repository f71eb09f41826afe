// Package pcmstore is a software audio backend: it decodes audio files
// into in-memory PCM buffers addressed by integer handles. It stands in
// for a hardware-accelerated backend and implements the soundbank.Backend
// capability set, including source reference counting: a buffer with live
// references cannot be deleted.
package pcmstore

import (
	"sync"

	"github.com/aukio/soundbank/internal/errors"
	"github.com/aukio/soundbank/internal/soundbank"
	"github.com/go-audio/audio"
)

// pcmBuffer holds decoded PCM samples with format metadata and the number
// of live source references.
type pcmBuffer struct {
	pcm      *audio.IntBuffer
	bitDepth int
	refs     int
}

// Store allocates and tracks decoded PCM buffers.
type Store struct {
	mu      sync.Mutex
	next    soundbank.Handle
	buffers map[soundbank.Handle]*pcmBuffer
}

// New creates an empty store.
func New() *Store {
	return &Store{
		buffers: make(map[soundbank.Handle]*pcmBuffer),
	}
}

// CreateBufferFromFile decodes the audio file at path into a new buffer.
// The container format is chosen by file extension.
func (s *Store) CreateBufferFromFile(path string) (soundbank.Handle, error) {
	pcm, bitDepth, err := decodeFile(path)
	if err != nil {
		return soundbank.NoBuffer, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	if s.next == soundbank.NoBuffer { // uint32 wraparound
		s.next++
	}
	handle := s.next
	s.buffers[handle] = &pcmBuffer{pcm: pcm, bitDepth: bitDepth}
	return handle, nil
}

// DeleteBuffer frees the buffer. Deleting an unknown handle is a no-op.
// A buffer with live source references is not freed and remains valid.
func (s *Store) DeleteBuffer(h soundbank.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, exists := s.buffers[h]
	if !exists {
		return nil
	}
	if b.refs > 0 {
		return errors.Newf("buffer %d has %d live source references", h, b.refs).
			Component("pcmstore").
			Category(errors.CategoryBufferUnload).
			Context("handle", uint32(h)).
			Build()
	}

	delete(s.buffers, h)
	return nil
}

// IsBuffer reports whether h names a live buffer.
func (s *Store) IsBuffer(h soundbank.Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.buffers[h]
	return exists
}

// Retain records a source reference to the buffer.
func (s *Store) Retain(h soundbank.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, exists := s.buffers[h]; exists {
		b.refs++
	}
}

// Release drops a source reference.
func (s *Store) Release(h soundbank.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, exists := s.buffers[h]; exists && b.refs > 0 {
		b.refs--
	}
}

// Refs returns the live reference count for a buffer, 0 for unknown
// handles.
func (s *Store) Refs(h soundbank.Handle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, exists := s.buffers[h]; exists {
		return b.refs
	}
	return 0
}

// Len returns the number of live buffers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffers)
}

// PCM returns the decoded samples for a buffer. The returned buffer is
// shared; callers must not mutate it.
func (s *Store) PCM(h soundbank.Handle) (*audio.IntBuffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, exists := s.buffers[h]
	if !exists {
		return nil, false
	}
	return b.pcm, true
}
