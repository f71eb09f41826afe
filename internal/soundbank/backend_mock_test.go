package soundbank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aukio/soundbank/internal/errors"
	"github.com/stretchr/testify/require"
)

// mockBackend is an in-memory stand-in for the audio backend with
// reference counting and call accounting.
type mockBackend struct {
	next        Handle
	refs        map[Handle]int
	createCalls int
	deleteCalls map[Handle]int
	failCreate  error
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		refs:        make(map[Handle]int),
		deleteCalls: make(map[Handle]int),
	}
}

func (b *mockBackend) CreateBufferFromFile(path string) (Handle, error) {
	b.createCalls++
	if b.failCreate != nil {
		return NoBuffer, b.failCreate
	}
	b.next++
	b.refs[b.next] = 0
	return b.next, nil
}

func (b *mockBackend) DeleteBuffer(h Handle) error {
	b.deleteCalls[h]++
	refs, exists := b.refs[h]
	if !exists {
		return nil
	}
	if refs > 0 {
		return errors.Newf("buffer %d still referenced", h).Build()
	}
	delete(b.refs, h)
	return nil
}

func (b *mockBackend) IsBuffer(h Handle) bool {
	_, exists := b.refs[h]
	return exists
}

func (b *mockBackend) Retain(h Handle) {
	if _, exists := b.refs[h]; exists {
		b.refs[h]++
	}
}

func (b *mockBackend) Release(h Handle) {
	if refs, exists := b.refs[h]; exists && refs > 0 {
		b.refs[h]--
	}
}

// writeAudioFile creates a dummy audio file under dir and returns its name
// relative to dir.
func writeAudioFile(t *testing.T, dir, name string) string {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte("pcm"), 0o644)
	require.NoError(t, err)
	return name
}

// newTestGroup builds a manager plus group rooted in a temp dir.
func newTestGroup(t *testing.T) (*mockBackend, *Manager, *BufferGroup, string) {
	t.Helper()
	backend := newMockBackend()
	manager := NewManager(backend)
	t.Cleanup(manager.Close)

	dir := t.TempDir()
	group, err := manager.CreateGroup("test", dir+string(os.PathSeparator))
	require.NoError(t, err)
	return backend, manager, group, dir
}
