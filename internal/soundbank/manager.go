package soundbank

import (
	"fmt"
	"sync"

	"github.com/aukio/soundbank/internal/observability/metrics"
)

// Manager owns buffer groups and the sources that reference their buffers.
// It implements the purge protocol: before a buffer or group is unloaded,
// every source reference to it is detached so the backend will allow
// deletion.
type Manager struct {
	backend Backend
	metrics *metrics.SoundbankMetrics

	mu      sync.Mutex
	groups  map[string]*BufferGroup
	sources map[*Source]struct{}
	closed  bool
}

// NewManager creates a manager on top of the given backend.
func NewManager(backend Backend) *Manager {
	return &Manager{
		backend: backend,
		groups:  make(map[string]*BufferGroup),
		sources: make(map[*Source]struct{}),
	}
}

// SetMetrics attaches Prometheus metrics to the manager. Must be called
// before any groups are used; a nil manager metrics sink disables
// recording.
func (m *Manager) SetMetrics(sm *metrics.SoundbankMetrics) {
	m.metrics = sm
}

// metricsSink returns the metrics recorder, which may be nil. All recorder
// methods are nil-safe.
func (m *Manager) metricsSink() *metrics.SoundbankMetrics {
	return m.metrics
}

// CreateGroup creates an empty buffer group under the given name. The
// pathPrefix is prepended verbatim to every file path registered with the
// group.
func (m *Manager) CreateGroup(name, pathPrefix string) (*BufferGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("create group %q: %w", name, ErrManagerClosed)
	}
	if _, exists := m.groups[name]; exists {
		return nil, fmt.Errorf("create group %q: %w", name, ErrGroupExists)
	}

	g := newBufferGroup(m, name, pathPrefix)
	m.groups[name] = g
	getLogger().Debug("Created buffer group", "group", name, "prefix", pathPrefix)
	return g, nil
}

// Group returns the named group, or nil when it doesn't exist.
func (m *Manager) Group(name string) *BufferGroup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.groups[name]
}

// DestroyGroup tears down a group: purges its buffers from all sources,
// unloads everything and invalidates the group. Further operations on the
// group fail with ErrManagerClosed.
func (m *Manager) DestroyGroup(name string) error {
	m.mu.Lock()
	g, exists := m.groups[name]
	if exists {
		delete(m.groups, name)
	}
	m.mu.Unlock()

	if !exists {
		return fmt.Errorf("destroy group %q: %w", name, ErrGroupNotFound)
	}

	g.close()
	getLogger().Debug("Destroyed buffer group", "group", name)
	return nil
}

// NewSource creates a source owned by this manager. Sources hold buffer
// references; the manager purges them when buffers or groups go away.
func (m *Manager) NewSource() (*Source, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("new source: %w", ErrManagerClosed)
	}

	s := newSource(m)
	m.sources[s] = struct{}{}
	return s, nil
}

// DropSource detaches a source from its buffer and removes it from the
// manager.
func (m *Manager) DropSource(s *Source) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.detachLocked()
	delete(m.sources, s)
}

// Close invalidates the manager: every group is purged from sources and
// unloaded, every source detached. Groups created by this manager observe
// the closure as ErrManagerClosed. Safe to call more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true

	groups := make([]*BufferGroup, 0, len(m.groups))
	for _, g := range m.groups {
		groups = append(groups, g)
	}
	m.groups = make(map[string]*BufferGroup)
	m.mu.Unlock()

	for _, g := range groups {
		g.close()
	}

	m.mu.Lock()
	m.sources = make(map[*Source]struct{})
	m.mu.Unlock()

	getLogger().Debug("Audio manager closed", "groups", len(groups))
}

// purgeBufferFromSources detaches every source referencing the given
// buffer handle within the group.
func (m *Manager) purgeBufferFromSources(g *BufferGroup, handle Handle) {
	if handle == NoBuffer {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for s := range m.sources {
		if s.group == g && s.buffer == handle {
			s.detachLocked()
		}
	}
}

// purgeBufferGroupFromSources detaches every source referencing any buffer
// of the group.
func (m *Manager) purgeBufferGroupFromSources(g *BufferGroup) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for s := range m.sources {
		if s.group == g {
			s.detachLocked()
		}
	}
}
