package soundbank

import (
	"fmt"
	"os"
	"sort"
	"time"
)

// BufferGroup is a named registry of audio file buffers sharing a path
// prefix and a load state. Entries map a relative file path to a backend
// buffer handle; NoBuffer marks a registered entry whose file has not been
// decoded yet.
type BufferGroup struct {
	manager    *Manager
	name       string
	pathPrefix string
	buffers    map[string]Handle
	loaded     bool
	detached   bool
}

func newBufferGroup(m *Manager, name, pathPrefix string) *BufferGroup {
	return &BufferGroup{
		manager:    m,
		name:       name,
		pathPrefix: pathPrefix,
		buffers:    make(map[string]Handle),
	}
}

// Name returns the group name.
func (g *BufferGroup) Name() string { return g.name }

// PathPrefix returns the prefix prepended to every registered file path.
func (g *BufferGroup) PathPrefix() string { return g.pathPrefix }

// Loaded reports whether the group is in the loaded state. New registrations
// are loaded immediately while this is true.
func (g *BufferGroup) Loaded() bool { return g.loaded }

// Len returns the number of registered files.
func (g *BufferGroup) Len() int { return len(g.buffers) }

// Paths returns the registered file paths in sorted order.
func (g *BufferGroup) Paths() []string {
	paths := make([]string, 0, len(g.buffers))
	for path := range g.buffers {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Buffer returns the handle registered for the given path. It returns
// NoBuffer both for unknown paths and for registered-but-unloaded entries;
// callers that need to tell these apart must check registration separately.
func (g *BufferGroup) Buffer(path string) Handle {
	return g.buffers[path]
}

// fullPath joins the group prefix with a relative path. Plain concatenation:
// the prefix carries its own trailing separator, matching how asset prefixes
// are configured.
func (g *BufferGroup) fullPath(path string) string {
	return g.pathPrefix + path
}

// checkRegularFile verifies that fullPath names an existing regular file.
func checkRegularFile(fullPath string) error {
	info, err := os.Stat(fullPath)
	if err != nil {
		return fmt.Errorf("%q: %w", fullPath, ErrNotRegularFile)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%q: %w", fullPath, ErrNotRegularFile)
	}
	return nil
}

// Add registers an audio file with the group. It fails when the owning
// manager has been closed, when the file is missing or not a regular file,
// or when the path is already registered. If the group is in the loaded
// state the buffer is loaded immediately.
func (g *BufferGroup) Add(path string) error {
	if g.detached {
		return fmt.Errorf("group %q: %w", g.name, ErrManagerClosed)
	}

	fullPath := g.fullPath(path)

	// Don't register the file if it doesn't exist or isn't a file.
	if err := checkRegularFile(fullPath); err != nil {
		getLogger().Error("Cannot add audio file to group",
			"group", g.name, "path", fullPath)
		return err
	}

	if _, exists := g.buffers[path]; exists {
		getLogger().Info("Audio file is already part of group, skipping",
			"group", g.name, "path", fullPath)
		return fmt.Errorf("group %q: %q: %w", g.name, path, ErrAlreadyRegistered)
	}

	g.buffers[path] = NoBuffer
	g.manager.metricsSink().SetRegisteredBuffers(g.name, len(g.buffers))

	// Pick the file up right away if the group is already loaded.
	if g.loaded {
		return g.load(path, false)
	}

	return nil
}

// AddBatch registers each of the given paths and returns the number of
// successful registrations.
func (g *BufferGroup) AddBatch(paths []string) int {
	added := 0
	for _, path := range paths {
		if err := g.Add(path); err == nil {
			added++
		}
	}
	return added
}

// Remove unregisters a file. Any source references to its buffer are purged
// through the manager before the buffer is unloaded and the entry erased.
// Removal is a no-op when the manager has been closed or the path is
// unknown.
func (g *BufferGroup) Remove(path string) {
	if g.detached {
		return
	}

	handle, exists := g.buffers[path]
	if !exists {
		return
	}

	g.manager.purgeBufferFromSources(g, handle)
	if err := g.unload(path); err != nil {
		// Entry is erased regardless; the backend keeps the buffer alive
		// for whatever still holds it.
		getLogger().Warn("Removing buffer that could not be unloaded",
			"group", g.name, "path", path, "handle", handle)
	}
	delete(g.buffers, path)
	g.manager.metricsSink().SetRegisteredBuffers(g.name, len(g.buffers))
}

// RemoveBatch unregisters each of the given paths.
func (g *BufferGroup) RemoveBatch(paths []string) {
	for _, path := range paths {
		g.Remove(path)
	}
}

// Clear purges the whole group from sources, unloads every buffer and
// drops all registrations. No-op when the manager has been closed.
func (g *BufferGroup) Clear() {
	if g.detached {
		return
	}

	g.manager.purgeBufferGroupFromSources(g)
	g.UnloadAll()
	g.buffers = make(map[string]Handle)
	g.manager.metricsSink().SetRegisteredBuffers(g.name, 0)
}

// Load loads a single registered buffer. With verifyExists the file's
// existence is re-checked before the backend call, catching files deleted
// since registration.
func (g *BufferGroup) Load(path string, verifyExists bool) error {
	if g.detached {
		return fmt.Errorf("group %q: %w", g.name, ErrManagerClosed)
	}
	if _, exists := g.buffers[path]; !exists {
		return fmt.Errorf("group %q: %q: %w", g.name, path, ErrNotRegistered)
	}
	return g.load(path, verifyExists)
}

// load decodes and uploads the buffer for a registered path. The entry's
// handle stays at NoBuffer when the backend fails.
func (g *BufferGroup) load(path string, verifyExists bool) error {
	if g.detached {
		return fmt.Errorf("group %q: %w", g.name, ErrManagerClosed)
	}

	if g.buffers[path] != NoBuffer {
		getLogger().Info("Buffer is already loaded, skipping",
			"group", g.name, "path", path)
		return fmt.Errorf("group %q: %q: %w", g.name, path, ErrAlreadyLoaded)
	}

	fullPath := g.fullPath(path)

	if verifyExists {
		if err := checkRegularFile(fullPath); err != nil {
			getLogger().Error("Cannot load audio file, it was deleted or changed since registration",
				"group", g.name, "path", fullPath)
			return err
		}
	}

	start := time.Now()
	handle, err := g.manager.backend.CreateBufferFromFile(fullPath)
	if err != nil {
		getLogger().Error("Failed to load audio buffer",
			"group", g.name, "path", fullPath, "error", err)
		g.manager.metricsSink().RecordBufferLoad(g.name, "error")
		return fmt.Errorf("group %q: loading %q: %w", g.name, path, err)
	}

	g.buffers[path] = handle
	g.manager.metricsSink().RecordBufferLoad(g.name, "success")
	g.manager.metricsSink().RecordBufferLoadDuration(g.name, time.Since(start).Seconds())
	g.manager.metricsSink().AddLoadedBuffers(g.name, 1)
	return nil
}

// LoadAll marks the group loaded and loads every unloaded entry, returning
// the number of buffers loaded. Entries that were already loaded do not
// count.
func (g *BufferGroup) LoadAll(verifyExists bool) int {
	g.loaded = true

	loadedCount := 0
	for path := range g.buffers {
		if err := g.load(path, verifyExists); err == nil {
			loadedCount++
		}
	}
	return loadedCount
}

// Unload unloads a single buffer. Unloading an entry whose handle is
// already NoBuffer succeeds trivially. When the backend reports the handle
// still valid after deletion (a source still references it) the handle is
// retained and ErrBufferInUse returned; deletion is never forced.
func (g *BufferGroup) Unload(path string) error {
	if _, exists := g.buffers[path]; !exists {
		return fmt.Errorf("group %q: %q: %w", g.name, path, ErrNotRegistered)
	}
	return g.unload(path)
}

func (g *BufferGroup) unload(path string) error {
	if g.detached {
		return fmt.Errorf("group %q: %w", g.name, ErrManagerClosed)
	}

	handle := g.buffers[path]
	if handle == NoBuffer {
		return nil
	}

	err := g.manager.backend.DeleteBuffer(handle)
	if err != nil || g.manager.backend.IsBuffer(handle) {
		getLogger().Error("Couldn't unload buffer, still in active use by sources",
			"group", g.name, "path", path, "handle", handle)
		g.manager.metricsSink().RecordBufferUnload(g.name, "denied")
		return fmt.Errorf("group %q: %q: %w", g.name, path, ErrBufferInUse)
	}

	g.buffers[path] = NoBuffer
	g.manager.metricsSink().RecordBufferUnload(g.name, "success")
	g.manager.metricsSink().AddLoadedBuffers(g.name, -1)
	return nil
}

// UnloadAll marks the group unloaded and attempts to unload every entry.
// It returns the number of entries that remain loaded.
func (g *BufferGroup) UnloadAll() int {
	g.loaded = false

	failedCount := 0
	for path := range g.buffers {
		if err := g.unload(path); err != nil {
			failedCount++
		}
	}
	return failedCount
}

// close tears the group down with a valid manager: purge every source
// reference to the group, then unload everything. Called exactly once by
// the manager; afterwards the group is detached and all mutating
// operations fail.
func (g *BufferGroup) close() {
	if g.detached {
		return
	}
	g.manager.purgeBufferGroupFromSources(g)
	g.UnloadAll()
	g.detached = true
}
