package soundbank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRegistersUnloaded(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "click.wav")
	require.NoError(t, group.Add(name))

	assert.Equal(t, 1, group.Len())
	assert.Equal(t, NoBuffer, group.Buffer(name))
	assert.Zero(t, backend.createCalls)
}

func TestAddRejectsDuplicate(t *testing.T) {
	t.Parallel()
	_, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "click.wav")
	require.NoError(t, group.Add(name))

	err := group.Add(name)
	require.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, 1, group.Len())
}

func TestAddRejectsMissingOrIrregularFile(t *testing.T) {
	t.Parallel()
	_, _, group, dir := newTestGroup(t)

	require.ErrorIs(t, group.Add("nonexistent.wav"), ErrNotRegularFile)

	// A directory is not a loadable file either.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
	require.ErrorIs(t, group.Add("subdir"), ErrNotRegularFile)

	assert.Zero(t, group.Len())
}

func TestAddAutoLoadsWhenGroupLoaded(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	group.LoadAll(false) // empty group, just flips the loaded state
	require.True(t, group.Loaded())

	name := writeAudioFile(t, dir, "click.wav")
	require.NoError(t, group.Add(name))

	assert.NotEqual(t, NoBuffer, group.Buffer(name))
	assert.Equal(t, 1, backend.createCalls)
}

func TestAddBatchCountsSuccesses(t *testing.T) {
	t.Parallel()
	_, _, group, dir := newTestGroup(t)

	a := writeAudioFile(t, dir, "a.wav")
	b := writeAudioFile(t, dir, "b.wav")

	added := group.AddBatch([]string{a, b, "missing.wav", a})
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, group.Len())
}

func TestLoadAlreadyLoadedHasNoSideEffects(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "click.wav")
	require.NoError(t, group.Add(name))
	require.NoError(t, group.Load(name, false))

	handle := group.Buffer(name)
	require.NotEqual(t, NoBuffer, handle)

	err := group.Load(name, false)
	require.ErrorIs(t, err, ErrAlreadyLoaded)
	assert.Equal(t, handle, group.Buffer(name))
	assert.Equal(t, 1, backend.createCalls)
}

func TestLoadUnregisteredPath(t *testing.T) {
	t.Parallel()
	_, _, group, _ := newTestGroup(t)

	require.ErrorIs(t, group.Load("ghost.wav", false), ErrNotRegistered)
}

func TestLoadBackendFailureLeavesSentinel(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "broken.wav")
	require.NoError(t, group.Add(name))

	backend.failCreate = os.ErrInvalid
	require.Error(t, group.Load(name, false))
	assert.Equal(t, NoBuffer, group.Buffer(name))

	// A later attempt succeeds once the backend recovers.
	backend.failCreate = nil
	require.NoError(t, group.Load(name, false))
	assert.NotEqual(t, NoBuffer, group.Buffer(name))
}

func TestLoadVerifyExistsCatchesDeletedFile(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "gone.wav")
	require.NoError(t, group.Add(name))
	require.NoError(t, os.Remove(filepath.Join(dir, name)))

	require.ErrorIs(t, group.Load(name, true), ErrNotRegularFile)
	assert.Zero(t, backend.createCalls)

	// Without verification the backend is asked regardless.
	require.NoError(t, group.Load(name, false))
	assert.Equal(t, 1, backend.createCalls)
}

func TestUnloadUnloadedEntrySucceeds(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "click.wav")
	require.NoError(t, group.Add(name))

	require.NoError(t, group.Unload(name))
	assert.Empty(t, backend.deleteCalls)
}

func TestUnloadInUseRetainsHandle(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "loop.wav")
	require.NoError(t, group.Add(name))
	require.NoError(t, group.Load(name, false))

	handle := group.Buffer(name)
	backend.Retain(handle)

	err := group.Unload(name)
	require.ErrorIs(t, err, ErrBufferInUse)
	assert.Equal(t, handle, group.Buffer(name))
	assert.True(t, backend.IsBuffer(handle))

	backend.Release(handle)
	require.NoError(t, group.Unload(name))
	assert.Equal(t, NoBuffer, group.Buffer(name))
	assert.False(t, backend.IsBuffer(handle))
}

func TestLoadAllAndUnloadAllCounts(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	paths := []string{
		writeAudioFile(t, dir, "a.wav"),
		writeAudioFile(t, dir, "b.wav"),
		writeAudioFile(t, dir, "c.wav"),
	}
	require.Equal(t, 3, group.AddBatch(paths))

	// Preload one entry; LoadAll only counts buffers it loaded itself.
	require.NoError(t, group.Load(paths[0], false))
	assert.Equal(t, 2, group.LoadAll(false))
	assert.True(t, group.Loaded())

	// One buffer stays referenced, so one unload fails.
	backend.Retain(group.Buffer(paths[1]))
	assert.Equal(t, 1, group.UnloadAll())
	assert.False(t, group.Loaded())
	assert.Equal(t, NoBuffer, group.Buffer(paths[0]))
	assert.NotEqual(t, NoBuffer, group.Buffer(paths[1]))
}

func TestRemoveErasesEntry(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	name := writeAudioFile(t, dir, "click.wav")
	require.NoError(t, group.Add(name))
	require.NoError(t, group.Load(name, false))
	handle := group.Buffer(name)

	group.Remove(name)

	assert.Equal(t, NoBuffer, group.Buffer(name))
	assert.Zero(t, group.Len())
	assert.False(t, backend.IsBuffer(handle))

	// Removing an unknown path is a no-op.
	group.Remove(name)
	assert.Zero(t, group.Len())
}

func TestRemoveBatch(t *testing.T) {
	t.Parallel()
	_, _, group, dir := newTestGroup(t)

	a := writeAudioFile(t, dir, "a.wav")
	b := writeAudioFile(t, dir, "b.wav")
	require.Equal(t, 2, group.AddBatch([]string{a, b}))

	group.RemoveBatch([]string{a, "missing.wav"})
	assert.Equal(t, []string{b}, group.Paths())
}

func TestClearDropsEverything(t *testing.T) {
	t.Parallel()
	backend, _, group, dir := newTestGroup(t)

	group.AddBatch([]string{
		writeAudioFile(t, dir, "a.wav"),
		writeAudioFile(t, dir, "b.wav"),
	})
	group.LoadAll(false)

	group.Clear()

	assert.Zero(t, group.Len())
	assert.Empty(t, backend.refs)
}

func TestGroupAccessors(t *testing.T) {
	t.Parallel()
	_, _, group, dir := newTestGroup(t)

	assert.Equal(t, "test", group.Name())
	assert.Equal(t, dir+string(os.PathSeparator), group.PathPrefix())
	assert.False(t, group.Loaded())

	b := writeAudioFile(t, dir, "b.wav")
	a := writeAudioFile(t, dir, "a.wav")
	group.AddBatch([]string{b, a})
	assert.Equal(t, []string{a, b}, group.Paths())
}
