package soundbank

// Handle identifies a backend-resident decoded audio buffer.
// The backend guarantees that 0 never names a live buffer, so it doubles
// as the registered-but-unloaded sentinel in the group registry.
type Handle uint32

// NoBuffer is the handle value of a registered but unloaded buffer.
const NoBuffer Handle = 0

// Backend is the capability set the registry needs from the audio backend:
// decode-and-upload, deletion, validity checks and source reference
// tracking. Implementations decide what a handle points at; the registry
// only stores and compares handles.
type Backend interface {
	// CreateBufferFromFile decodes the audio file at path and uploads it
	// into a new buffer. The returned handle is never NoBuffer on success.
	CreateBufferFromFile(path string) (Handle, error)

	// DeleteBuffer releases the buffer. Deletion fails when the buffer is
	// still referenced by a source; the buffer then stays valid.
	DeleteBuffer(h Handle) error

	// IsBuffer reports whether h names a live buffer.
	IsBuffer(h Handle) bool

	// Retain records a source reference to the buffer, blocking deletion.
	Retain(h Handle)

	// Release drops a source reference previously added with Retain.
	Release(h Handle)
}
