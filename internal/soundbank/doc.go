// Package soundbank manages named groups of audio file buffers for a game
// audio subsystem.
//
// A BufferGroup is a registry mapping relative file paths to backend buffer
// handles. Registration and loading are separate steps: a registered entry
// holds the NoBuffer sentinel until its file has been decoded and uploaded
// by the backend. The Manager owns groups and sources and coordinates the
// purge protocol that detaches source references before buffers are
// unloaded.
//
// Groups and sources are not safe for concurrent use; the audio subsystem
// drives them from a single thread. Only the Manager's internal maps are
// mutex guarded.
package soundbank
