package soundbank

import (
	"github.com/aukio/soundbank/internal/errors"
)

// Error sentinel values for common soundbank errors
var (
	// ErrManagerClosed is returned when the owning manager has been closed
	// and the group can no longer talk to the backend
	ErrManagerClosed = errors.Newf("audio manager is no longer valid").
			Component("soundbank").
			Category(errors.CategoryState).
			Build()

	// ErrNotRegistered is returned when a path is not part of the group
	ErrNotRegistered = errors.Newf("file is not registered in this group").
				Component("soundbank").
				Category(errors.CategoryNotFound).
				Build()

	// ErrAlreadyRegistered is returned when adding a path twice
	ErrAlreadyRegistered = errors.Newf("file is already part of this group").
				Component("soundbank").
				Category(errors.CategoryConflict).
				Build()

	// ErrAlreadyLoaded is returned when loading a buffer whose handle is live
	ErrAlreadyLoaded = errors.Newf("buffer is already loaded").
				Component("soundbank").
				Category(errors.CategoryState).
				Build()

	// ErrNotRegularFile is returned when the target does not exist or is
	// not a regular file
	ErrNotRegularFile = errors.Newf("not a regular file").
				Component("soundbank").
				Category(errors.CategoryValidation).
				Build()

	// ErrBufferInUse is returned when the backend refuses deletion because
	// sources still reference the buffer
	ErrBufferInUse = errors.Newf("buffer is still in active use by sources").
			Component("soundbank").
			Category(errors.CategoryBufferUnload).
			Build()

	// ErrBufferNotLoaded is returned when attaching a source to an
	// unloaded buffer
	ErrBufferNotLoaded = errors.Newf("buffer is not loaded").
				Component("soundbank").
				Category(errors.CategoryState).
				Build()

	// ErrGroupExists is returned when creating a group under a taken name
	ErrGroupExists = errors.Newf("buffer group already exists").
			Component("soundbank").
			Category(errors.CategoryConflict).
			Build()

	// ErrGroupNotFound is returned when destroying an unknown group
	ErrGroupNotFound = errors.Newf("no such buffer group").
				Component("soundbank").
				Category(errors.CategoryNotFound).
				Build()
)
