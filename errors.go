package dircache

import "errors"

var (
	ErrDirectoryNameRequired = errors.New("directory name required")
	ErrEntryIDRequired       = errors.New("entry id required")
	ErrDataDirRequired       = errors.New("data dir required")
	ErrEntryNotFound         = errors.New("entry not found")
	ErrEntryAlreadyExists    = errors.New("entry already exists")
	ErrReadOnlyDirectory     = errors.New("directory is read only")
	ErrUnknownDirectory      = errors.New("unknown directory")
	ErrDuplicateDirectory    = errors.New("duplicate directory")
	ErrUncloneableValue      = errors.New("value cannot be cloned")
	ErrNilRecord             = errors.New("nil record")
	ErrChecksumDataTooShort  = errors.New("data too short to contain checksum")
	ErrChecksumMismatch      = errors.New("checksum mismatch")
)
