package storage

import "errors"

// Common storage errors
var (
	// ErrCorrupt indicates that persisted data cannot be decoded
	ErrCorrupt = errors.New("persisted data is corrupt")

	// ErrPassphraseRequired indicates an encrypted snapshot was found
	// but no passphrase was supplied
	ErrPassphraseRequired = errors.New("snapshot is encrypted, passphrase required")
)
