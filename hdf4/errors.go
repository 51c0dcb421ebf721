// Package hdf4 provides a pure Go implementation for reading HDF4 files.
package hdf4

import "github.com/robert-malhotra/go-hdf4/internal/ddblock"

// Errors returned by Parse and Open. Damage to individual records is not an
// error: it shows up as Corrupt, Invalid or Unknown tags in the result.
var (
	ErrIncompleteFile     = ddblock.ErrIncomplete
	ErrInvalidMagicNumber = ddblock.ErrBadMagic
	ErrDirectoryCycle     = ddblock.ErrCycle
	ErrTooManyBlocks      = ddblock.ErrTooManyBlocks
)
