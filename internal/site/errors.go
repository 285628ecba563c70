package site

import "errors"

var (
	// ErrDestinationExists is returned when a copy target is already present.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrFilenameCollision is returned in strict mode when two nodes publish to
	// the same output file.
	ErrFilenameCollision = errors.New("output filename collision")
	// ErrSymlinkCycle is returned when a linked directory contains itself.
	ErrSymlinkCycle = errors.New("symlink cycle")
)
