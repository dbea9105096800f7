package domain

import "errors"

// Domain errors.
var (
	ErrAppNotFound         = errors.New("app not found")
	ErrInvalidApp          = errors.New("app definition requires id, title and path")
	ErrDuplicateAppID      = errors.New("duplicate app id")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrEmptyRegistry       = errors.New("registry has no apps")
	ErrUnsupportedRegistry = errors.New("unsupported registry file format (use .toml, .yaml or .yml)")
	ErrInvalidSortMode     = errors.New("invalid sort mode")
	ErrInvalidSearchMode   = errors.New("invalid search mode")
	ErrInvalidThreshold    = errors.New("carousel threshold must not be negative")
	ErrAppNotPinnable      = errors.New("app cannot be pinned to the dock")
	ErrAlreadyPinned       = errors.New("app already pinned")
	ErrNotPinned           = errors.New("app not pinned")
	ErrDockFull            = errors.New("dock is full")
	ErrInvalidPosition     = errors.New("invalid dock position")
	ErrDockFileCorrupted   = errors.New("dock file is corrupted")
	ErrConfigExists        = errors.New("config file already exists")
	ErrNoConfigDir         = errors.New("cannot determine config directory")
)
