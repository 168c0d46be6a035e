package project

import "errors"

// State precondition errors shared by the lifecycle manager and the plugin
// registry. Commands report these and exit without attempting any mutation.
var (
	// ErrProjectNotFound indicates the project directory does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectExists indicates the project directory already exists where
	// a fresh one was expected.
	ErrProjectExists = errors.New("project already exists")

	// ErrContainerNotRunning indicates no running container matches the
	// project's container name.
	ErrContainerNotRunning = errors.New("container not running")
)
