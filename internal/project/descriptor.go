package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// Defaults applied when the user omits the corresponding argument.
// These are the only declarations of the default name and port.
const (
	DefaultName = "jumpstart"
	DefaultPort = 5173
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validation errors returned by Resolve.
var (
	ErrInvalidName = errors.New("invalid project name")
	ErrInvalidPort = errors.New("invalid port")
)

// Descriptor is the canonical identity of a project for one command
// invocation. It is never persisted as a struct; its fields end up in the
// generated artifacts and in the container's runtime name.
type Descriptor struct {
	Name          string
	Dir           string // absolute or base-relative project root
	ContainerName string // always equal to Name
	Port          int
}

// Resolve derives a Descriptor from raw user input, applying defaults for
// missing arguments. baseDir is the directory projects live under (usually
// the working directory at startup). Resolve performs no I/O.
func Resolve(baseDir, rawName, rawPort string) (*Descriptor, error) {
	name := rawName
	if name == "" {
		name = DefaultName
	}
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q must match [A-Za-z0-9_-]+", ErrInvalidName, name)
	}

	port := DefaultPort
	if rawPort != "" {
		p, err := strconv.Atoi(rawPort)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, rawPort)
		}
		port = p
	}
	if port <= 0 || port >= 65536 {
		return nil, fmt.Errorf("%w: %d is out of range (1-65535)", ErrInvalidPort, port)
	}

	return &Descriptor{
		Name:          name,
		Dir:           filepath.Join(baseDir, name),
		ContainerName: name,
		Port:          port,
	}, nil
}
