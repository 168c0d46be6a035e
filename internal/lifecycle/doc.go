// Package lifecycle drives project state transitions: create (scaffold plus
// generated container artifacts), start (attached compose foreground),
// terminal (interactive shell in the running container), and teardown
// (destructive removal of container state and the project tree). State is
// derived fresh from the environment on every command and never cached.
package lifecycle
