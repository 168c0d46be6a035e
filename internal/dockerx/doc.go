// Package dockerx wraps access to the Docker runtime. The Client answers
// read-only probe queries (is a container running, does a path exist inside
// it, which host port is published) through the Docker Engine API, and the
// Shell runs attached child processes (docker compose, interactive exec,
// the project generator) that need the operator's terminal.
package dockerx
