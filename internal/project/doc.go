// Package project resolves and validates project identity. A Descriptor
// carries the canonical name, directory, container name, and dev-server port
// for one command invocation; every other package receives the resolved
// paths explicitly instead of relying on the process working directory.
package project
