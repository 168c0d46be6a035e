// Package scaffold materializes a new project. It drives the external
// project generator (npm create vite) as a black box, then renders the
// container build and orchestration artifacts (Dockerfile, compose.yaml)
// from embedded templates parameterized by the project descriptor.
package scaffold
