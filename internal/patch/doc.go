// Package patch applies anchor-based text insertions to files inside a
// running project container. Targets are located by fixed anchors, never by
// parsing file structure. Because the compose bind mount gives the host and
// the container identical views of the project tree, existence is checked
// inside the container and the write happens on the host path.
package patch
