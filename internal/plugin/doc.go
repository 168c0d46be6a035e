// Package plugin implements the dependency plugin registry. A plugin wires a
// third-party library into a scaffolded project while its container runs:
// it installs npm packages inside the container and applies anchor-based
// patches to build configuration and stylesheets.
//
// Plugins never execute arbitrary discovered code. The registry maps a name
// to a typed installer, populated from two places: built-in plugins compiled
// into the binary, and declarative YAML manifests discovered in the plugins
// directory by the one-file-one-name convention (<name>.yaml whose manifest
// name field must equal the file name).
package plugin
