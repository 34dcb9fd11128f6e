// Package app wires the whole pipeline together: it owns the application
// configuration, an isolated logger, and the Run method that combines the
// input networks, writes the artifacts, renders the visualization, and
// optionally serves it for preview.
package app
