// Package app assembles storygram: the fx dependency graph, the tab set, the
// command palette and the program lifecycle.
package app
