// Package screens contains concrete overlay flows rendered on top of tabs.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (story viewer, comments, command palette)
// - overlay-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
