// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - the bridge that posts timer callbacks back onto the Bubble Tea loop
// - tab and pane policy (pane host selection/focus, generated tabs)
//
// Not allowed here:
// - concrete tab, pane or overlay implementations
// - low-level widget rendering primitives
package core
