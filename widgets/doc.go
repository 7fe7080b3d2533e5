// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay compositor, story segments)
//
// Not allowed here:
// - key handling, viewer state transitions, scope logic, or tab policy
package widgets
