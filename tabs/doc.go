// Package tabs contains tab-level policy and pane composition.
//
// Allowed here:
// - the Home, Search, Reels, Shop and Profile tabs and their panes
// - tab-specific layout trees and key handling
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (widgets)
// - domain state beyond view selection (that lives under internal/)
package tabs
