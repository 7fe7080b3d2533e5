package story

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultDwell is how long one image stays on screen before auto-advance.
const DefaultDwell = 5000 * time.Millisecond

// State is a snapshot of the viewer. Story is the zero value while closed.
type State struct {
	Open  bool
	Story Story
	Index int
}

// Image returns the active image reference, or "" while closed.
func (s State) Image() string {
	if !s.Open || s.Index < 0 || s.Index >= len(s.Story.Images) {
		return ""
	}
	return s.Story.Images[s.Index]
}

// Last reports whether the active image is the final one of the story.
func (s State) Last() bool {
	return s.Open && s.Index == len(s.Story.Images)-1
}

type Option func(*Viewer)

// WithClock replaces the real clock, mostly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(v *Viewer) {
		if c != nil {
			v.clock = c
		}
	}
}

// WithDwell sets the auto-advance duration. Non-positive values are ignored.
func WithDwell(d time.Duration) Option {
	return func(v *Viewer) {
		if d > 0 {
			v.dwell = d
		}
	}
}

// WithDispatcher routes timer fires through fn instead of running them on the
// clock's goroutine. Hosts with an event loop pass a function that posts the
// callback onto that loop.
func WithDispatcher(fn func(func())) Option {
	return func(v *Viewer) {
		if fn != nil {
			v.dispatch = fn
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.log = l
		}
	}
}

// Viewer plays one story at a time. States are Closed and Viewing(story, i).
// Every change of the active image re-arms a single auto-advance timer;
// closing cancels it.
type Viewer struct {
	mu       sync.Mutex
	stories  Collection
	clock    clockwork.Clock
	dwell    time.Duration
	dispatch func(func())
	log      *slog.Logger

	open  bool
	cur   Story
	index int

	timer clockwork.Timer
	gen   uint64
}

func NewViewer(stories Collection, opts ...Option) *Viewer {
	v := &Viewer{
		stories:  stories,
		clock:    clockwork.NewRealClock(),
		dwell:    DefaultDwell,
		dispatch: func(fn func()) { fn() },
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Stories returns the collection the viewer was built with.
func (v *Viewer) Stories() Collection { return v.stories }

func (v *Viewer) Dwell() time.Duration { return v.dwell }

// State returns a snapshot of the current viewer state.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open {
		return State{}
	}
	return State{Open: true, Story: v.cur, Index: v.index}
}

// IsOpen reports whether a story is being viewed.
func (v *Viewer) IsOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.open
}

// Armed reports whether an auto-advance timer is pending.
func (v *Viewer) Armed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timer != nil
}

// Open starts viewing s from its first image. Stories with no images, or
// stories that are not part of the collection, are rejected.
func (v *Viewer) Open(s Story) bool {
	member, ok := v.stories.Find(s.ID)
	if !ok || member.Len() == 0 {
		v.log.Debug("story open rejected", "story", s.ID, "member", ok)
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = true
	v.cur = member
	v.index = 0
	v.armLocked()
	v.log.Debug("story opened", "story", member.ID, "images", member.Len())
	return true
}

// OpenAt opens the story at position i of the bar.
func (v *Viewer) OpenAt(i int) bool {
	s, ok := v.stories.At(i)
	if !ok {
		return false
	}
	return v.Open(s)
}

// Close resets the viewer and cancels any pending timer. Closing an already
// closed viewer does nothing.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeLocked()
}

// Forward moves to the next image. Past the last image the viewer closes; it
// does not continue with the next story.
func (v *Viewer) Forward() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.forwardLocked()
}

// Back moves to the previous image. At the first image it does nothing.
func (v *Viewer) Back() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open || v.index == 0 {
		return
	}
	v.index--
	v.armLocked()
}

// HandleTap routes a tap: the left half of the view goes back, the right half
// goes forward.
func (v *Viewer) HandleTap(x, width int) {
	if float64(x) < float64(width)/2 {
		v.Back()
		return
	}
	v.Forward()
}

func (v *Viewer) forwardLocked() {
	if !v.open {
		return
	}
	if v.index < len(v.cur.Images)-1 {
		v.index++
		v.armLocked()
		return
	}
	v.log.Debug("story finished", "story", v.cur.ID)
	v.closeLocked()
}

func (v *Viewer) closeLocked() {
	if !v.open && v.timer == nil {
		return
	}
	v.stopLocked()
	v.open = false
	v.cur = Story{}
	v.index = 0
}

// armLocked replaces the pending timer. The generation counter makes any
// callback from an earlier arm a no-op, even if it already fired and is
// waiting on the lock.
func (v *Viewer) armLocked() {
	v.stopLocked()
	v.gen++
	gen := v.gen
	v.timer = v.clock.AfterFunc(v.dwell, func() {
		v.dispatch(func() { v.fire(gen) })
	})
}

func (v *Viewer) stopLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.gen++
}

func (v *Viewer) fire(gen uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen || v.timer == nil {
		return
	}
	v.timer = nil
	v.log.Debug("story auto-advance", "story", v.cur.ID, "index", v.index)
	v.forwardLocked()
}
