// Package obs is the observer bus (spec.md §4.9, §6): solvers publish grid
// lifecycle events and free-text rule-trace messages, and callers subscribe
// to either stream independently. A package-level default Bus exists for
// callers that don't need isolation (e.g. the CLI), and callers that do
// (concurrent solves, tests) construct their own with New.
package obs

import "sync"

// EventKind identifies a point in a solve's lifecycle (spec.md §6).
type EventKind int

const (
	// INIT fires once, when a solve begins, with the grid as built from
	// input.
	INIT EventKind = iota
	// CHANGE fires after a rule application or hypothesis step mutates the
	// grid.
	CHANGE
	// SOLVED fires once for each solved grid a solver finds; contradicted
	// or exhausted branches publish no SOLVED event.
	SOLVED
)

func (k EventKind) String() string {
	switch k {
	case INIT:
		return "INIT"
	case CHANGE:
		return "CHANGE"
	case SOLVED:
		return "SOLVED"
	default:
		return "UNKNOWN"
	}
}

// GridEvent is the payload delivered to GridSink subscribers (spec.md §6
// "grid event payload"). Grid is a snapshot: sinks must not retain and
// later mutate it, since solvers reuse the same *gridmodel.Grid across
// successive events within one solve.
type GridEvent struct {
	Kind  EventKind
	Grid  GridView
	Depth int // recursion depth of the hypothesis branch that produced this event
}

// GridView is the minimal read surface GridEvent exposes, so that obs does
// not import gridmodel and create a dependency cycle (solvers in
// internal/elimination, internal/backtrack, and internal/exactcover all
// import both obs and gridmodel).
type GridView interface {
	Text() string
}

// Verbosity selects how much detail a Message carries (spec.md §4.9: "a
// separate rule-trace message channel with verbosity").
type Verbosity int

const (
	// Quiet messages report only a rule firing and its outcome.
	Quiet Verbosity = iota
	// Verbose messages additionally explain which cells/candidates were
	// examined.
	Verbose
)

// Message is one rule-trace line (spec.md §4.9).
type Message struct {
	Verbosity Verbosity
	Text      string
}

// GridSink receives grid lifecycle events.
type GridSink func(GridEvent)

// MessageSink receives rule-trace messages.
type MessageSink func(Message)

// Token identifies a registered sink so it can later be removed. The zero
// Token is never issued by On*, so it is reserved as the "apply to every
// sink" wildcard the off_* calls accept in place of a specific sink
// (spec.md §6: "off_grid_event(kinds_bitmask, sink|null)").
type Token uint64

// KindMask is a bitmask over EventKind values, letting a subscriber filter
// to just the event kinds it cares about (spec.md §6: "on_grid_event(kinds_
// bitmask, sink)").
type KindMask uint8

const (
	KindInit   KindMask = 1 << KindMask(INIT)
	KindChange KindMask = 1 << KindMask(CHANGE)
	KindSolved KindMask = 1 << KindMask(SOLVED)
	KindAll             = KindInit | KindChange | KindSolved
)

type gridSub struct {
	kinds KindMask
	sink  GridSink
}

// Bus fans grid events and rule-trace messages out to every registered
// sink. A Bus is safe for concurrent Publish/Subscribe/Unsubscribe calls,
// though spec.md §5 scopes one Bus to one solve at a time in practice.
type Bus struct {
	mu       sync.RWMutex
	nextTok  Token
	grids    map[Token]gridSub
	messages map[Token]MessageSink
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{
		grids:    make(map[Token]gridSub),
		messages: make(map[Token]MessageSink),
	}
}

// Default is the package-level bus used by callers that don't construct
// their own (spec.md §4.9: "both a package-level default bus and an
// explicit per-solve *obs.Bus argument").
var Default = New()

// OnGrid registers sink for every GridEvent whose Kind is set in kinds,
// returning a Token that later removes it via OffGrid.
func (b *Bus) OnGrid(kinds KindMask, sink GridSink) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextTok++
	tok := b.nextTok
	b.grids[tok] = gridSub{kinds: kinds, sink: sink}
	return tok
}

// OffGrid unregisters kinds from tok's subscription, removing it entirely
// once no kind remains. Passing the zero Token applies kinds to every
// registered grid sink instead of one in particular (spec.md §6: "Removing
// a null sink removes every sink of that kind").
func (b *Bus) OffGrid(kinds KindMask, tok Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if tok == 0 {
		for t, sub := range b.grids {
			sub.kinds &^= kinds
			if sub.kinds == 0 {
				delete(b.grids, t)
			} else {
				b.grids[t] = sub
			}
		}
		return
	}
	sub, ok := b.grids[tok]
	if !ok {
		return
	}
	sub.kinds &^= kinds
	if sub.kinds == 0 {
		delete(b.grids, tok)
	} else {
		b.grids[tok] = sub
	}
}

// OnMessage registers sink for every Message published on b.
func (b *Bus) OnMessage(sink MessageSink) Token {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextTok++
	tok := b.nextTok
	b.messages[tok] = sink
	return tok
}

// OffMessage unregisters tok's message sink. Passing the zero Token removes
// every registered message sink (spec.md §6: "off_message(sink|null)").
func (b *Bus) OffMessage(tok Token) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if tok == 0 {
		for t := range b.messages {
			delete(b.messages, t)
		}
		return
	}
	delete(b.messages, tok)
}

// ClearAll removes every registered grid and message sink (spec.md §6
// clear_all(), §9 "treat as process-wide state with explicit init/clear_
// all").
func (b *Bus) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grids = make(map[Token]gridSub)
	b.messages = make(map[Token]MessageSink)
}

// PublishGrid fans ev out to every grid sink subscribed to ev.Kind.
func (b *Bus) PublishGrid(ev GridEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	bit := KindMask(1) << KindMask(ev.Kind)
	for _, sub := range b.grids {
		if sub.kinds&bit != 0 {
			sub.sink(ev)
		}
	}
}

// PublishMessage fans msg out to every registered message sink.
func (b *Bus) PublishMessage(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sink := range b.messages {
		sink(msg)
	}
}
