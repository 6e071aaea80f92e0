package obs

import "testing"

type fakeGrid string

func (f fakeGrid) Text() string { return string(f) }

func TestOnGridReceivesPublishedEvent(t *testing.T) {
	b := New()
	var got GridEvent
	b.OnGrid(KindAll, func(ev GridEvent) { got = ev })
	b.PublishGrid(GridEvent{Kind: INIT, Grid: fakeGrid("x"), Depth: 0})
	if got.Kind != INIT || got.Grid.Text() != "x" {
		t.Errorf("got %+v, want INIT event with grid text x", got)
	}
}

func TestOffGridRemovesSink(t *testing.T) {
	b := New()
	calls := 0
	tok := b.OnGrid(KindAll, func(GridEvent) { calls++ })
	b.PublishGrid(GridEvent{Kind: CHANGE})
	b.OffGrid(KindAll, tok)
	b.PublishGrid(GridEvent{Kind: CHANGE})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (sink should stop receiving after OffGrid)", calls)
	}
}

func TestOnGridFiltersByKind(t *testing.T) {
	b := New()
	var solvedOnly, changeOnly int
	b.OnGrid(KindSolved, func(GridEvent) { solvedOnly++ })
	b.OnGrid(KindChange, func(GridEvent) { changeOnly++ })
	b.PublishGrid(GridEvent{Kind: INIT})
	b.PublishGrid(GridEvent{Kind: CHANGE})
	b.PublishGrid(GridEvent{Kind: SOLVED})
	if solvedOnly != 1 {
		t.Errorf("solvedOnly = %d, want 1 (only the SOLVED publish should reach it)", solvedOnly)
	}
	if changeOnly != 1 {
		t.Errorf("changeOnly = %d, want 1 (only the CHANGE publish should reach it)", changeOnly)
	}
}

func TestOffGridPartialKindLeavesOtherKindsSubscribed(t *testing.T) {
	b := New()
	var calls int
	tok := b.OnGrid(KindChange|KindSolved, func(GridEvent) { calls++ })
	b.OffGrid(KindChange, tok)
	b.PublishGrid(GridEvent{Kind: CHANGE})
	b.PublishGrid(GridEvent{Kind: SOLVED})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (CHANGE unsubscribed, SOLVED should still fire)", calls)
	}
}

func TestOffGridNullTokenRemovesEverySinkOfKind(t *testing.T) {
	b := New()
	var a, c int
	b.OnGrid(KindAll, func(GridEvent) { a++ })
	b.OnGrid(KindAll, func(GridEvent) { c++ })
	b.OffGrid(KindChange, 0)
	b.PublishGrid(GridEvent{Kind: CHANGE})
	b.PublishGrid(GridEvent{Kind: SOLVED})
	if a != 1 || c != 1 {
		t.Errorf("a=%d c=%d, want both 1 (CHANGE removed from all, SOLVED untouched)", a, c)
	}
}

func TestMultipleSinksAllReceive(t *testing.T) {
	b := New()
	var a, c int
	b.OnGrid(KindAll, func(GridEvent) { a++ })
	b.OnGrid(KindAll, func(GridEvent) { c++ })
	b.PublishGrid(GridEvent{Kind: SOLVED})
	if a != 1 || c != 1 {
		t.Errorf("a=%d c=%d, want both 1", a, c)
	}
}

func TestOffMessageNullTokenRemovesEverySink(t *testing.T) {
	b := New()
	var a, c int
	b.OnMessage(func(Message) { a++ })
	b.OnMessage(func(Message) { c++ })
	b.OffMessage(0)
	b.PublishMessage(Message{Text: "x"})
	if a != 0 || c != 0 {
		t.Errorf("a=%d c=%d, want both 0 after OffMessage(0)", a, c)
	}
}

func TestClearAllRemovesGridAndMessageSinks(t *testing.T) {
	b := New()
	var grids, messages int
	b.OnGrid(KindAll, func(GridEvent) { grids++ })
	b.OnMessage(func(Message) { messages++ })
	b.ClearAll()
	b.PublishGrid(GridEvent{Kind: INIT})
	b.PublishMessage(Message{Text: "x"})
	if grids != 0 || messages != 0 {
		t.Errorf("grids=%d messages=%d, want both 0 after ClearAll", grids, messages)
	}
}

func TestMessageSinkVerbosityIndependentOfGridSink(t *testing.T) {
	b := New()
	var msgs []Message
	b.OnMessage(func(m Message) { msgs = append(msgs, m) })
	b.PublishMessage(Message{Verbosity: Quiet, Text: "naked single placed"})
	b.PublishMessage(Message{Verbosity: Verbose, Text: "examined candidates in box 3"})
	if len(msgs) != 2 {
		t.Fatalf("len(msgs) = %d, want 2", len(msgs))
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		k    EventKind
		want string
	}{
		{INIT, "INIT"},
		{CHANGE, "CHANGE"},
		{SOLVED, "SOLVED"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestDefaultBusIsUsable(t *testing.T) {
	called := false
	tok := Default.OnGrid(KindAll, func(GridEvent) { called = true })
	defer Default.OffGrid(KindAll, tok)
	Default.PublishGrid(GridEvent{Kind: INIT})
	if !called {
		t.Error("Default bus sink was not invoked")
	}
}
