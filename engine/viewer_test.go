// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogpu/ggview/keymap"
)

// countingTask records how often it ran.
type countingTask struct {
	runs     int
	released int
	err      error
}

func (c *countingTask) Run(context.Context, FrameStamp) error { c.runs++; return c.err }
func (c *countingTask) Release()                              { c.released++ }

// recordingHandler keeps every event it sees.
type recordingHandler struct {
	events []Event
}

func (r *recordingHandler) Handle(ev Event) { r.events = append(r.events, ev) }

// mockSurface records resizes.
type mockSurface struct {
	width, height uint32
	resizes       int
	released      bool
}

func (s *mockSurface) Resize(w, h uint32) error { s.width, s.height = w, h; s.resizes++; return nil }
func (s *mockSurface) Release()                 { s.released = true }

func TestSetIntervalIgnoresNegative(t *testing.T) {
	v := NewViewer()
	if got := v.Interval(); got != DefaultInterval {
		t.Fatalf("default interval = %v, want %v", got, DefaultInterval)
	}

	v.SetInterval(-5)
	if got := v.Interval(); got != DefaultInterval {
		t.Errorf("after SetInterval(-5) interval = %v, want %v", got, DefaultInterval)
	}

	v.SetInterval(0)
	if got := v.Interval(); got != 0 {
		t.Errorf("after SetInterval(0) interval = %v, want 0", got)
	}

	v.SetInterval(16)
	if got := v.Interval(); got != 16*time.Millisecond {
		t.Errorf("after SetInterval(16) interval = %v, want 16ms", got)
	}
}

func TestTickPacing(t *testing.T) {
	ctx := context.Background()
	start := time.Unix(1000, 0)

	tests := []struct {
		name       string
		continuous bool
		push       bool
		want       bool
	}{
		{"continuous idle", true, false, true},
		{"continuous with events", true, true, true},
		{"event driven idle", false, false, false},
		{"event driven with events", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewer()
			v.SetContinuousUpdate(tt.continuous)
			task := &countingTask{}
			v.AddTask(task)
			if tt.push {
				v.Push(CloseWindowEvent{})
			}

			ran, err := v.Tick(ctx, start)
			if err != nil {
				t.Fatalf("Tick: %v", err)
			}
			if ran != tt.want {
				t.Errorf("Tick ran = %v, want %v", ran, tt.want)
			}
			if want := map[bool]int{true: 1, false: 0}[tt.want]; task.runs != want {
				t.Errorf("task runs = %d, want %d", task.runs, want)
			}
		})
	}
}

func TestTickRespectsInterval(t *testing.T) {
	ctx := context.Background()
	v := NewViewer()
	v.SetInterval(10)
	start := time.Unix(1000, 0)

	if ran, _ := v.Tick(ctx, start); !ran {
		t.Fatal("first tick did not run")
	}
	if ran, _ := v.Tick(ctx, start.Add(5*time.Millisecond)); ran {
		t.Error("tick ran before the interval elapsed")
	}
	if ran, _ := v.Tick(ctx, start.Add(10*time.Millisecond)); !ran {
		t.Error("tick did not run after the interval elapsed")
	}
	if got := v.FrameCount(); got != 2 {
		t.Errorf("FrameCount = %d, want 2", got)
	}
}

func TestFrameDispatchOrder(t *testing.T) {
	v := NewViewer()
	rec := &recordingHandler{}
	v.AddEventHandler(rec)

	w := NewWindow("w", NewTraits())
	press := KeyPressEvent{KeyEvent{WindowEvent: WindowEvent{Window: w}, Key: 'a'}}
	v.Push(press)

	if err := v.Frame(context.Background(), time.Unix(1, 0)); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(rec.events) != 2 {
		t.Fatalf("handler saw %d events, want 2", len(rec.events))
	}
	if fe, ok := rec.events[0].(FrameEvent); !ok || fe.Stamp.Frame != 1 {
		t.Errorf("first event = %#v, want FrameEvent for frame 1", rec.events[0])
	}
	if rec.events[1] != Event(press) {
		t.Errorf("second event = %#v, want the key press", rec.events[1])
	}
	if v.Pending() != 0 {
		t.Errorf("Pending = %d after frame, want 0", v.Pending())
	}
}

func TestPushDuringFrameDeliveredNextFrame(t *testing.T) {
	v := NewViewer()
	w := NewWindow("w", NewTraits())
	pushed := false
	var seen []Event
	v.AddEventHandler(HandlerFunc(func(ev Event) {
		if _, ok := ev.(FrameEvent); ok {
			return
		}
		seen = append(seen, ev)
		if !pushed {
			pushed = true
			v.Push(UnmapWindowEvent{WindowEvent{Window: w}})
		}
	}))

	v.Push(ExposeWindowEvent{WindowEvent: WindowEvent{Window: w}})
	ctx := context.Background()
	_ = v.Frame(ctx, time.Unix(1, 0))
	if len(seen) != 1 {
		t.Fatalf("first frame saw %d events, want 1", len(seen))
	}
	if v.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", v.Pending())
	}
	_ = v.Frame(ctx, time.Unix(2, 0))
	if len(seen) != 2 {
		t.Fatalf("second frame saw %d events total, want 2", len(seen))
	}
	if _, ok := seen[1].(UnmapWindowEvent); !ok {
		t.Errorf("second event = %T, want UnmapWindowEvent", seen[1])
	}
}

func TestFrameAppliesWindowState(t *testing.T) {
	v := NewViewer()
	w := NewWindow("w", NewTraits())
	s := &mockSurface{}
	w.Attach(nil, s, Extent{Width: 800, Height: 600})
	v.AddWindow(w)
	ctx := context.Background()

	v.Push(ExposeWindowEvent{WindowEvent: WindowEvent{Window: w}, Width: 800, Height: 600})
	_ = v.Frame(ctx, time.Unix(1, 0))
	if !w.Visible() {
		t.Error("window not visible after expose")
	}
	if s.resizes != 0 {
		t.Errorf("expose at same extent resized surface %d times", s.resizes)
	}

	v.Push(ConfigureWindowEvent{WindowEvent: WindowEvent{Window: w}, Width: 1024, Height: 768})
	_ = v.Frame(ctx, time.Unix(2, 0))
	if got := w.Extent(); got != (Extent{1024, 768}) {
		t.Errorf("extent = %+v, want 1024x768", got)
	}
	if s.width != 1024 || s.height != 768 {
		t.Errorf("surface = %dx%d, want 1024x768", s.width, s.height)
	}

	v.Push(ConfigureWindowEvent{WindowEvent: WindowEvent{Window: w}, Width: 0, Height: 768})
	_ = v.Frame(ctx, time.Unix(3, 0))
	if got := w.Extent(); got != (Extent{1024, 768}) {
		t.Errorf("empty configure changed extent to %+v", got)
	}

	v.Push(UnmapWindowEvent{WindowEvent{Window: w}})
	_ = v.Frame(ctx, time.Unix(4, 0))
	if w.Visible() {
		t.Error("window visible after unmap")
	}
}

func TestFrameJoinsTaskErrors(t *testing.T) {
	v := NewViewer()
	errBoom := errors.New("boom")
	ok := &countingTask{}
	bad := &countingTask{err: errBoom}
	v.AddTask(bad)
	v.AddTask(ok)

	err := v.Frame(context.Background(), time.Unix(1, 0))
	if !errors.Is(err, errBoom) {
		t.Fatalf("Frame error = %v, want %v", err, errBoom)
	}
	if ok.runs != 1 {
		t.Errorf("later task runs = %d, want 1", ok.runs)
	}
}

func TestCloseHandler(t *testing.T) {
	tests := []struct {
		name   string
		ev     Event
		escape bool
		closed bool
	}{
		{"window close", CloseWindowEvent{}, true, true},
		{"escape", KeyPressEvent{KeyEvent{Key: keymap.KeyEscape}}, true, true},
		{"escape disabled", KeyPressEvent{KeyEvent{Key: keymap.KeyEscape}}, false, false},
		{"other key", KeyPressEvent{KeyEvent{Key: 'q'}}, true, false},
		{"escape release", KeyReleaseEvent{KeyEvent{Key: keymap.KeyEscape}}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewer()
			h := NewCloseHandler(v)
			h.CloseOnEscape = tt.escape
			h.Handle(tt.ev)
			if got := !v.Active(); got != tt.closed {
				t.Errorf("closed = %v, want %v", got, tt.closed)
			}
		})
	}
}

func TestClosedViewerDoesNotTick(t *testing.T) {
	v := NewViewer()
	v.Close()
	if ran, _ := v.Tick(context.Background(), time.Now()); ran {
		t.Error("closed viewer ticked")
	}
	if err := v.Run(context.Background()); !errors.Is(err, ErrViewerClosed) {
		t.Errorf("Run on closed viewer = %v, want ErrViewerClosed", err)
	}
}

func TestRunStopsOnClose(t *testing.T) {
	v := NewViewer()
	v.SetInterval(0)
	task := &countingTask{}
	v.AddTask(task)
	v.AddEventHandler(HandlerFunc(func(ev Event) {
		if fe, ok := ev.(FrameEvent); ok && fe.Stamp.Frame == 3 {
			v.Close()
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if task.runs != 3 {
		t.Errorf("task runs = %d, want 3", task.runs)
	}
}

func TestReleaseOrder(t *testing.T) {
	v := NewViewer()
	w := NewWindow("w", NewTraits())
	s := &mockSurface{}
	w.Attach(nil, s, Extent{1, 1})
	v.AddWindow(w)
	task := &countingTask{}
	v.AddTask(task)

	v.Release()
	if task.released != 1 {
		t.Errorf("task released %d times, want 1", task.released)
	}
	if !s.released {
		t.Error("surface not released")
	}
	if v.Active() {
		t.Error("viewer still active after Release")
	}
}

func TestRemoveWindowReleasesSurface(t *testing.T) {
	v := NewViewer()
	w := NewWindow("w", NewTraits())
	s := &mockSurface{}
	w.Attach(nil, s, Extent{1, 1})
	v.AddWindow(w)

	if !v.RemoveWindow(w) {
		t.Fatal("RemoveWindow = false for a registered window")
	}
	if len(v.Windows()) != 0 || !s.released || w.Surface() != nil {
		t.Error("window still registered or surface kept")
	}
	if v.RemoveWindow(w) {
		t.Error("second RemoveWindow = true")
	}
}

func TestRemoveEventHandler(t *testing.T) {
	v := NewViewer()
	keep, drop := &recordingHandler{}, &recordingHandler{}
	v.AddEventHandler(HandlerFunc(func(Event) {}))
	v.AddEventHandler(keep)
	v.AddEventHandler(drop)

	if !v.RemoveEventHandler(drop) || v.RemoveEventHandler(drop) {
		t.Error("RemoveEventHandler should succeed once")
	}
	hs := v.Handlers()
	if len(hs) != 2 || hs[1] != Handler(keep) {
		t.Errorf("handlers = %v, want the func and keep", hs)
	}
}
