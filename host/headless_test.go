// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"
)

func newTestContainer(t *testing.T) *Headless {
	t.Helper()
	c, err := NewHeadless(HeadlessConfig{Title: "test", Width: 800, Height: 600, ScaleFactor: 2, Hz: 1000})
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}
	return c
}

func addWindow(t *testing.T, c *Headless, title string) (*HeadlessWindow, *[]Event) {
	t.Helper()
	w, err := c.NewWindow(WindowConfig{Title: title, Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	events := &[]Event{}
	w.OnEvent(func(ev Event) { *events = append(*events, ev) })
	if err := c.Add(w); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return w.(*HeadlessWindow), events
}

func TestNewHeadlessInvalidSize(t *testing.T) {
	if _, err := NewHeadless(HeadlessConfig{Width: 0, Height: 10}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewHeadless(0x10) = %v, want ErrInvalidSize", err)
	}
}

func TestHeadlessAddErrors(t *testing.T) {
	c := newTestContainer(t)
	other := newTestContainer(t)

	w, _ := addWindow(t, c, "a")
	if err := c.Add(w); !errors.Is(err, ErrAlreadyAdded) {
		t.Errorf("second Add = %v, want ErrAlreadyAdded", err)
	}
	if err := other.Add(w); !errors.Is(err, ErrForeignWindow) {
		t.Errorf("foreign Add = %v, want ErrForeignWindow", err)
	}
}

func TestHeadlessShowMaximizedThenTile(t *testing.T) {
	c := newTestContainer(t)

	first, firstEvents := addWindow(t, c, "first")
	c.ShowMaximized(first)
	if !first.Visible() || !first.IsMaximized() {
		t.Fatal("first window not shown maximized")
	}
	if got := first.Rect(); got != c.Bounds() {
		t.Errorf("maximized rect = %v, want %v", got, c.Bounds())
	}
	if len(*firstEvents) != 1 || (*firstEvents)[0].Kind != EventExpose {
		t.Fatalf("first events = %v, want one expose", *firstEvents)
	}
	if e := (*firstEvents)[0]; e.Width != 800 || e.Height != 600 {
		t.Errorf("expose size = %dx%d, want 800x600", e.Width, e.Height)
	}

	second, secondEvents := addWindow(t, c, "second")
	c.Tile()

	if first.IsMaximized() {
		t.Error("first window still maximized after Tile")
	}
	if first.Rect().Overlaps(second.Rect()) {
		t.Errorf("tiles overlap: %v and %v", first.Rect(), second.Rect())
	}
	if last := (*firstEvents)[len(*firstEvents)-1]; last.Kind != EventResize || last.Width != 400 {
		t.Errorf("first window last event = %v, want resize to 400 wide", last)
	}
	if len(*secondEvents) != 1 || (*secondEvents)[0].Kind != EventExpose {
		t.Errorf("second events = %v, want one expose", *secondEvents)
	}
}

func TestHeadlessWindowSizeAndScale(t *testing.T) {
	c := newTestContainer(t)
	w, _ := addWindow(t, c, "a")
	if gotW, gotH := w.Size(); gotW != 400 || gotH != 300 {
		t.Errorf("Size = %dx%d, want 400x300", gotW, gotH)
	}
	if got := w.ScaleFactor(); got != 2 {
		t.Errorf("ScaleFactor = %v, want 2", got)
	}

	def, err := c.NewWindow(WindowConfig{Title: "default"})
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	if gotW, gotH := def.Size(); gotW != 800 || gotH != 600 {
		t.Errorf("default Size = %dx%d, want container size", gotW, gotH)
	}
}

func TestHeadlessWindowChrome(t *testing.T) {
	c := newTestContainer(t)
	w, events := addWindow(t, c, "a")
	c.Tile()

	w.Maximize()
	if !w.IsMaximized() {
		t.Error("Maximize did not maximize")
	}
	w.Maximize()
	if w.IsMaximized() {
		t.Error("second Maximize did not restore")
	}

	w.SetFullscreen(true)
	if !w.IsFullscreen() {
		t.Error("IsFullscreen = false after SetFullscreen(true)")
	}

	*events = nil
	w.Minimize()
	if w.Visible() {
		t.Error("window visible after Minimize")
	}
	w.Close()
	if len(*events) != 2 || (*events)[0].Kind != EventHide || (*events)[1].Kind != EventClose {
		t.Errorf("events = %v, want hide then close", *events)
	}
}

func TestHeadlessPresentCopiesFrame(t *testing.T) {
	c := newTestContainer(t)
	w, _ := addWindow(t, c, "a")

	frame := image.NewRGBA(image.Rect(0, 0, 2, 2))
	frame.Pix[0] = 200
	w.Present(frame)
	frame.Pix[0] = 0

	got := w.Frame()
	if got == nil || got.Pix[0] != 200 {
		t.Fatal("presented frame not copied")
	}
	if w.FrameCount() != 1 {
		t.Errorf("FrameCount = %d, want 1", w.FrameCount())
	}
}

func TestHeadlessRun(t *testing.T) {
	c := newTestContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ticks := 0
	err := c.Run(ctx, func(time.Time) (bool, error) {
		ticks++
		return ticks < 3, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}

	errStop := errors.New("stop")
	err = c.Run(ctx, func(time.Time) (bool, error) { return true, errStop })
	if !errors.Is(err, errStop) {
		t.Errorf("Run = %v, want %v", err, errStop)
	}
}

func TestHeadlessCloseStopsRun(t *testing.T) {
	c := newTestContainer(t)
	_, events := addWindow(t, c, "a")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ticks := 0
	err := c.Run(ctx, func(time.Time) (bool, error) {
		ticks++
		c.Close()
		return true, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
	if n := len(*events); n != 1 || (*events)[0].Kind != EventClose {
		t.Errorf("events = %v, want one close", *events)
	}
}

func TestHeadlessRemove(t *testing.T) {
	c := newTestContainer(t)
	other := newTestContainer(t)

	first, _ := addWindow(t, c, "first")
	second, secondEvents := addWindow(t, c, "second")
	c.Tile()

	if err := c.Remove(second); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := c.Windows(); len(got) != 1 || got[0] != first {
		t.Errorf("windows = %d after Remove, want only first", len(got))
	}
	if second.Visible() || second.IsMaximized() {
		t.Error("removed window still visible")
	}
	if last := (*secondEvents)[len(*secondEvents)-1]; last.Kind != EventHide {
		t.Errorf("removed window last event = %v, want hide", last)
	}

	if err := c.Remove(second); !errors.Is(err, ErrNotAdded) {
		t.Errorf("second Remove = %v, want ErrNotAdded", err)
	}
	if err := other.Remove(first); !errors.Is(err, ErrForeignWindow) {
		t.Errorf("foreign Remove = %v, want ErrForeignWindow", err)
	}
}
