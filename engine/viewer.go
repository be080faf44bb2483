// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the default minimum time between frames.
const DefaultInterval = 8 * time.Millisecond

// Viewer schedules frame work for a set of windows. It aggregates an event
// queue, event handlers and one task per window, and runs them once per
// tick.
//
// Push may be called from any goroutine and never blocks. Tick, Frame and
// Run are meant to be driven from a single goroutine, normally the host's
// event loop.
type Viewer struct {
	mu       sync.Mutex
	queue    []Event
	handlers []Handler
	windows  []*Window
	tasks    []Task

	continuous bool
	interval   time.Duration
	last       time.Time
	frame      uint64

	closed atomic.Bool
	wake   chan struct{}
}

// NewViewer creates a viewer in continuous mode with DefaultInterval.
func NewViewer() *Viewer {
	return &Viewer{
		continuous: true,
		interval:   DefaultInterval,
		wake:       make(chan struct{}, 1),
	}
}

// AddWindow registers a window so window-state events reach it.
func (v *Viewer) AddWindow(w *Window) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.windows = append(v.windows, w)
}

// Windows returns the registered windows.
func (v *Viewer) Windows() []*Window {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]*Window(nil), v.windows...)
}

// RemoveWindow unregisters w and releases its surface. It reports whether
// w was registered.
func (v *Viewer) RemoveWindow(w *Window) bool {
	v.mu.Lock()
	i := slices.Index(v.windows, w)
	if i >= 0 {
		v.windows = slices.Delete(v.windows, i, i+1)
	}
	v.mu.Unlock()
	if i < 0 {
		return false
	}
	w.release()
	return true
}

// AddEventHandler appends h to the handler list.
func (v *Viewer) AddEventHandler(h Handler) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.handlers = append(v.handlers, h)
}

// Handlers returns the registered handlers.
func (v *Viewer) Handlers() []Handler {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Handler(nil), v.handlers...)
}

// RemoveEventHandler removes the first occurrence of h and reports whether
// it was registered. h must be comparable, such as a pointer.
func (v *Viewer) RemoveEventHandler(h Handler) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, x := range v.handlers {
		if x == h {
			v.handlers = slices.Delete(v.handlers, i, i+1)
			return true
		}
	}
	return false
}

// AddTask registers per-frame work.
func (v *Viewer) AddTask(t Task) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tasks = append(v.tasks, t)
}

// Tasks returns the registered tasks.
func (v *Viewer) Tasks() []Task {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Task(nil), v.tasks...)
}

// Push enqueues an event for the next tick.
func (v *Viewer) Push(ev Event) {
	if ev == nil {
		return
	}
	v.mu.Lock()
	v.queue = append(v.queue, ev)
	v.mu.Unlock()

	select {
	case v.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of queued events.
func (v *Viewer) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.queue)
}

// Wake returns a channel that receives after Push. It lets event-driven
// loops sleep until there is work.
func (v *Viewer) Wake() <-chan struct{} { return v.wake }

// SetContinuousUpdate selects continuous (true) or event-driven (false)
// ticking.
func (v *Viewer) SetContinuousUpdate(continuous bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.continuous = continuous
}

// ContinuousUpdate reports the ticking mode.
func (v *Viewer) ContinuousUpdate() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.continuous
}

// SetInterval sets the minimum time between frames in milliseconds.
// Negative values are ignored.
func (v *Viewer) SetInterval(ms int) {
	if ms < 0 {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.interval = time.Duration(ms) * time.Millisecond
}

// Interval returns the minimum time between frames.
func (v *Viewer) Interval() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.interval
}

// Close stops scheduling. Active reports false afterwards.
func (v *Viewer) Close() {
	if v.closed.CompareAndSwap(false, true) {
		Logger().Info("engine: viewer closed")
		select {
		case v.wake <- struct{}{}:
		default:
		}
	}
}

// Active reports whether the viewer still schedules frames.
func (v *Viewer) Active() bool { return !v.closed.Load() }

// FrameCount returns the number of frames run so far.
func (v *Viewer) FrameCount() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frame
}

// Due reports whether a frame should run at now: the interval since the
// previous frame has elapsed, and either the viewer is continuous or
// events are pending.
func (v *Viewer) Due(now time.Time) bool {
	if !v.Active() {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.last.IsZero() && now.Sub(v.last) < v.interval {
		return false
	}
	return v.continuous || len(v.queue) > 0
}

// Tick runs one frame if one is due at now and reports whether it did.
func (v *Viewer) Tick(ctx context.Context, now time.Time) (bool, error) {
	if !v.Due(now) {
		return false, nil
	}
	return true, v.Frame(ctx, now)
}

// Frame runs one frame unconditionally: it applies window-state events,
// dispatches a FrameEvent and every queued event to the handlers, then runs
// every task. Events pushed during the frame are kept for the next one.
func (v *Viewer) Frame(ctx context.Context, now time.Time) error {
	v.mu.Lock()
	v.frame++
	v.last = now
	stamp := FrameStamp{Frame: v.frame, Time: now}
	events := v.queue
	v.queue = nil
	handlers := append([]Handler(nil), v.handlers...)
	tasks := append([]Task(nil), v.tasks...)
	v.mu.Unlock()

	for _, ev := range events {
		if w := ev.Target(); w != nil {
			w.apply(ev)
		}
	}

	dispatch := func(ev Event) {
		for _, h := range handlers {
			h.Handle(ev)
		}
	}
	dispatch(FrameEvent{Stamp: stamp})
	for _, ev := range events {
		dispatch(ev)
	}

	var errs []error
	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.Run(ctx, stamp); err != nil {
			errs = append(errs, fmt.Errorf("task %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Run ticks until the viewer is closed or ctx is done. Continuous viewers
// tick every interval; event-driven viewers sleep until an event arrives.
func (v *Viewer) Run(ctx context.Context) error {
	if !v.Active() {
		return ErrViewerClosed
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for v.Active() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		case <-v.wake:
		}

		now := time.Now()
		if _, err := v.Tick(ctx, now); err != nil {
			return err
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(v.nextWait(now))
	}
	return nil
}

// nextWait returns how long Run sleeps before the next check.
func (v *Viewer) nextWait(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	wait := v.interval - now.Sub(v.last)
	if wait < 0 {
		wait = 0
	}
	if !v.continuous && len(v.queue) == 0 {
		// Nothing to do until the wake channel fires.
		return time.Hour
	}
	if wait == 0 {
		wait = time.Millisecond
	}
	return wait
}

// Release frees every task and window surface in reverse registration
// order. The viewer must not be ticked afterwards.
func (v *Viewer) Release() {
	v.Close()

	v.mu.Lock()
	tasks := v.tasks
	windows := v.windows
	v.tasks = nil
	v.windows = nil
	v.mu.Unlock()

	for i := len(tasks) - 1; i >= 0; i-- {
		tasks[i].Release()
	}
	for i := len(windows) - 1; i >= 0; i-- {
		windows[i].release()
	}
}
