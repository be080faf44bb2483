// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package engine is the retained-mode side of ggview: the scene graph, the
// camera model, the neutral event model and the viewer that schedules frame
// work.
//
// The viewer owns an event queue, a list of event handlers, the engine
// windows and one render task per window. Hosts push translated input into
// the queue; once per tick the viewer applies window-state events, hands
// every event to the handlers and then runs each task:
//
//	v := engine.NewViewer()
//	v.AddEventHandler(engine.NewCloseHandler(v))
//	v.AddTask(task)
//
//	for v.Active() {
//	    if _, err := v.Tick(ctx, time.Now()); err != nil {
//	        return err
//	    }
//	}
//
// GPU work is delegated to a [Backend]. The backend owns device and surface
// creation and builds the per-window render tasks; the engine only sees the
// device as a [gpucontext.DeviceProvider] held in a [DeviceSlot].
package engine
