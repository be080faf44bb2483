// Package ggview shows one scene in several independently navigable views
// that share a single GPU device.
//
// # Overview
//
// An Area owns a host container, an engine viewer and the device slot.
// Each AddView call creates a host window inside the container, wraps it in
// a window.Adapter, initializes it (the first view creates the device, the
// others reuse it), derives a camera from the scene bounds, attaches a
// trackball and registers a render task with the viewer.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggview"
//	    "github.com/gogpu/ggview/assets"
//	)
//
//	scene, err := assets.Load("model.obj", assets.Config{})
//	area, err := ggview.NewArea()
//	defer area.Close()
//
//	area.AddView(scene, "First Window")
//	area.AddView(scene, "Second Window")
//	err = area.Run(ctx)
//
// # Layout
//
// The first view is shown maximized. Every later view retiles the
// container so that all views occupy disjoint regions.
//
// # Cameras
//
// A view looks at the centre of the scene bounds from 3.5 radii along -Y,
// with +Z up, where the radius is 0.6 times the bounds diagonal. Scenes
// whose root group carries an ellipsoid model get an
// engine.EllipsoidPerspective; others get a perspective whose near and far
// planes are 0.001 and 4.5 radii.
//
// # Shutdown
//
// Closing any window or pressing Escape closes the viewer, which ends Run.
// Close releases render tasks, surfaces and finally the device.
package ggview
