package ggview

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/ggview/engine"
)

// Camera derivation constants.
const (
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView = 30.0

	// NearFarRatio is the near plane as a fraction of the radius (or of the
	// far plane, for ellipsoid scenes).
	NearFarRatio = 0.001

	radiusScale = 0.6
	eyeDistance = 3.5
	farDistance = 4.5
)

// deriveCamera returns the initial camera for scene. An empty scene is
// treated as a degenerate box at the origin.
func deriveCamera(scene engine.Node, traits *engine.Traits) *engine.Camera {
	bounds := engine.ComputeBounds(scene)
	center := bounds.Center()
	radius := bounds.Diagonal() * radiusScale

	view := &engine.LookAt{
		Eye:    center.Add(mgl64.Vec3{0, -radius * eyeDistance, 0}),
		Center: center,
		Up:     mgl64.Vec3{0, 0, 1},
	}

	aspect := traits.AspectRatio()
	var proj engine.Projection
	if ellipsoid := engine.EllipsoidModelOf(scene); ellipsoid != nil {
		proj = &engine.EllipsoidPerspective{
			LookAt:       view,
			Ellipsoid:    ellipsoid,
			FieldOfViewY: FieldOfView,
			AspectRatio:  aspect,
			NearFarRatio: NearFarRatio,
		}
	} else {
		proj = &engine.Perspective{
			FieldOfViewY: FieldOfView,
			AspectRatio:  aspect,
			NearDistance: NearFarRatio * radius,
			FarDistance:  farDistance * radius,
		}
	}

	return &engine.Camera{
		View:       view,
		Projection: proj,
		Viewport: engine.ViewportState{
			Width:  uint32(max(traits.Width, 0)),
			Height: uint32(max(traits.Height, 0)),
		},
	}
}
