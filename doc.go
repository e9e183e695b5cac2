// Package loomis implements the parametric geometry engine behind a
// Loomis-head drawing aid.
//
// # Overview
//
// The Loomis method constructs a head from a cranial sphere flattened by two
// side cuts, with guideline circles marking the feature bands (hairline,
// brow, eyes, nose, mouth) and a jaw/chin wedge hung below the side rims.
// This package is the pure mathematical core of such a tool: it derives the
// named 3D landmark points from a set of shape ratios, generates the
// construction circles and feature curves as wireframe polylines, clips them
// to the flattened side band, splits them by camera facing, and projects
// everything to canvas pixels under a fixed orthographic camera.
//
// Interactive concerns (the scene graph, pointer-drag rotation, sidebar UI,
// reference-image overlay, persistence) live in external collaborators that
// only supply the inputs and consume the outputs defined here.
//
// # Quick Start
//
//	import "github.com/sketchkit/loomis"
//
//	params := loomis.DefaultParameters()
//	frame := loomis.BuildFrame(params,
//	    loomis.IdentityRotation(), loomis.Pt(0, 0), 1920, 1080)
//
//	// frame.Landmarks holds named canvas-space points for tracing,
//	// frame.Front and frame.Back hold wireframe runs for solid and
//	// dashed rendering. See the render sub-package for a snapshot
//	// rasterizer.
//
// # Coordinate System
//
// Head space is right-handed and y-up: the camera sits at large positive z
// looking toward the origin, so points with z >= 0 face the viewer. One
// world unit is one canvas pixel; projection maps the world origin to the
// canvas center and flips y, since canvas y grows downward.
//
// # Purity
//
// Every function here is pure: output depends only on declared inputs,
// inputs are never mutated, and identical inputs yield identical output
// bit for bit. The engine is intended to be re-run from scratch on every
// change to the parameters, orientation, or pan; a full evaluation is a few
// hundred trigonometric operations and comfortably fits in a frame budget.
package loomis
