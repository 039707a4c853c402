// Package nyx holds the shared 2D primitives of the Nyx UI component engine.
//
// # Overview
//
// Nyx UI components are animated vector effects: morphing blobs, a paint
// canvas, a magnifying dock. This module implements their non-trivial parts
// in pure Go so they can be rendered to SVG strings or raster images:
//
//   - [github.com/nyxui/nyx/blob]: procedural blob generation, path
//     interpolation and the animation driver
//   - [github.com/nyxui/nyx/render]: raster and SVG output of blob frames
//   - [github.com/nyxui/nyx/paint]: freehand drawing canvas with PNG export
//   - [github.com/nyxui/nyx/dock]: spring-animated dock magnification
//   - [github.com/nyxui/nyx/anim]: tick sources driving the animations
//   - [github.com/nyxui/nyx/theme]: gradient themes and light/dark mode
//
// This package provides the vocabulary they share: Point, Matrix, RGBA,
// gradients and Path, which reads and writes the SVG path mini-language.
//
// # Quick Start
//
//	a := blob.NewAnimator(blob.Config{Complexity: 3, Speed: 3, Smooth: true})
//	a.Start(anim.NewFrameTicker(60))
//	defer a.Stop()
//
//	frame := a.Frame()
//	fmt.Println(frame.Path)     // "M 78.12,50.00 C ... Z"
//	fmt.Println(frame.Rotation) // degrees
//
// # Coordinate System
//
// Blob paths live in a 0-100 viewBox:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
//
// # Logging
//
// All packages log through [Logger], which is silent until [SetLogger] is
// called.
package nyx

// Version is the current version of the library.
const Version = "0.3.0"
