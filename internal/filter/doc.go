// Package filter provides the image filters behind component effects:
//   - Gaussian blur of coverage masks (separable, edge-clamped)
//   - Glow: blur + tint + offset of a mask, composited under a layer
package filter
