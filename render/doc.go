// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterizes the backgrounds of a color picker's controls.
//
// Hosts without CSS gradients (immediate-mode toolkits, terminals, image
// exports) can draw these images behind the picker's handles:
//
//   - Palette: saturation across, value down, at the current hue
//   - HueStrip: the hue wheel unrolled top to bottom
//   - OpacityStrip: the current color fading in over a checkerboard
//   - Swatch: a flat color over a checkerboard, for previews
//
// HandleColor returns the fill each handle shows for a given color.
//
// All images are *image.NRGBA with their origin at (0, 0). A non-positive
// size yields an empty image.
package render
