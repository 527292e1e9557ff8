// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collage

import (
	"image"

	"cogentcore.org/core/math32"
)

// Item is one image placed on a [Composer] surface. The item holds a
// reference to the decoded bitmap for its lifetime but does not own it;
// decoding is the responsibility of whoever placed it.
type Item struct {

	// Image is the decoded bitmap drawn for this item.
	Image image.Image

	// Pos is the top-left position of the item in surface coordinates.
	Pos math32.Vector2

	// Size is the current rendered size of the item. It never goes
	// below [MinSize] in either dimension.
	Size math32.Vector2

	// Resizing is whether a resize gesture is currently active on this
	// item. At most one item on a surface is resizing at any time.
	Resizing bool `set:"-"`

	// startSize is the size at the start of the current resize gesture,
	// used for the aspect ratio when resizing proportionally.
	// It is only valid while Resizing is set.
	startSize math32.Vector2
}

// NewItem returns a new [Item] for the given image at the given
// position and size.
func NewItem(img image.Image, pos, size math32.Vector2) *Item {
	return &Item{Image: img, Pos: pos, Size: size}
}

// Bounds returns the bounding box of the item body on the surface.
func (it *Item) Bounds() math32.Box2 {
	return math32.Box2{Min: it.Pos, Max: it.Pos.Add(it.Size)}
}

// handleRect returns the resize handle square with the given side,
// anchored at the bottom-right corner of the item.
func (it *Item) handleRect(side float32) math32.Box2 {
	br := it.Pos.Add(it.Size)
	return math32.B2(br.X-side, br.Y-side, br.X, br.Y)
}

// closeRect returns the close button square with the given side,
// anchored at the top-right corner of the item.
func (it *Item) closeRect(side float32) math32.Box2 {
	tr := math32.Vec2(it.Pos.X+it.Size.X, it.Pos.Y)
	return math32.B2(tr.X-side, tr.Y, tr.X, tr.Y+side)
}
