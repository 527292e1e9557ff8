// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collage

import (
	"image"
	_ "image/gif"  // dropped files can be gif
	_ "image/jpeg" // dropped files can be jpeg
	_ "image/png"  // dropped files can be png
	"io"
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
)

// The pointer gesture state machine. A gesture spans PointerDown
// through PointerUp. At any time the composer is either idle (sel < 0),
// dragging the selected item, or resizing it (Resizing set on the
// item). All pointer methods are no-ops unless [Composer.Editing].

// PointerDown starts a gesture at the given surface position. A press
// always ends any gesture already in progress, even without an
// intervening [Composer.PointerUp].
// Close buttons are hit-tested first, across all items in order: a hit
// deletes that item, redraws, fires the change listeners, and ends the
// gesture. Otherwise the first item whose resize handle or body
// contains the position becomes the selection, starting a resize or a
// drag respectively. No hit clears the selection.
func (cs *Composer) PointerDown(p math32.Vector2) {
	if !cs.Editing {
		return
	}
	for i, it := range cs.items {
		if it.closeRect(cs.CloseSize).ContainsPoint(p) {
			cs.items = slices.Delete(cs.items, i, i+1)
			cs.resetTransient()
			cs.Render()
			cs.sendChange()
			return
		}
	}
	cs.resetTransient()
	for i, it := range cs.items {
		if it.handleRect(cs.HandleSize).ContainsPoint(p) {
			cs.sel = i
			it.Resizing = true
			it.startSize = it.Size
			return
		}
		if it.Bounds().ContainsPoint(p) {
			cs.sel = i
			cs.dragging = true
			cs.dragOffset = p.Sub(it.Pos)
			return
		}
	}
}

// PointerMove continues the gesture at the given surface position,
// resizing or dragging the selected item and redrawing. It is a no-op
// when no gesture is active. Resizing floors the size at [MinSize] and
// may extend past the surface; dragging clamps the item to stay fully
// on the surface.
func (cs *Composer) PointerMove(p math32.Vector2) {
	if !cs.Editing || cs.sel < 0 || cs.sel >= len(cs.items) {
		return
	}
	it := cs.items[cs.sel]
	switch {
	case it.Resizing:
		w := math32.Max(MinSize, p.X-it.Pos.X)
		var h float32
		if cs.proportional && it.startSize.X > 0 {
			h = w * it.startSize.Y / it.startSize.X
		} else {
			h = math32.Max(MinSize, p.Y-it.Pos.Y)
		}
		it.Size = math32.Vec2(w, h)
	case cs.dragging:
		np := p.Sub(cs.dragOffset)
		np.X = math32.Max(0, math32.Min(np.X, cs.Size.X-it.Size.X))
		np.Y = math32.Max(0, math32.Min(np.Y, cs.Size.Y-it.Size.Y))
		it.Pos = np
	default:
		return
	}
	cs.Render()
}

// PointerUp ends the gesture: it clears the resizing flag on the
// selected item and returns to idle. It does not fire the change
// listeners.
func (cs *Composer) PointerUp() {
	if !cs.Editing {
		return
	}
	if cs.sel >= 0 && cs.sel < len(cs.items) {
		it := cs.items[cs.sel]
		it.Resizing = false
		it.startSize = math32.Vector2{}
	}
	cs.sel = -1
	cs.dragging = false
}

// Drop decodes an image from the given reader and places it on the
// surface with [Composer.Place]. A nil reader or a payload that does
// not decode is silently ignored, leaving the surface unchanged.
func (cs *Composer) Drop(r io.Reader) {
	if r == nil {
		return
	}
	img, _, err := image.Decode(r)
	if err != nil {
		slog.Debug("collage.Composer.Drop: image did not decode", "err", err)
		return
	}
	cs.Place(img)
}

// Place appends the given image at the top-left corner of the surface,
// redraws, and fires the change listeners. The image keeps its natural
// size if it fits the surface; a dimension that does not fit falls
// back to [DropSize], with the other dimension scaled to preserve the
// aspect ratio.
func (cs *Composer) Place(img image.Image) {
	if img == nil {
		return
	}
	nat := math32.Vector2FromPoint(img.Bounds().Size())
	sz := nat
	switch {
	case nat.X > cs.Size.X:
		sz.X = DropSize
		sz.Y = nat.Y / nat.X * DropSize
	case nat.Y > cs.Size.Y:
		sz.Y = DropSize
		sz.X = nat.X / nat.Y * DropSize
	}
	cs.items = append(cs.items, NewItem(img, math32.Vector2{}, sz))
	cs.Render()
	cs.sendChange()
}
