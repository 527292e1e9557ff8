// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collage provides a widget for compositing images on a
// fixed-size surface: images can be dragged, resized from a corner
// handle, and removed with a per-image close button.
package collage

import (
	"image"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// MinSize is the floor for item width and height during a resize
	// gesture.
	MinSize = float32(10)

	// DropSize is the fallback dimension used when a dropped image is
	// larger than the surface.
	DropSize = float32(100)
)

// closeIcon is the glyph drawn centered in each close button.
const closeIcon = "x"

// Composer owns an ordered list of [Item]s and composites them onto an
// offscreen surface. It also runs the pointer gesture state machine
// (see [Composer.PointerDown] etc) that drags, resizes, and deletes
// items. It is independent of any widget or event loop: a host pushes
// pointer positions and modifier state in, and reads the rendered
// surface out with [Composer.Image]. [Board] is the Cogent Core widget
// wrapper that does exactly that.
//
// A Composer is not safe for concurrent use; all methods must be
// called from one goroutine (for [Board], the UI goroutine, with
// asynchronous drops serialized through [core.WidgetBase.AsyncLock]).
type Composer struct {

	// Size is the size of the surface. It is set by [Composer.Init]
	// and defaults to 800x600.
	Size math32.Vector2 `set:"-"`

	// Editing is whether pointer gestures can modify the surface and
	// the per-item handles and close buttons are drawn.
	// Use [Composer.SetEditing] to change it.
	Editing bool `set:"-"`

	// Background is the fill drawn under all items.
	// nil leaves the surface transparent.
	Background image.Image

	// HandleSize is the side of the resize handle square, which is
	// anchored at the bottom-right corner of each item.
	HandleSize float32 `default:"10"`

	// HandleColor is the fill of the resize handle.
	HandleColor image.Image

	// CloseSize is the side of the close button square, which is
	// anchored at the top-right corner of each item.
	CloseSize float32 `default:"20"`

	// CloseColor is the fill of the close button.
	CloseColor image.Image

	// CloseIconColor is the color of the glyph in the close button.
	CloseIconColor image.Image

	// items is the ordered list of placed images. Order is z-order
	// (later items draw on top) and hit-test order.
	items []*Item

	// sel is the index of the item a gesture is acting on, -1 if none.
	sel int

	// dragging is whether the selected item is being dragged.
	dragging bool

	// dragOffset is the pointer position relative to the dragged
	// item's top-left corner, captured at pointer down.
	dragOffset math32.Vector2

	// proportional is the pushed modifier state: whether resizing
	// preserves the gesture-start aspect ratio.
	proportional bool

	// pc is the paint context for the surface; nil until Init.
	pc *paint.Context

	// listeners are called after an item is placed or deleted.
	listeners []func(items []*Item)
}

// Defaults sets default configuration values. It only needs to be
// called when using a Composer outside of a [Board].
func (cs *Composer) Defaults() {
	cs.Size = math32.Vec2(800, 600)
	cs.Editing = true
	cs.HandleSize = 10
	cs.HandleColor = colors.Uniform(colors.Gray)
	cs.CloseSize = 20
	cs.CloseColor = colors.Uniform(colors.Red)
	cs.CloseIconColor = colors.Uniform(colors.White)
	cs.sel = -1
}

// Init allocates the surface at the given size and renders the current
// items into it. Rendering and pointer gestures are no-ops until Init
// is called. It can be called again to resize the surface.
func (cs *Composer) Init(width, height int) {
	if cs.HandleColor == nil {
		cs.Defaults()
	}
	cs.Size = math32.Vec2(float32(width), float32(height))
	cs.pc = paint.NewContext(width, height)
	cs.resetTransient()
	cs.Render()
}

// Image returns the rendered surface, or nil if [Composer.Init] has
// not been called yet.
func (cs *Composer) Image() *image.RGBA {
	if cs.pc == nil {
		return nil
	}
	return cs.pc.Image
}

// Items returns a snapshot of the current items in z-order. The
// returned items are copies: mutating them has no effect on the
// surface. Use [Composer.SetItems] to replace the items wholesale.
func (cs *Composer) Items() []*Item {
	out := make([]*Item, len(cs.items))
	for i, it := range cs.items {
		c := *it
		out[i] = &c
	}
	return out
}

// NumItems returns the number of items on the surface.
func (cs *Composer) NumItems() int {
	return len(cs.items)
}

// SetItems replaces all items on the surface, resets any gesture in
// progress, and redraws. It does not call the change listeners; those
// only fire for mutations made by gestures.
func (cs *Composer) SetItems(items ...*Item) {
	cs.items = slices.Clone(items)
	cs.resetTransient()
	cs.Render()
}

// OnChange adds a listener called with an [Composer.Items] snapshot
// after a drop places an item or a close button deletes one. Drag and
// resize gestures do not fire it.
func (cs *Composer) OnChange(fn func(items []*Item)) {
	cs.listeners = append(cs.listeners, fn)
}

// SetEditing sets whether pointer gestures can modify the surface.
// Any change resets all transient gesture state and redraws.
func (cs *Composer) SetEditing(on bool) {
	if cs.Editing == on {
		return
	}
	cs.Editing = on
	cs.resetTransient()
	cs.Render()
}

// SetProportional sets whether active resize gestures preserve the
// aspect ratio from the start of the gesture. It mirrors the state of
// a modifier key (Shift on a [Board]) and can change mid-gesture.
func (cs *Composer) SetProportional(on bool) {
	cs.proportional = on
}

// sendChange calls the change listeners with a fresh items snapshot.
func (cs *Composer) sendChange() {
	if len(cs.listeners) == 0 {
		return
	}
	snap := cs.Items()
	for _, fn := range cs.listeners {
		fn(snap)
	}
}

// resetTransient clears the selection and all per-item gesture state.
func (cs *Composer) resetTransient() {
	cs.sel = -1
	cs.dragging = false
	for _, it := range cs.items {
		it.Resizing = false
		it.startSize = math32.Vector2{}
	}
}

// Render redraws the full surface from the current state: the
// background, then each item image scaled to its size in z-order,
// then, when editing, each item's resize handle and close button.
// It does nothing before [Composer.Init].
func (cs *Composer) Render() {
	if cs.pc == nil {
		return
	}
	pc := cs.pc
	pc.BlitBox(math32.Vector2{}, cs.Size, cs.Background)
	for _, it := range cs.items {
		if it.Image != nil {
			pc.DrawImageScaled(it.Image, it.Pos.X, it.Pos.Y, it.Size.X, it.Size.Y)
		}
		if !cs.Editing {
			continue
		}
		hr := it.handleRect(cs.HandleSize)
		pc.FillBox(hr.Min, hr.Size(), cs.HandleColor)
		cr := it.closeRect(cs.CloseSize)
		pc.FillBox(cr.Min, cr.Size(), cs.CloseColor)
		cs.drawCloseIcon(cr)
	}
}

// drawCloseIcon draws the close glyph centered in the given rect.
func (cs *Composer) drawCloseIcon(r math32.Box2) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: cs.pc.Image, Src: cs.CloseIconColor, Face: face}
	ctr := r.Center()
	m := face.Metrics()
	d.Dot.X = fixed.Int26_6(ctr.X*64) - d.MeasureString(closeIcon)/2
	d.Dot.Y = fixed.Int26_6(ctr.Y*64) + m.Ascent - m.Height/2
	d.DrawString(closeIcon)
}
