// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collage

import (
	"image"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/tree"
)

// Board is a widget that displays a [Composer] surface and drives its
// gestures from pointer and key events. It emits [events.Change] when
// an image is placed or deleted; use [Composer.Items] for the current
// contents.
type Board struct {
	core.Canvas

	// Composer holds the items, the configuration, and the rendered
	// surface. Configuration fields can be set directly before the
	// board is shown.
	Composer Composer `set:"-"`
}

// NewBoard returns a new [Board] with the given optional parent.
func NewBoard(parent ...tree.Node) *Board {
	return tree.New[Board](parent...)
}

func (bd *Board) Init() {
	bd.Canvas.Init()
	bd.Composer.Defaults()
	bd.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Activatable, abilities.Focusable)
		s.Min.X.Dp(bd.Composer.Size.X)
		s.Min.Y.Dp(bd.Composer.Size.Y)
	})
	bd.SetDraw(func(pc *paint.Context) {
		if bd.Composer.Image() == nil {
			bd.Composer.Init(int(bd.Composer.Size.X), int(bd.Composer.Size.Y))
		}
		pc.DrawImageScaled(bd.Composer.Image(), 0, 0, 1, 1)
	})
	bd.Composer.OnChange(func(items []*Item) {
		bd.SendChange()
	})
	bd.On(events.MouseDown, func(e events.Event) {
		bd.Composer.SetProportional(e.HasAnyModifier(key.Shift))
		bd.Composer.PointerDown(bd.surfacePos(e.Pos()))
		bd.NeedsRender()
	})
	bd.On(events.MouseDrag, func(e events.Event) {
		bd.Composer.SetProportional(e.HasAnyModifier(key.Shift))
		bd.Composer.PointerMove(bd.surfacePos(e.Pos()))
		bd.NeedsRender()
	})
	bd.On(events.MouseUp, func(e events.Event) {
		bd.Composer.PointerUp()
		bd.NeedsRender()
	})
	// modifier state is tracked between gestures too, so that a resize
	// started before Shift goes down still locks when it does
	bd.On(events.KeyDown, func(e events.Event) {
		bd.Composer.SetProportional(e.HasAnyModifier(key.Shift))
	})
	bd.On(events.KeyUp, func(e events.Event) {
		bd.Composer.SetProportional(e.HasAnyModifier(key.Shift))
	})
}

// SetEditing sets whether the board can be edited with pointer
// gestures and renders the result.
func (bd *Board) SetEditing(on bool) *Board { //types:add
	bd.Composer.SetEditing(on)
	bd.NeedsRender()
	return bd
}

// OpenFile loads the given image file and places it on the board.
// Decoding happens in the background; the image appears when it
// completes.
func (bd *Board) OpenFile(filename string) error { //types:add
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	bd.dropAsync(func() (image.Image, error) {
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	})
	return nil
}

// OpenFiles places each given image file on the board, for wiring to
// host file-drop integration. Files that cannot be opened or decoded
// are skipped.
func (bd *Board) OpenFiles(filenames ...string) {
	for _, fn := range filenames {
		if err := bd.OpenFile(fn); err != nil {
			slog.Debug("collage.Board.OpenFiles: open failed", "file", fn, "err", err)
		}
	}
}

// DropReader decodes an image from the given reader in the background
// and places it on the board when decoding completes. A payload that
// does not decode is silently dropped.
func (bd *Board) DropReader(r io.Reader) {
	bd.dropAsync(func() (image.Image, error) {
		img, _, err := image.Decode(r)
		return img, err
	})
}

// dropAsync runs decode in a goroutine and completes the drop on the
// UI goroutine. Gestures can run and complete while a decode is
// pending; the placement happens into whatever state exists then.
func (bd *Board) dropAsync(decode func() (image.Image, error)) {
	go func() {
		img, err := decode()
		if err != nil {
			slog.Debug("collage.Board: dropped image did not decode", "err", err)
			return
		}
		bd.AsyncLock()
		bd.Composer.Place(img)
		bd.NeedsRender()
		bd.AsyncUnlock()
	}()
}

// surfacePos translates an event position into surface coordinates.
func (bd *Board) surfacePos(pt image.Point) math32.Vector2 {
	p := math32.Vector2FromPoint(bd.PointToRelPos(pt))
	sz := math32.Vector2FromPoint(bd.Geom.ContentBBox.Size())
	if sz.X == 0 || sz.Y == 0 {
		return p
	}
	return p.Div(sz).Mul(bd.Composer.Size)
}
