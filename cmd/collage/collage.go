// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command collage runs a demo of the collage image compositing board.
package main

import (
	"cogentcore.org/collage"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
)

func main() {
	b := core.NewBody("Cogent Collage")
	bd := collage.NewBoard(b)
	b.AddTopBar(func(bar core.Widget) {
		tb := core.NewToolbar(bar)
		core.NewFuncButton(tb).SetFunc(bd.OpenFile).SetText("Open").SetIcon(icons.Open)
		sw := core.NewSwitch(tb).SetText("Editing").SetChecked(true)
		sw.OnChange(func(e events.Event) {
			bd.SetEditing(sw.IsChecked())
		})
	})
	b.RunMainWindow()
}
