// Package knot is an animated-curve screensaver for [Ebitengine].
//
// Control points placed with the mouse drift around a bounded viewport,
// bouncing off its edges, and a smooth closed curve is rebuilt through them
// every tick.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the game loop:
//
//	saver, err := knot.NewSaver(knot.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := knot.Run(saver); err != nil {
//		log.Fatal(err)
//	}
//
// [Saver] implements [ebiten.Game], so it can also be handed to
// ebiten.RunGame directly.
//
// # Curves
//
// The engine has no dependency on the renderer. A [Curve] owns its control
// points and their velocities ([ControlPoints]) and derives a dense sequence
// of smoothed samples from them ([Curve.Smoothed]). The points are treated
// as a ring: each control point contributes one window made of the midpoint
// to its predecessor, the point itself and the midpoint to its successor,
// and each window is sampled [Curve.Resolution] times with [Blend].
//
// Control points only change through Curve methods, each of which rebuilds
// the samples. [Curve.UndoDelete] restores the most recently deleted point.
//
// [Curve.Advance] moves every point by its velocity and reflects the
// velocity when a point leaves the viewport. Positions are not clamped.
//
// A [CurveSet] holds a fixed number of curves, created on first use, and
// tracks the active one. [CurveSet.Next] wraps around, [CurveSet.Previous]
// stops at the first curve. [CurveSet.RecalcAll] advances all of them.
//
// # Controls
//
//	Left click     add a control point to the active curve
//	Right click    delete the nearest control point within 5 px
//	F1             help overlay
//	R              restart (clear every curve)
//	P              pause / play
//	Num+ / Num-    more / fewer samples per window
//	Left / Right   previous / next curve
//	Up / Down      faster / slower
//	C              control polygon
//	U              undo the last delete
//	Esc            quit
//
// # Automation
//
// [Saver.InjectClick] and [Saver.InjectAction] queue synthetic input, a
// [TestRunner] plays a JSON script of such input, and [Saver.Screenshot]
// writes the next frame to a PNG file. An [EventSink] receives every change
// made through input; package knot/ecs publishes them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package knot
