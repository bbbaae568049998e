// Package dragbubble is a drag-to-dismiss notification bubble for [Ebitengine].
//
// A bubble rests on an anchor. When the user drags it away, a viscous "goo"
// connector joins the bubble to its anchor and thins as the distance grows.
// Past a threshold the connector snaps. Released near the anchor, the bubble
// springs back with a wobble; released far away, it explodes into a short
// sprite sequence.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	b, err := dragbubble.New(dragbubble.Config{Radius: 12, Text: "99+"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	b.SetListener(dragbubble.Listener{
//		OnDismiss: func() { log.Println("dismissed") },
//	})
//	dragbubble.Run(dragbubble.NewGame(b), dragbubble.RunConfig{
//		Title: "Bubble", Width: 320, Height: 320,
//	})
//
// For full control, drive the bubble from your own [ebiten.Game]:
//
//	func (g *MyGame) Update() error {
//		g.pointer.Update()   // or call b.Press/Move/Release yourself
//		g.bubble.Update(1.0 / 60)
//		return nil
//	}
//
//	func (g *MyGame) Draw(screen *ebiten.Image) {
//		g.surface.SetTarget(screen)
//		g.bubble.Draw(g.surface)
//	}
//
// # States
//
// [StateDefault] is idle. A press near the anchor enters [StateDrag], where
// the connector is visible. Dragging past 3/4 of [Config.MaxDistance] enters
// [StateMove]. Releasing in StateDrag, or in StateMove within two radii of
// the anchor, restores the bubble; otherwise it enters [StateDismiss] and
// stays there until [Bubble.Reinitialize] or [Bubble.Resize].
//
// # Rendering
//
// [Bubble.Draw] paints through the [Surface] interface. [EbitenSurface]
// draws onto an ebiten.Image; [RasterSurface] draws into an in-memory image
// with [gg] and needs no graphics driver.
//
// # Animation
//
// Restore and explosion are [Tween] values over [gween], advanced by
// [Bubble.Update] with elapsed seconds. Starting one cancels any in-flight
// tween of the same kind.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [gg]: https://github.com/fogleman/gg
package dragbubble
