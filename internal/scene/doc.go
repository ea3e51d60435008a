// Package scene assembles the particle field, proximity graph and ornament
// into one renderable scene and runs the per-frame update.
//
// Each tick runs in a fixed order:
//
//  1. the pointer offset is turned into a rotation target
//  2. the ornament drifts, eases toward the target and bobs about its base
//  3. the field rotation advances
//  4. edges are rebuilt from the field's local coordinates and the line set
//     copies the field rotation
//  5. the host renders the resulting [Frame]
//
// Pointer and resize notifications only write the tick [Context]; hosts deliver
// them between ticks, so the update reads a stable snapshot.
//
// # Example
//
//	sc, _ := scene.New(config.DefaultConfig())
//	sched := loop.New(loop.NewMonotonicClock())
//	err := scene.Run(ctx, sc, renderer, sched, frames)
package scene
