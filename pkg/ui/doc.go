// Package ui implements the Ember immediate-mode runtime core.
//
// Application code redeclares its interface every frame through
// stateless widget calls on a Context; only interaction state (focus,
// drags, carets, scroll offsets, undo history) persists between frames.
// There is no retained scene tree: containers accumulate child extents
// on a stack while the frame runs and are gone by EndFrame.
//
// # Frame protocol
//
// A host loop drives one Context per UI surface:
//
//	snap := collector.Snapshot()
//	ctx.BeginFrame(snap, delta)
//	ctx.BeginColumn(ui.ContainerOptions{Gap: 8})
//	if ctx.Button("save", "Save", ui.ButtonOptions{}) {
//	    // clicked this frame
//	}
//	ctx.SliderH("volume", &volume, 0, 1, 0, ui.SliderOptions{})
//	ctx.EndColumn()
//	ctx.EndFrame()
//
// Call order is z-order: within a layer, a widget issued later draws on
// top of and wins input over one issued earlier. Widgets that may be
// covered by overlays carry an explicit Layer; the input arbiter
// resolves each pointer press to exactly one winner per frame by
// (layer, call order).
//
// # Pointer capture
//
// Widgets register press intents during the frame; the Context resolves
// them once at EndFrame and dispatches deferred outcomes (press-mode
// clicks, slider track jumps) on the following frame. A widget that
// accepted a press stays the active widget until the button is
// released, and no other widget can begin a capture while that drag is
// in progress.
//
// All calls are single-threaded and frame-synchronous. BeginFrame and
// EndFrame are the only synchronization points; no widget call blocks.
package ui
