// Package sorting holds the stepwise sorting engines.
//
// Each algorithm is a resumable state machine over a shared Store: one call to
// Advance performs a single unit of work (a comparison, a swap, a merge write,
// a recoloring pass or a phase transition) and returns. All loop and recursion
// state lives in a per-engine run context, so a host can tick an engine at any
// rate, pause it between ticks, or drop it mid-run.
//
// Engines never block and never sort more than one step per Advance. Visual
// state is emitted as Category updates to a Sink; the package has no
// dependency on any rendering technology.
package sorting
