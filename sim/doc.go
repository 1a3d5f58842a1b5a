// Package sim provides the core of the sortsim sorting visualizer.
//
// # Reading Guide
//
// Start with these files to understand a session end to end:
//   - visualizer.go: bar generation, shuffling and sorting for one session
//   - config.go: VisualizerConfig, its defaults and strict YAML loading
//   - rng.go: PartitionedRNG, the per-subsystem deterministic randomness
//
// # Architecture
//
// The sim package wires sub-packages together; the pieces live in:
//   - sim/trace/: Step and Trace, the recorded history of one sort run
//   - sim/shuffle/: Fisher–Yates shuffle plans and array primitives
//   - sim/sorting/: the five instrumented algorithms and their registry
//   - sim/player/: Sequencer and the ticker-driven Play loop
//   - sim/render/: colours, tone mapping, terminal bars and markdown
//
// Data flows one way: an algorithm records a Trace, the Sequencer turns it
// into Frames, and a renderer draws them. Nothing downstream mutates a Trace.
package sim
