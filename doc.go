// Package spanviz grows minimum spanning trees over point sets one edge at a
// time, so the construction can be watched, paused and replayed.
//
// 🚀 What is spanviz?
//
//	An incremental MST engine over the complete Euclidean graph, plus the
//	pieces around it:
//		• core/         — Node, Edge, Segment and the complete Graph snapshot
//		• unionfind/    — linear-scan disjoint sets with a component count
//		• prim_kruskal/ — Prim (lazy-deletion heap) and Kruskal (stable sort) steppers
//		• controller/   — Idle / Running / Done state machine owning one run
//		• builder/      — deterministic point sets: random, grid, circle, noise
//		• render/       — SVG and ASCII renderers over controller snapshots
//		• config/       — flags, SPANVIZ_* env and YAML via viper
//		• telemetry/    — slog loggers and OpenTelemetry tracing
//		• tui/          — the bubbletea visualizer
//		• cmd/spanviz   — `run`, `solve` and `version`
//
// Quick example (the right triangle (0,0), (10,0), (10,10)):
//
//	    2
//	    │
//	0───1
//
// Kruskal accepts 0-1 and 1-2 (both weight 10) and rejects the √200 diagonal.
//
//	go install github.com/katalvlaran/spanviz/cmd/spanviz@latest
package spanviz
