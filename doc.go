// Package fcn is a field-coupled nanocomputing (FCN) physical-design
// automation toolkit: clocked-grid modeling, obstruction-aware path
// finding, edge-intersection-graph coloring for conflict-free routing,
// network hierarchy analysis, and an exact dimension-incrementing
// placement & routing engine.
//
// Subpackages, roughly in dependency order:
//
//	fcnerr/      — sentinel errors and exit codes shared across the module
//	coord/       — coordinates, bounding boxes, grid topologies
//	clocking/    — clock-phase schemes and the data-flow adjacency they induce
//	obstruction/ — coordinate/connection blocking overlays
//	pathfinding/ — A*, Jump Point Search, exhaustive enumeration, Yen's K-shortest
//	routing/     — routing objectives and paths
//	layout/      — the shared gate-level tile grid produced by routing/placement
//	epg/         — edge-intersection graph construction from routed paths
//	coloring/    — heuristic and exact (SAT) graph coloring engines
//	colorroute/  — color-routing orchestration over epg + coloring + layout
//	network/     — logic-network contract and hierarchy (levelization)
//	exact/       — incremental placement & routing search over candidate dimensions
//	fgl/         — the FGL layout file format (read/write)
package fcn
