// Package pkg provides the core libraries for Roundtrip tour optimization.
//
// # Overview
//
// Roundtrip finds short round trips through sets of 2D cities using simulated
// annealing. The pkg directory is organized into a handful of focused areas:
//
//  1. [tsp] - Domain logic (instances, tours, annealing, schedules)
//  2. [io] - Instance and solution file formats (JSON, TOML)
//  3. [render] - Tour artwork (SVG plots, Graphviz DOT/PNG)
//  4. [cache] - Result caching (file, Redis, keys, TTL policy)
//  5. [pipeline] - Orchestration (load → solve → render)
//
// # Architecture
//
// The typical data flow through Roundtrip:
//
//	Instance file or generated layout
//	         ↓
//	[io] / [tsp] — load and validate cities
//	         ↓
//	[tsp] — anneal a tour (cached via [cache])
//	         ↓
//	[render] — SVG / PNG / DOT artifacts (cached via [cache])
//
// The [pipeline] package ties the stages together behind a single Runner so
// the CLI and library callers share identical caching and validation.
//
// Supporting packages: [errors] defines coded errors surfaced at program
// boundaries, and [buildinfo] carries version metadata injected at link time.
package pkg
