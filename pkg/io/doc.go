// Package io provides import and export for tour instances and solutions.
//
// # Overview
//
// This package serializes problem instances (city sets) and solver output
// (solutions) to simple on-disk formats. The formats are designed for:
//
//   - Hand-written instances: small city lists in JSON or TOML
//   - Tool integration: external generators that produce instance files
//   - Re-plotting: solutions embed their cities so artifacts can be rendered
//     without the original instance file
//
// # Instance Format
//
// Instances are JSON or TOML documents with a required "cities" array:
//
//	{
//	  "cities": [
//	    {"name": "a", "x": 0, "y": 0},
//	    {"name": "b", "x": 1, "y": 0}
//	  ]
//	}
//
// The same structure in TOML:
//
//	[[cities]]
//	name = "a"
//	x = 0.0
//	y = 0.0
//
// Each city has an optional name (used as the display label) and required
// finite x/y coordinates. An instance must contain at least two cities.
//
// # Solution Format
//
// Solutions are JSON documents carrying the visiting order, tour statistics,
// and a copy of the cities:
//
//	{
//	  "cities": [...],
//	  "tour": [0, 2, 1, 3],
//	  "length": 4.0,
//	  "initial_length": 5.65,
//	  "iterations": 100000,
//	  "seed": 42,
//	  "stop": "max_iterations"
//	}
//
// # Import and Export
//
// [ImportInstance] and [ExportInstance] select the codec from the file
// extension (.json or .toml). [ReadJSON], [ReadTOML], and the corresponding
// writers operate on io.Reader/io.Writer for streaming use. All importers
// validate their input: malformed documents, non-finite coordinates, and
// tours that are not permutations are rejected with a descriptive error.
package io
