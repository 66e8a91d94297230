// Package pkg provides the libraries behind squaremap, a squarified treemap
// engine.
//
// # Overview
//
// Squaremap partitions a rectangular canvas into tiles whose areas are
// proportional to item weights while keeping every tile close to square.
// The pkg directory is organized into these areas:
//
//  1. [treemap] - The layout engine (normalization, partitioning, colours, labels)
//  2. [dataset] - Item and layout documents (JSON, TOML, YAML)
//  3. [render] - Styles and output sinks (SVG, PNG, PDF, JSON, terminal)
//  4. [pipeline] - Orchestration (items → layout → artifacts) with caching
//  5. [cache] - File, Redis and null caches for layouts and artifacts
//  6. [store] - Persistent layouts for the HTTP API (memory, file, MongoDB)
//  7. [server] - The HTTP API
//
// # Architecture
//
// The typical data flow:
//
//	items.json / .toml / .yaml
//	         ↓
//	    [dataset] package (decode + prepare)
//	         ↓
//	    [treemap] package (normalize + partition)
//	         ↓
//	    [render] package (styles + sinks)
//	         ↓
//	    SVG/PNG/PDF/JSON/text output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/squaremap/pkg/render/sink"
//	    "github.com/matzehuels/squaremap/pkg/treemap"
//	)
//
//	items := []treemap.Item{
//	    {Text: "golang", Weight: 1200},
//	    {Text: "rust", Weight: 800},
//	}
//	l := treemap.Build(items, 1200, 800)
//	svg := sink.RenderSVG(l)
//
// For caching and multi-format output use [pipeline.Runner].
//
// # Supporting Packages
//
// [errors] carries coded errors and input validation, [observability]
// the hook registries for logging and metrics, [fonts] the embedded label
// font and [buildinfo] the version stamped at build time.
//
// [treemap]: github.com/matzehuels/squaremap/pkg/treemap
// [dataset]: github.com/matzehuels/squaremap/pkg/dataset
// [render]: github.com/matzehuels/squaremap/pkg/render
// [pipeline]: github.com/matzehuels/squaremap/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/squaremap/pkg/pipeline#Runner
// [cache]: github.com/matzehuels/squaremap/pkg/cache
// [store]: github.com/matzehuels/squaremap/pkg/store
// [server]: github.com/matzehuels/squaremap/pkg/server
// [errors]: github.com/matzehuels/squaremap/pkg/errors
// [observability]: github.com/matzehuels/squaremap/pkg/observability
// [fonts]: github.com/matzehuels/squaremap/pkg/fonts
// [buildinfo]: github.com/matzehuels/squaremap/pkg/buildinfo
package pkg
