// Package config locates, reads, and decodes the ember configuration file.
//
// # Overview
//
// Ember reads a single YAML file at startup to determine rendering
// parameters: display DPI, font family/style/size, per-glyph spacing
// offsets, and a diagnostic render-timer flag. This package owns the whole
// of that subsystem: file discovery, decoding, layered defaults, and the
// error taxonomy. The rendering and windowing layers only ever see a fully
// populated Config value.
//
// # Configuration Discovery
//
// Load probes a fixed list of candidate paths, first existing file wins:
//
//  1. $HOME/.config/ember.yml
//  2. $HOME/.ember.yml (dotfile form for minimal setups)
//
// The dotfile fallback is consulted only when the primary path is missing.
// If the primary path exists but fails for any other reason (permissions,
// I/O, malformed YAML) that failure is returned directly: the primary file
// is the authoritative source, and a broken one must never be silently
// shadowed by a stale fallback.
//
// # Default Values
//
// Each section of the file defaults independently when wholly absent:
//
//   - dpi: 96.0 x 96.0
//   - font: a per-platform bundle (Menlo Regular 11pt on macOS,
//     DejaVu Sans Mono Book 11pt with spacing compensation elsewhere)
//   - render_timer: false
//
// A section that IS present decodes strictly: every field of a present
// font, offset, or dpi section is required, and a missing one is a
// SchemaError rather than a partial default. The platform font bundle is
// selected at build time via build tags.
//
// # YAML Format
//
// Example ember.yml:
//
//	dpi:
//	  x: 96.0
//	  y: 96.0
//	font:
//	  family: Iosevka
//	  style: Medium
//	  size: 12.5
//	  offset:
//	    x: 0.0
//	    y: -1.0
//	render_timer: false
//
// # Error Handling
//
// Load and LoadFrom report exactly one of four mutually exclusive kinds:
//
//   - ErrNotFound: no candidate file exists (sentinel, no cause)
//   - *EnvError: the home directory could not be resolved
//   - *IOError: a filesystem failure other than a missing file
//   - *SchemaError: the file was read but its content is invalid
//
// The wrapped kinds implement Unwrap, so errors.Is and errors.As see the
// root cause and diagnostic output keeps its provenance.
//
// # Concurrency
//
// Everything here is synchronous and blocking. Load is intended to run
// once during startup; the returned Config is immutable and safe to hand
// to the rest of the application without locking.
package config
