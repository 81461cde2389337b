package resource

// Package resource owns the on-disk hats installation: one-time extraction of
// the bundled hats package, recursive discovery of definition files, in-place
// migration of legacy files, the hat registry and the selection string codec
// used to hand a chosen hat and its accessories to the rest of the game.
//
// A Handler is constructed once and passed to every caller. Only Init is safe
// for concurrent use; scanning, registry access and selection decoding expect a
// single writer.
