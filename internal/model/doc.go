package model

// Package model defines the data structures shared across the hats subsystem:
// parsed definition projects with their parts, and registry entries pairing a
// project with the accessory selection state the UI edits.
