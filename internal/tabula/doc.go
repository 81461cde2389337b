package tabula

// Package tabula reads and writes hat definition files. A definition file is a
// zip archive holding a JSON model document plus opaque members such as
// textures. Only header fields and part rotations are decoded; saving patches
// those fields back into the original document so the rest of the geometry
// payload is preserved.
