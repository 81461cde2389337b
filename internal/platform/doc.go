package platform

// Package platform contains filesystem helpers shared by the resource handler
// and the definition codec: directory creation, size probes, archive path
// sanitising and atomic file replacement.
