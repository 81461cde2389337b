package resource

import "errors"

var (
	// ErrInitialization means the installation directory could not be prepared
	// or the bundled package could not be extracted. The subsystem is unusable.
	ErrInitialization = errors.New("hats resources initialization failed")

	// ErrParse means a single definition file could not be read or decoded
	ErrParse = errors.New("hat definition parse failed")

	// ErrMigrationRewrite means a legacy file was migrated in memory but the
	// rewritten file could not be persisted, so it was not registered
	ErrMigrationRewrite = errors.New("hat definition migration rewrite failed")
)
