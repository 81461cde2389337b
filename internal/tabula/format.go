package tabula

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Extension is the file extension of a definition file
const Extension = ".tbl"

// ModelEntry is the archive member holding the model document
const ModelEntry = "model.json"

// CurrentVersion is the document revision written by Save. Anything older
// uses the legacy pivot convention and gets migrated on load.
const CurrentVersion = 5

// Document keys
const (
	KeyName     = "projName"
	KeyAuthor   = "authorName"
	KeyVersion  = "projVersion"
	KeyNotes    = "notes"
	KeyHash     = "hash"
	KeyParts    = "parts"
	KeyChildren = "children"

	KeyIdentifier = "identifier"
	KeyPartName   = "name"
	KeyRotPX      = "rotPX"
	KeyRotPY      = "rotPY"
	KeyRotPZ      = "rotPZ"
)

// ErrMalformed is returned for files that cannot be decoded into a project
var ErrMalformed = errors.New("malformed definition file")

// Checksum returns the integrity hash stored for a raw parts value
func Checksum(rawParts string) string {
	sum := sha256.Sum256([]byte(rawParts))
	return hex.EncodeToString(sum[:])
}
