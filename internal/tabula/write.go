package tabula

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hatsmod/hats/internal/model"
	"github.com/hatsmod/hats/internal/platform"
)

// emptyDocument seeds Marshal for projects that were not parsed from a file
var emptyDocument = []byte(`{"parts":[]}`)

// Save encodes the project and atomically replaces the file at path
func Save(path string, project *model.Project) error {
	data, err := Encode(project)
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Encode returns the archive bytes for the project
func Encode(project *model.Project) ([]byte, error) {
	doc, err := Marshal(project)
	if err != nil {
		return nil, err
	}
	return Build(doc, project.Files)
}

// Marshal writes the project's fields back into its document and stamps a
// fresh integrity hash. Content it does not model is left byte-for-byte.
func Marshal(project *model.Project) ([]byte, error) {
	doc := project.Doc
	if len(doc) == 0 {
		doc = emptyDocument
	}
	doc = append([]byte(nil), doc...)

	notes := project.Notes
	if notes == nil {
		notes = []string{}
	}

	var err error
	fields := []struct {
		path  string
		value any
	}{
		{KeyName, project.Name},
		{KeyAuthor, project.Author},
		{KeyVersion, project.Version},
		{KeyNotes, notes},
	}
	for _, field := range fields {
		if doc, err = sjson.SetBytes(doc, field.path, field.value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", field.path, err)
		}
	}

	for _, part := range project.AllParts() {
		if part.Path == "" {
			return nil, fmt.Errorf("part %q has no document path", part.Name)
		}
		rotations := []struct {
			key   string
			value float64
		}{
			{KeyRotPX, part.RotPX},
			{KeyRotPY, part.RotPY},
			{KeyRotPZ, part.RotPZ},
		}
		for _, rot := range rotations {
			path := part.Path + "." + rot.key
			// Unchanged values keep their original encoding, absent keys stay absent
			if gjson.GetBytes(doc, path).Float() == rot.value {
				continue
			}
			if doc, err = sjson.SetBytes(doc, path, rot.value); err != nil {
				return nil, fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}

	parts := gjson.GetBytes(doc, KeyParts)
	if doc, err = sjson.SetBytes(doc, KeyHash, Checksum(parts.Raw)); err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", KeyHash, err)
	}
	return doc, nil
}

// Build packs a model document and extra members into definition archive bytes
func Build(doc []byte, files []model.File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	members := append([]model.File{{Name: ModelEntry, Data: doc}}, files...)
	for _, member := range members {
		w, err := zw.Create(member.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", member.Name, err)
		}
		if _, err := w.Write(member.Data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", member.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}
	return buf.Bytes(), nil
}
