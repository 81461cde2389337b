package tabula

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/hatsmod/hats/internal/model"
)

// ReadFile reads and parses the definition file at path
func ReadFile(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes definition archive bytes into a project
func Parse(data []byte) (*model.Project, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not an archive: %v", ErrMalformed, err)
	}

	var doc []byte
	var files []model.File
	found := false
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		content, err := readMember(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, f.Name, err)
		}
		if f.Name == ModelEntry && !found {
			doc = content
			found = true
			continue
		}
		files = append(files, model.File{Name: f.Name, Data: content})
	}
	if !found {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformed, ModelEntry)
	}

	return ParseDocument(doc, files)
}

// ParseDocument decodes a model document. files are carried on the project untouched.
func ParseDocument(doc []byte, files []model.File) (*model.Project, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("%w: invalid JSON document", ErrMalformed)
	}
	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformed)
	}

	partsResult := root.Get(KeyParts)
	if !partsResult.IsArray() {
		return nil, fmt.Errorf("%w: %s is not an array", ErrMalformed, KeyParts)
	}
	parts, err := readParts(partsResult, KeyParts)
	if err != nil {
		return nil, err
	}

	version := root.Get(KeyVersion)
	project := &model.Project{
		Name:    root.Get(KeyName).String(),
		Author:  root.Get(KeyAuthor).String(),
		Version: int(version.Int()),
		Notes:   make([]string, 0),
		Parts:   parts,
		Doc:     doc,
		Files:   files,
	}
	for _, note := range root.Get(KeyNotes).Array() {
		project.Notes = append(project.Notes, note.String())
	}

	project.Legacy = !version.Exists() || project.Version < CurrentVersion

	if hash := root.Get(KeyHash); hash.Exists() {
		project.Tampered = hash.String() != Checksum(partsResult.Raw)
	}

	return project, nil
}

func readParts(list gjson.Result, path string) ([]*model.Part, error) {
	items := list.Array()
	parts := make([]*model.Part, 0, len(items))
	for i, item := range items {
		partPath := path + "." + strconv.Itoa(i)
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: %s is not an object", ErrMalformed, partPath)
		}

		part := &model.Part{
			Identifier: item.Get(KeyIdentifier).String(),
			Name:       item.Get(KeyPartName).String(),
			RotPX:      item.Get(KeyRotPX).Float(),
			RotPY:      item.Get(KeyRotPY).Float(),
			RotPZ:      item.Get(KeyRotPZ).Float(),
			Path:       partPath,
		}

		// Null children are written by some exporters for leaf parts
		if children := item.Get(KeyChildren); children.Exists() && children.Type != gjson.Null {
			if !children.IsArray() {
				return nil, fmt.Errorf("%w: %s.%s is not an array", ErrMalformed, partPath, KeyChildren)
			}
			childParts, err := readParts(children, partPath+"."+KeyChildren)
			if err != nil {
				return nil, err
			}
			part.Children = childParts
		}

		parts = append(parts, part)
	}
	return parts, nil
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
