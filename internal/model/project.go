package model

// Part is a single geometric part of a project. Only the fields the hats
// subsystem touches are decoded; the rest of the part stays in Project.Doc.
type Part struct {
	Identifier string
	Name       string

	// Rotation point (pivot) offsets
	RotPX float64
	RotPY float64
	RotPZ float64

	// Path is the gjson/sjson path of this part inside Project.Doc,
	// e.g. "parts.0.children.2"
	Path string

	Children []*Part
}

// File is an archive member carried alongside the model document (textures etc.)
type File struct {
	Name string
	Data []byte
}

// Project is the parsed representation of one definition file
type Project struct {
	Name    string
	Author  string
	Version int
	Notes   []string
	Parts   []*Part

	Tampered bool // stored hash did not match the part payload
	Legacy   bool // written by an old format revision, needs migration
	Dirty    bool // pending rewrite of the backing file

	// Doc is the raw model document, kept so unknown content survives a rewrite
	Doc []byte

	// Files are the other archive members, in archive order
	Files []File
}

// AllParts returns every part of the project, children included, depth-first
func (p *Project) AllParts() []*Part {
	var all []*Part
	var walk func(parts []*Part)
	walk = func(parts []*Part) {
		for _, part := range parts {
			all = append(all, part)
			walk(part.Children)
		}
	}
	walk(p.Parts)
	return all
}
