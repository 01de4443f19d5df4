package ead

// File holds the fields a file-level component contributes itself.
type File struct {
	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	UnitIDs []UnitID `json:"unitid,omitempty" yaml:"unitid,omitempty"`

	// ID is the canonical inventory number. Records without one are
	// dropped at tabulation.
	ID             string `json:"id,omitempty" yaml:"id,omitempty"`
	Handle         string `json:"handle,omitempty" yaml:"handle,omitempty"`
	Identifier     string `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	IdentifierText string `json:"identifier_text,omitempty" yaml:"identifier_text,omitempty"`
	ExtraID        string `json:"extra_id,omitempty" yaml:"extra_id,omitempty"`

	UnitDate *UnitDate         `json:"unitdate,omitempty" yaml:"unitdate,omitempty"`
	PhysDesc *PhysDesc         `json:"physdesc,omitempty" yaml:"physdesc,omitempty"`
	DAOs     []DAO             `json:"dao,omitempty" yaml:"dao,omitempty"`
	Access   map[string]string `json:"access,omitempty" yaml:"access,omitempty"`

	// Level is the level attribute of a nested c, recorded but not expanded.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
}

// ManifestRef returns the href of the first METS dao, if any.
func (f File) ManifestRef() string {
	for _, dao := range f.DAOs {
		if href, ok := dao.ManifestRef(); ok {
			return href
		}
	}
	return ""
}

// FileRecord is one file-level component with its inherited context.
type FileRecord struct {
	Context `yaml:",inline"`
	File File `json:"file" yaml:"file"`
}

// HasID reports whether the record carries a canonical inventory number.
func (r FileRecord) HasID() bool {
	return r.File.ID != ""
}
