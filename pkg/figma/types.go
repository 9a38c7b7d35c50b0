package figma

// File represents a complete design document as the design tool returns it.
// It contains the file metadata, the document tree, and the styles and components
// the tree refers to.
type File struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Version      string `json:"version"`
	// Document is the root node, normally of variant DocumentNode.
	Document      Node                 `json:"document"`
	Styles        map[string]Style     `json:"styles,omitzero"`
	Components    map[string]Component `json:"components,omitzero"`
	SchemaVersion int                  `json:"schemaVersion,omitempty" default:"0"`
}

// UnmarshalJSON decodes strictly, see Unmarshal.
func (f *File) UnmarshalJSON(data []byte) error {
	return Unmarshal(data, f)
}

// Component represents a reusable component definition with its metadata.
type Component struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty" default:""`
	ComponentSetID string `json:"componentSetId,omitempty"`
	// Remote is true for components published from another file.
	Remote bool `json:"remote,omitempty" default:"false"`
}

// Style represents a shared style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty" default:""`
	StyleType   StyleType `json:"styleType"`
	Remote      bool      `json:"remote,omitempty" default:"false"`
}
