package cache

// Keyer builds cache keys for each kind of cached value.
type Keyer interface {
	// ArtifactKey identifies one rendering of a document.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
	// SheetKey identifies the figure imported from one spreadsheet revision.
	SheetKey(fileHash, sheet string) string
}

// ArtifactKeyOpts holds every option that changes rendered bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
	Width  uint    `json:"width,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// SheetKey returns "sheet:<hash>".
func (DefaultKeyer) SheetKey(fileHash, sheet string) string {
	return hashKey("sheet", fileHash, sheet)
}
