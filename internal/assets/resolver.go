package assets

// Resolver selects the template source for a build: a custom directory when
// one is configured, the embedded templates otherwise.
type Resolver struct {
	custom   *FilesystemLoader // nil if no directory configured
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver.
// If dir is empty, only embedded templates are used.
// Returns ErrInvalidBasePath if dir is set but is not a readable directory.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if dir != "" {
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// LoadTemplate loads a template from the configured source.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom != nil {
		return r.custom.LoadTemplate(name)
	}
	return r.embedded.LoadTemplate(name)
}

// HasCustomLoader returns true if a template directory is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
