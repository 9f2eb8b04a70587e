package assets

// Template names shared by every loader. Files are stored as {name}.html.
const (
	RecipeTemplateName = "recipe"
	IndexTemplateName  = "index"
)

// TemplateLoader defines the contract for loading HTML templates.
type TemplateLoader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
