// Package assets provides the HTML page templates used to publish recipes.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates compiled into the binary
//	    ├── FilesystemLoader  - templates from a directory on disk
//	    └── Resolver          - picks one of the two from a configured directory
//
// A Resolver configured with a directory reads templates only from that
// directory: a missing template there is an error, never a silent switch to
// the built-in copy. With no directory configured the embedded templates are
// used.
//
// # Directory Structure
//
//	{templateDir}/
//	├── recipe.html   # one recipe page: {{.title}}, {{.body}}
//	└── index.html    # site index: {{.body}}
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within its base directory.
package assets
