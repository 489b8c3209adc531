// Package schemas holds the JSON Schema documents for catalog, profile and roadmap files.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names
const (
	Catalog = "catalog.schema.json"
	Profile = "profile.schema.json"
	Roadmap = "roadmap.schema.json"
)
