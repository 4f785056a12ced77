// Package schemas holds the JSON Schemas of the documents smarthire reads and writes.
package schemas

import _ "embed"

// Candidates is the schema of the raw candidate dataset.
//
//go:embed candidates.schema.json
var Candidates string

// TeamExport is the schema of a JSON team export.
//
//go:embed team_export.schema.json
var TeamExport string
