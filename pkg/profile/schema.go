package profile

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema for profile files. Field names follow the
// yaml tags, which match the TOML and JSON names.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&Profile{})
	schema.Title = "Minecraft Keybinding Profile"
	schema.Description = "A speedrunner's keybindings, remaps, mouse settings and search-craft sequences."
	schema.Required = []string{"player"}
	return schema
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
