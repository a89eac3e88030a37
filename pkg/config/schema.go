package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the config file, indented.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "toml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "nvim2idea Configuration"
	schema.Description = "Schema for ~/.config/nvim2idea/config.toml."

	// Every key is optional; unset keys fall back to the defaults.
	schema.Required = nil

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
