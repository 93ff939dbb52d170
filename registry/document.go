package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danny0094/mcp-bridge-stack/models"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"k8s.io/apimachinery/pkg/util/sets"
)

const documentSchemaJSON = `{
	"type": "object",
	"properties": {
		"autoReload": {"type": "boolean"},
		"servers": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "url"],
				"properties": {
					"id": {"type": "string", "minLength": 1, "pattern": "^[^/]+$"},
					"url": {"type": "string", "pattern": "^https?://"},
					"enabled": {"type": "boolean"}
				}
			}
		}
	}
}`

var documentSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("registry schema: %s", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("registry.schema.json", doc); err != nil {
		panic(fmt.Sprintf("registry schema: %s", err))
	}
	schema, err := c.Compile("registry.schema.json")
	if err != nil {
		panic(fmt.Sprintf("registry schema: %s", err))
	}
	return schema
}

// ParseDocument validates raw registry bytes and decodes them.
func ParseDocument(data []byte) (*models.RegistryDocument, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}
	if err := documentSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	doc := &models.RegistryDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	seen := sets.New[string]()
	for _, entry := range doc.Servers {
		if seen.Has(entry.ID) {
			return nil, fmt.Errorf("duplicate server id %q", entry.ID)
		}
		seen.Insert(entry.ID)
	}
	return doc, nil
}
