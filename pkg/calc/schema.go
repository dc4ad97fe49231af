package calc

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of Request, used as the calculator tool's input schema.
func Schema() (json.RawMessage, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	schema := reflector.Reflect(&Request{})
	schema.Version = ""

	buf, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal calculator schema: %w", err)
	}

	return buf, nil
}
