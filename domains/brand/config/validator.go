package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/tenant_document.json
var tenantDocumentSchema string

// Validator checks raw tenant documents against the authoring schema. It is
// an opt-in, authoring-time tool (CI checks, the preview server); the
// normalization path never runs it and stays permissive.
type Validator struct {
	compiled *jsonschema.Schema
}

// NewValidator compiles the embedded tenant document schema once.
func NewValidator() (*Validator, error) {
	compiled, err := jsonschema.CompileString("tenant_document.json", tenantDocumentSchema)
	if err != nil {
		return nil, fmt.Errorf("compile tenant document schema: %w", err)
	}
	return &Validator{compiled: compiled}, nil
}

// Validate ensures the raw JSON document matches the authoring schema.
func (v *Validator) Validate(payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is required for validation")
	}

	var document any
	if err := json.Unmarshal(payload, &document); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	if err := v.compiled.Validate(document); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	return nil
}
