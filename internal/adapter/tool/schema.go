package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"task-agent/internal/domain/entity"
)

// argValidator checks tool arguments against the tool's own Parameters()
// schema before they are unmarshalled. Compilation happens once per tool.
type argValidator struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

func (v *argValidator) validate(params map[string]interface{}, arguments string) error {
	v.once.Do(func() {
		v.schema, v.err = compileSchema(params)
	})
	if v.err != nil {
		return fmt.Errorf("compile argument schema: %w", v.err)
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(arguments))
	if err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}

	if err := v.schema.Validate(inst); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func compileSchema(params map[string]interface{}) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tool.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("tool.json")
}

// requireTurn extracts the turn identity. A missing tenant is a terminal,
// user-visible condition, not a retryable one.
func requireTurn(ctx context.Context) (entity.TurnContext, error) {
	turn, ok := entity.TurnFromContext(ctx)
	if !ok || turn.TenantID == "" {
		return entity.TurnContext{}, errors.New("missing tenant context; cannot access tasks without a signed-in tenant")
	}
	return turn, nil
}
