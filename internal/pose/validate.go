package pose

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError reports a structural problem with a request or response
// payload: a missing field, a wrong primitive type, or a body that is not
// JSON at all.
type ValidationError struct {
	// Field is the JSON pointer-ish path of the offending field, or ""
	// when the body itself could not be decoded.
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid payload: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidateRequest decodes and structurally validates an AnalysisRequest body.
func ValidateRequest(raw []byte) (*AnalysisRequest, error) {
	if err := validate("analysis-request", RequestSchema, raw); err != nil {
		return nil, err
	}
	var req AnalysisRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return &req, nil
}

// ValidateResponse decodes and structurally validates an AnalysisResponse.
// It is applied symmetrically on the way out: a result missing a required
// field never leaves the process.
func ValidateResponse(raw []byte) (*AnalysisResponse, error) {
	if err := validate("analysis-response", ResponseSchema, raw); err != nil {
		return nil, err
	}
	var resp AnalysisResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return &resp, nil
}

// validate checks raw JSON against the named schema definition.
func validate(name string, definition map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema(name, definition)
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("compile schema %q: %w", name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ValidationError{
			Field: offendingField(err),
			Err:   err,
		}
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

// offendingField walks to the deepest validation cause and returns its
// instance location as a /-joined path.
func offendingField(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return ""
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if len(ve.InstanceLocation) == 0 {
		return ""
	}
	return "/" + strings.Join(ve.InstanceLocation, "/")
}
