// Package schema validates the .reactdoctor.yaml project configuration
// against an embedded CUE schema.
package schema

import (
	"embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/config.cue
var schemaFS embed.FS

// Validator handles CUE validation of configuration documents.
type Validator struct {
	ctx    *cue.Context
	config cue.Value
}

// NewValidator compiles the embedded schema and returns a ready Validator.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/config.cue")
	if err != nil {
		return nil, fmt.Errorf("could not read embedded schema: %w", err)
	}

	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("config.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("could not compile config schema: %w", err)
	}

	def := inst.LookupPath(cue.ParsePath("#Config"))
	if !def.Exists() {
		return nil, fmt.Errorf("config schema missing #Config definition")
	}

	return &Validator{ctx: ctx, config: def}, nil
}

// ValidateConfig checks already-parsed configuration data against the schema
// and returns one problem string per violation.
func (v *Validator) ValidateConfig(data map[string]any) []string {
	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return []string{fmt.Sprintf("could not encode configuration: %v", err)}
	}

	unified := v.config.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return []string{err.Error()}
	}

	// All #Config fields are optional, so no concreteness requirement here.
	if err := unified.Validate(); err != nil {
		return []string{err.Error()}
	}

	return nil
}

// LoadProjectConfig reads and validates a .reactdoctor.yaml file.
// It returns the parsed key/value data plus any schema problems.
func LoadProjectConfig(path string) (map[string]any, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var data map[string]any
	if err := yamlv3.Unmarshal(raw, &data); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if data == nil {
		return map[string]any{}, nil, nil
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, nil, err
	}

	return data, validator.ValidateConfig(data), nil
}
