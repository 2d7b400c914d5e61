package alma

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ils-data/marc852-audit/internal/common"
)

// Institution is one registered IZ: the Analytics path of its 852
// report and the name of the environment variable holding its read-only
// Analytics API key. Keys stay out of the registry file itself.
type Institution struct {
	Code       string `json:"code"`
	Name       string `json:"name,omitempty"`
	ReportPath string `json:"report_path"`
	APIKeyEnv  string `json:"api_key_env"`
}

// Registry resolves institution codes to report paths and API keys.
type Registry struct {
	institutions map[string]Institution
	codes        []string
}

type registryFile struct {
	Institutions []Institution `json:"institutions"`
}

// buildRegistryJSONSchema returns the registry file schema as a generic
// map, compiled at load time to validate before unmarshalling.
func buildRegistryJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"institutions"},
		"properties": map[string]any{
			"institutions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"code", "report_path", "api_key_env"},
					"properties": map[string]any{
						"code":        map[string]any{"type": "string", "pattern": `^[A-Z]{2,5}$`},
						"name":        map[string]any{"type": "string"},
						"report_path": map[string]any{"type": "string", "minLength": 1},
						"api_key_env": map[string]any{"type": "string", "pattern": `^[A-Z][A-Z0-9_]*$`},
					},
				},
			},
		},
	}
}

func validateRegistryJSON(data []byte) error {
	b, err := json.Marshal(buildRegistryJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("registry-schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("registry-schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal registry: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("registry does not match schema: %w", err)
	}
	return nil
}

// LoadRegistry reads and parses the institution registry at path.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewAppError("REGISTRY_ERROR", "failed to read registry file "+path, err)
	}
	reg, err := ParseRegistry(data)
	if err != nil {
		return nil, common.NewAppError("REGISTRY_ERROR", "invalid registry file "+path, err)
	}
	return reg, nil
}

// ParseRegistry validates and parses registry JSON. Codes must be
// unique; file order is preserved.
func ParseRegistry(data []byte) (*Registry, error) {
	if err := validateRegistryJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	reg := &Registry{institutions: make(map[string]Institution)}
	for _, inst := range file.Institutions {
		if _, ok := reg.institutions[inst.Code]; ok {
			return nil, fmt.Errorf("%w: duplicate institution code %q", common.ErrValidation, inst.Code)
		}
		reg.institutions[inst.Code] = inst
		reg.codes = append(reg.codes, inst.Code)
	}
	return reg, nil
}

// Get returns the institution registered under code.
func (r *Registry) Get(code string) (Institution, error) {
	inst, ok := r.institutions[code]
	if !ok {
		return Institution{}, common.NewAppError("REGISTRY_ERROR",
			fmt.Sprintf("unknown institution code %q", code), common.ErrNotFound)
	}
	return inst, nil
}

// Codes returns the registered institution codes in file order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// APIKey resolves the institution's Analytics API key from the
// environment. The error names the variable, never the key.
func (r *Registry) APIKey(code string) (string, error) {
	inst, err := r.Get(code)
	if err != nil {
		return "", err
	}
	key := os.Getenv(inst.APIKeyEnv)
	if key == "" {
		return "", common.NewAppError("REGISTRY_ERROR",
			fmt.Sprintf("environment variable %s is not set for institution %s", inst.APIKeyEnv, code),
			common.ErrNotFound)
	}
	return key, nil
}
