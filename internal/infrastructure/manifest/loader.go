// Package manifest loads device manifests for batch import.
//
// A manifest is a YAML document:
//
//	apiVersion: "1"
//	devices:
//	  - kind: desktop
//	    cpu: i7
//	    ram: 32
//	    disk: 1024
//	    gpu: Nvidia
//
// Documents are checked against an embedded JSON schema before decoding.
// The schema only checks shape: a device missing a field is still loaded,
// so the import can report the absent field against that device.
package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/rigbook/rigbook/internal/application/dto"
	apperrors "github.com/rigbook/rigbook/internal/application/errors"
	"github.com/rigbook/rigbook/internal/application/ports"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SupportedAPIVersions is the apiVersion range this build reads.
const SupportedAPIVersions = "~1"

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	errCompile     error
)

// Ensure interface compliance
var _ ports.ManifestLoader = (*Loader)(nil)

// Loader reads manifests from disk.
type Loader struct {
	constraint *semver.Constraints
}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	constraint, err := semver.NewConstraint(SupportedAPIVersions)
	if err != nil {
		// SupportedAPIVersions is a constant
		panic(err)
	}
	return &Loader{constraint: constraint}
}

// LoadManifest opens path and decodes the manifest it holds.
func (l *Loader) LoadManifest(path string) (*ports.Manifest, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadManifestFromReader(file)
}

// LoadManifestFromReader decodes a manifest from r.
func (l *Loader) LoadManifestFromReader(r io.Reader) (*ports.Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, apperrors.WrapValidationError("manifest", fmt.Errorf("failed to decode manifest YAML: %w", err))
	}

	// Numbers stay json.Number so the validator and scalarString see them unrounded
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, apperrors.WrapValidationError("manifest", fmt.Errorf("failed to decode manifest: %w", err))
	}

	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	// The schema guarantees this shape
	root, _ := doc.(map[string]interface{})

	apiVersion := scalarString(root["apiVersion"])
	if err := l.checkAPIVersion(apiVersion); err != nil {
		return nil, err
	}

	items, _ := root["devices"].([]interface{})
	manifest := &ports.Manifest{
		APIVersion: apiVersion,
		Devices:    make([]dto.DeviceRequest, 0, len(items)),
	}
	for _, item := range items {
		fields, _ := item.(map[string]interface{})
		manifest.Devices = append(manifest.Devices, dto.DeviceRequest{
			Kind:   optionalString(fields, "kind"),
			CPU:    optionalString(fields, "cpu"),
			RAM:    optionalString(fields, "ram"),
			Disk:   optionalString(fields, "disk"),
			GPU:    optionalString(fields, "gpu"),
			Screen: optionalString(fields, "screen"),
		})
	}
	return manifest, nil
}

func (l *Loader) checkAPIVersion(apiVersion string) error {
	version, err := semver.NewVersion(apiVersion)
	if err != nil {
		return apperrors.NewValidationError("apiVersion",
			fmt.Sprintf("%q is not a valid version", apiVersion))
	}
	if !l.constraint.Check(version) {
		return apperrors.NewValidationError("apiVersion",
			fmt.Sprintf("%s is not supported (want %s)", apiVersion, SupportedAPIVersions))
	}
	return nil
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("manifest.json", bytes.NewReader(schemaJSON)); err != nil {
			errCompile = fmt.Errorf("failed to add manifest schema: %w", err)
			return
		}
		compiledSchema, errCompile = compiler.Compile("manifest.json")
	})
	return compiledSchema, errCompile
}

func validateSchema(doc interface{}) error {
	s, err := schema()
	if err != nil {
		return fmt.Errorf("failed to compile manifest schema: %w", err)
	}

	err = s.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	return formatSchemaValidationError(validationErr)
}

// formatSchemaValidationError flattens a schema validation error tree into
// one ValidationError with a detail line per leaf message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var details []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			details = append(details, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(details) == 0 {
		return apperrors.NewValidationError("manifest", "does not match schema")
	}
	return apperrors.NewValidationError("manifest",
		"does not match schema:\n    - "+strings.Join(details, "\n    - "),
		details...)
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func optionalString(fields map[string]interface{}, key string) *string {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil
	}
	s := scalarString(v)
	return &s
}
