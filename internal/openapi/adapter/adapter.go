// Package adapter maps OpenAPI schemas onto form schemas using kin-openapi.
// It is the only package that touches openapi3 types; everything above works
// with Document values and *schema.Schema.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/schema"
)

// Spec aliases the parsed document type so callers outside this package can
// hold one without importing kin-openapi.
type Spec = openapi3.T

// Options mirrors the public conversion options.
type Options struct {
	Validate          bool
	AllowExternalRefs bool
}

// Load parses and optionally validates a raw OpenAPI payload.
func Load(ctx context.Context, raw []byte, opts Options) (*Spec, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi adapter: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.AllowExternalRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi adapter: load document: %w", err)
	}

	if opts.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi adapter: validate: %w", err)
		}
	}
	return spec, nil
}

// ComponentNames lists reusable schema components in sorted order.
func ComponentNames(spec *Spec) []string {
	if spec == nil || spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component converts the named component schema.
func Component(spec *Spec, name string) (*schema.Schema, error) {
	if spec == nil || spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi adapter: document has no components")
	}
	ref, ok := spec.Components.Schemas[name]
	if !ok {
		return nil, fmt.Errorf("openapi adapter: component %q not found", name)
	}
	return convertRoot(name, ref)
}

// RequestBody locates an operation and converts its request body schema.
func RequestBody(spec *Spec, operationID string) (*schema.Schema, error) {
	if operationID == "" {
		return nil, errors.New("openapi adapter: operation id is required")
	}
	operation, err := findOperation(spec, operationID)
	if err != nil {
		return nil, err
	}
	ref := requestSchema(operation)
	if ref == nil {
		return nil, fmt.Errorf("openapi adapter: operation %q has no request body schema", operationID)
	}
	return convertRoot(operationID, ref)
}

func findOperation(spec *Spec, operationID string) (*openapi3.Operation, error) {
	if spec == nil || spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi adapter: document does not contain any paths")
	}

	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		candidates := map[string]*openapi3.Operation{
			"get": item.Get, "put": item.Put, "post": item.Post,
			"delete": item.Delete, "patch": item.Patch,
		}
		for method, operation := range candidates {
			if operation == nil {
				continue
			}
			id := operation.OperationID
			if id == "" {
				id = method + ":" + path
			}
			if id == operationID {
				return operation, nil
			}
		}
	}
	return nil, fmt.Errorf("openapi adapter: operation %q not found", operationID)
}

// requestSchema picks the operation's form-bearing media type, preferring
// JSON, then the url-encoded and multipart bodies browsers actually send.
func requestSchema(operation *openapi3.Operation) *openapi3.SchemaRef {
	if operation == nil || operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema
		}
	}
	return nil
}

// convertRoot requires the top level to be an object; forms bind named
// fields, not bare scalars or arrays.
func convertRoot(name string, ref *openapi3.SchemaRef) (*schema.Schema, error) {
	src := deref(ref)
	if src == nil {
		return nil, fmt.Errorf("openapi adapter: schema %q is unresolved", name)
	}
	if kind := kindOf(src); kind != schema.KindObject {
		return nil, fmt.Errorf("openapi adapter: schema %q is %s, want an object", name, kind)
	}
	return convertObject(name, src)
}

func convertObject(name string, src *openapi3.Schema) (*schema.Schema, error) {
	required := make(map[string]bool, len(src.Required))
	for _, field := range src.Required {
		required[field] = true
	}

	// Property maps carry no order; sort so the schema is deterministic.
	names := make([]string, 0, len(src.Properties))
	for propName := range src.Properties {
		names = append(names, propName)
	}
	sort.Strings(names)

	fields := make([]*schema.Field, 0, len(names))
	for _, propName := range names {
		field, err := convertField(propName, src.Properties[propName], required[propName])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	compiled, err := schema.New(name, fields)
	if err != nil {
		return nil, fmt.Errorf("openapi adapter: %w", err)
	}
	return compiled, nil
}

func convertField(name string, ref *openapi3.SchemaRef, required bool) (*schema.Field, error) {
	src := deref(ref)
	if src == nil {
		return &schema.Field{Name: name, Kind: schema.KindUnknown, Optional: !required}, nil
	}

	field := &schema.Field{
		Name:        name,
		Kind:        kindOf(src),
		Optional:    !required || src.Nullable,
		Label:       src.Title,
		Description: src.Description,
	}
	if src.Default != nil {
		field.Default = src.Default
		field.HasDefault = true
	}

	switch field.Kind {
	case schema.KindChoice:
		field.Members = enumMembers(src.Enum)
	case schema.KindObject:
		nested, err := convertObject(name, src)
		if err != nil {
			return nil, err
		}
		field.Fields = nested
	case schema.KindList:
		item, err := convertField(name, src.Items, true)
		if err != nil {
			return nil, err
		}
		field.Item = item
	}
	return field, nil
}

// kindOf maps a type/format pair onto a field kind. Enumerations win over
// the declared type; typeless schemas fall back to their shape.
func kindOf(src *openapi3.Schema) schema.Kind {
	if len(src.Enum) > 0 {
		return schema.KindChoice
	}

	switch firstType(src.Type) {
	case "string":
		switch src.Format {
		case "date", "date-time":
			return schema.KindDate
		case "time":
			return schema.KindTime
		default:
			return schema.KindString
		}
	case "integer":
		return schema.KindInteger
	case "number":
		return schema.KindFloat
	case "boolean":
		return schema.KindBoolean
	case "object":
		return schema.KindObject
	case "array":
		return schema.KindList
	default:
		if len(src.Properties) > 0 {
			return schema.KindObject
		}
		if src.Items != nil {
			return schema.KindList
		}
		return schema.KindUnknown
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func enumMembers(enum []any) []string {
	members := make([]string, 0, len(enum))
	for _, value := range enum {
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok {
			members = append(members, s)
			continue
		}
		members = append(members, strings.TrimSpace(fmt.Sprintf("%v", value)))
	}
	return members
}

func deref(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}
