// Package openapi generates OpenAPI 3 documents from bindhttp routers. The
// generator is a pure consumer of the registered route table and the struct
// tags the decoder binds from; it never affects dispatch or responses.
package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/bindhttp/bindhttp/pkg/bindhttp"
)

// Config holds OpenAPI generation configuration.
type Config struct {
	Info    Info     `json:"info"`
	Servers []Server `json:"servers,omitempty"`
}

// Info represents the OpenAPI info object.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Server represents an OpenAPI server object.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Generator generates OpenAPI specifications from bindhttp routers.
type Generator struct {
	config Config
}

// NewGenerator creates a new OpenAPI generator.
func NewGenerator(config *Config) *Generator {
	return &Generator{
		config: *config,
	}
}

// Generate creates an OpenAPI specification from a router.
func (g *Generator) Generate(router *bindhttp.TypedRouter) (*openapi3.T, error) {
	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       g.config.Info.Title,
			Version:     g.config.Info.Version,
			Description: g.config.Info.Description,
		},
		Paths: &openapi3.Paths{},
	}

	if len(g.config.Servers) > 0 {
		spec.Servers = make([]*openapi3.Server, len(g.config.Servers))
		for i, server := range g.config.Servers {
			spec.Servers[i] = &openapi3.Server{
				URL:         server.URL,
				Description: server.Description,
			}
		}
	}

	handlers := router.GetHandlers()
	for i := range handlers {
		if err := g.processHandler(spec, &handlers[i]); err != nil {
			return nil, fmt.Errorf("failed to process handler %s %s: %w",
				handlers[i].Method, handlers[i].Path, err)
		}
	}

	return spec, nil
}

// processHandler processes a single handler registration.
func (g *Generator) processHandler(spec *openapi3.T, reg *bindhttp.HandlerRegistration) error {
	// ServeMux-only pattern markers have no OpenAPI equivalent.
	docPath := strings.TrimSuffix(reg.Path, "{$}")
	docPath = strings.Replace(docPath, "...}", "}", 1)

	pathItem := spec.Paths.Find(docPath)
	if pathItem == nil {
		pathItem = &openapi3.PathItem{}
		spec.Paths.Set(docPath, pathItem)
	}

	operation := &openapi3.Operation{
		Summary:     reg.Metadata.Summary,
		Description: reg.Metadata.Description,
		Tags:        reg.Metadata.Tags,
		Responses:   &openapi3.Responses{},
	}

	parameters, err := g.extractParameters(reg.RequestType)
	if err != nil {
		return fmt.Errorf("failed to extract parameters: %w", err)
	}
	operation.Parameters = parameters

	if needsRequestBody(reg.RequestType) {
		requestBody, err := g.createRequestBody(reg.RequestType)
		if err != nil {
			return fmt.Errorf("failed to create request body: %w", err)
		}
		operation.RequestBody = requestBody
	}

	responseSchema, err := g.createSchemaFromType(reg.ResponseType)
	if err != nil {
		return fmt.Errorf("failed to create response schema: %w", err)
	}

	statusCode := "200"
	description := "Success"
	if reg.Method == http.MethodPost {
		statusCode = "201"
		description = "Created"
	}

	operation.Responses.Set(statusCode, &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: &description,
			Content: map[string]*openapi3.MediaType{
				"application/json": {
					Schema: responseSchema,
				},
			},
		},
	})

	switch reg.Method {
	case http.MethodGet:
		pathItem.Get = operation
	case http.MethodPost:
		pathItem.Post = operation
	case http.MethodPut:
		pathItem.Put = operation
	case http.MethodPatch:
		pathItem.Patch = operation
	case http.MethodDelete:
		pathItem.Delete = operation
	}

	return nil
}

// extractParameters extracts OpenAPI parameters from a request type.
func (g *Generator) extractParameters(requestType reflect.Type) (openapi3.Parameters, error) {
	if requestType.Kind() != reflect.Struct {
		return nil, nil
	}

	var parameters openapi3.Parameters

	for i := 0; i < requestType.NumField(); i++ {
		field := requestType.Field(i)
		if !field.IsExported() {
			continue
		}

		// hidden excludes the parameter from the document without
		// changing its runtime behavior.
		if field.Tag.Get("hidden") == "true" {
			continue
		}

		if pathName := field.Tag.Get("path"); pathName != "" {
			param, err := g.createParameter(&field, "path", pathName, true)
			if err != nil {
				return nil, err
			}
			parameters = append(parameters, param)
		}

		if queryName := field.Tag.Get("query"); queryName != "" {
			param, err := g.createQueryParameter(&field, queryName)
			if err != nil {
				return nil, err
			}
			parameters = append(parameters, param)
		}
	}

	return parameters, nil
}

// createQueryParameter creates a query parameter. A query parameter is
// required only when it declares the required rule and no default.
func (g *Generator) createQueryParameter(field *reflect.StructField, queryName string) (*openapi3.ParameterRef, error) {
	defaultValue := field.Tag.Get("default")
	required := defaultValue == "" && strings.Contains(field.Tag.Get("validate"), "required")

	param, err := g.createParameter(field, "query", queryName, required)
	if err != nil {
		return nil, err
	}

	if defaultValue != "" {
		param.Value.Schema.Value.Default = parseDefaultValue(defaultValue, field.Type)
	}

	return param, nil
}

// createParameter creates an OpenAPI parameter from a struct field, carrying
// the declared documentation metadata (title, doc, deprecated) and
// constraints (validate rules, pattern).
func (g *Generator) createParameter(
	field *reflect.StructField, in, name string, required bool,
) (*openapi3.ParameterRef, error) {
	schema, err := g.createSchemaFromType(field.Type)
	if err != nil {
		return nil, err
	}

	applyValidationToSchema(schema, field.Tag.Get("validate"))

	if title := field.Tag.Get("title"); title != "" {
		schema.Value.Title = title
	}
	if pattern := field.Tag.Get("pattern"); pattern != "" {
		schema.Value.Pattern = pattern
	}

	param := &openapi3.Parameter{
		Name:        name,
		In:          in,
		Description: field.Tag.Get("doc"),
		Required:    required,
		Deprecated:  field.Tag.Get("deprecated") == "true",
		Schema:      schema,
	}

	return &openapi3.ParameterRef{Value: param}, nil
}

// needsRequestBody reports whether the request type declares body input.
func needsRequestBody(requestType reflect.Type) bool {
	if requestType.Kind() == reflect.Map || requestType.Kind() == reflect.Slice {
		return true
	}
	if requestType.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < requestType.NumField(); i++ {
		tag := requestType.Field(i).Tag.Get("json")
		if tag != "" && tag != "-" {
			return true
		}
	}

	return false
}

// createRequestBody creates an OpenAPI request body from the json-tagged
// portion of the request type.
func (g *Generator) createRequestBody(requestType reflect.Type) (*openapi3.RequestBodyRef, error) {
	schema, err := g.createSchemaFromType(requestType)
	if err != nil {
		return nil, err
	}

	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{
			Required: true,
			Content: map[string]*openapi3.MediaType{
				"application/json": {Schema: schema},
			},
		},
	}, nil
}

// createSchemaFromType creates an OpenAPI schema from a Go type.
func (g *Generator) createSchemaFromType(t reflect.Type) (*openapi3.SchemaRef, error) {
	schema := &openapi3.Schema{}

	switch t.Kind() {
	case reflect.String:
		schema.Type = &openapi3.Types{"string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		schema.Type = &openapi3.Types{"integer"}
	case reflect.Float32, reflect.Float64:
		schema.Type = &openapi3.Types{"number"}
	case reflect.Bool:
		schema.Type = &openapi3.Types{"boolean"}
	case reflect.Struct:
		schema.Type = &openapi3.Types{"object"}
		schema.Properties = make(map[string]*openapi3.SchemaRef)

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			jsonTag := field.Tag.Get("json")
			if jsonTag == "" || jsonTag == "-" {
				continue
			}

			parts := strings.Split(jsonTag, ",")
			fieldName := parts[0]
			omitempty := len(parts) > 1 && parts[1] == "omitempty"

			fieldSchema, err := g.createSchemaFromType(field.Type)
			if err != nil {
				return nil, err
			}

			applyValidationToSchema(fieldSchema, field.Tag.Get("validate"))
			if title := field.Tag.Get("title"); title != "" {
				fieldSchema.Value.Title = title
			}

			schema.Properties[fieldName] = fieldSchema

			if !omitempty && field.Type.Kind() != reflect.Ptr {
				schema.Required = append(schema.Required, fieldName)
			}
		}
	case reflect.Slice, reflect.Array:
		schema.Type = &openapi3.Types{"array"}
		itemSchema, err := g.createSchemaFromType(t.Elem())
		if err != nil {
			return nil, err
		}
		schema.Items = itemSchema
	case reflect.Map:
		schema.Type = &openapi3.Types{"object"}
		valueSchema, err := g.createSchemaFromType(t.Elem())
		if err != nil {
			return nil, err
		}
		schema.AdditionalProperties = openapi3.AdditionalProperties{Schema: valueSchema}
	case reflect.Ptr:
		return g.createSchemaFromType(t.Elem())
	default:
		schema.Type = &openapi3.Types{"string"}
	}

	return &openapi3.SchemaRef{Value: schema}, nil
}

// applyValidationToSchema maps validate rules onto schema constraints.
func applyValidationToSchema(schemaRef *openapi3.SchemaRef, validate string) {
	if validate == "" || schemaRef.Value == nil {
		return
	}

	schema := schemaRef.Value
	for _, rule := range strings.Split(validate, ",") {
		applyValidationRule(schema, strings.TrimSpace(rule))
	}
}

func applyValidationRule(schema *openapi3.Schema, rule string) {
	switch {
	case strings.HasPrefix(rule, "min="):
		applyBound(schema, rule[4:], false, false)
	case strings.HasPrefix(rule, "max="):
		applyBound(schema, rule[4:], true, false)
	case strings.HasPrefix(rule, "gte="):
		applyBound(schema, rule[4:], false, false)
	case strings.HasPrefix(rule, "lte="):
		applyBound(schema, rule[4:], true, false)
	case strings.HasPrefix(rule, "gt="):
		applyBound(schema, rule[3:], false, true)
	case strings.HasPrefix(rule, "lt="):
		applyBound(schema, rule[3:], true, true)
	case strings.HasPrefix(rule, "oneof="):
		for _, member := range strings.Fields(rule[6:]) {
			schema.Enum = append(schema.Enum, member)
		}
	case rule == "http_url":
		schema.Format = "uri"
	case rule == "email":
		schema.Format = "email"
	case rule == "uuid":
		schema.Format = "uuid"
	}
}

// applyBound records a numeric or length bound. min/max on strings are length
// bounds; on numbers they are value bounds, exclusive for gt/lt.
func applyBound(schema *openapi3.Schema, raw string, upper, exclusive bool) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}

	if schema.Type == nil || len(*schema.Type) == 0 {
		return
	}

	switch (*schema.Type)[0] {
	case "string":
		if value < 0 {
			return
		}
		length := uint64(value)
		if upper {
			schema.MaxLength = &length
		} else {
			schema.MinLength = length
		}
	case "integer", "number":
		if upper {
			schema.Max = &value
			schema.ExclusiveMax = exclusive
		} else {
			schema.Min = &value
			schema.ExclusiveMin = exclusive
		}
	}
}

// parseDefaultValue parses a declared default based on the field type.
func parseDefaultValue(defaultValue string, t reflect.Type) interface{} {
	switch t.Kind() {
	case reflect.String:
		return defaultValue
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
			return val
		}
	case reflect.Float32, reflect.Float64:
		if val, err := strconv.ParseFloat(defaultValue, 64); err == nil {
			return val
		}
	case reflect.Bool:
		if val, err := strconv.ParseBool(defaultValue); err == nil {
			return val
		}
	case reflect.Ptr:
		return parseDefaultValue(defaultValue, t.Elem())
	}

	return defaultValue
}

// GenerateJSON generates the JSON representation of an OpenAPI spec.
func (g *Generator) GenerateJSON(spec *openapi3.T) ([]byte, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec to JSON: %w", err)
	}

	return data, nil
}

// GenerateYAML generates the YAML representation of an OpenAPI spec. The
// spec is rendered through its JSON form first so the document keys match
// the JSON output exactly.
func (g *Generator) GenerateYAML(spec *openapi3.T) ([]byte, error) {
	jsonData, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to rebuild OpenAPI spec for YAML: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI spec to YAML: %w", err)
	}

	return data, nil
}
