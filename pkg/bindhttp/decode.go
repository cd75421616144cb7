package bindhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Error variables for static error handling.
var (
	// ErrInvalidJSONBody marks a request body that could not be parsed at
	// all, as opposed to one that parsed but failed validation.
	ErrInvalidJSONBody = errors.New("invalid JSON")

	ErrInvalidIntegerValue  = errors.New("invalid integer value")
	ErrInvalidUintegerValue = errors.New("invalid unsigned integer value")
	ErrInvalidFloatValue    = errors.New("invalid float value")
	ErrInvalidBooleanValue  = errors.New("invalid boolean value")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

var (
	// Global validator instance to avoid per-request creation.
	globalValidator     *validator.Validate
	globalValidatorOnce sync.Once
)

// DefaultValidator returns the shared validator instance. Field names in
// validation errors are resolved through json/query/path tags so error
// reports address wire-level names, not Go identifiers.
func DefaultValidator() *validator.Validate {
	globalValidatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "query", "path"} {
				tag := fld.Tag.Get(key)
				if tag == "" {
					continue
				}
				name := strings.Split(tag, ",")[0]
				if name != "" && name != "-" {
					return name
				}
			}

			return fld.Name
		})
		globalValidator = v
	})

	return globalValidator
}

// boundField describes one struct field bound from the path or query string.
type boundField struct {
	index    []int
	location string
	wire     string // wire-level key; for query params the tag value is the alias
	def      string
	pattern  *regexp.Regexp
	isSlice  bool
}

// typeInfo is the per-type binding plan, computed once per request type.
type typeInfo struct {
	isStruct  bool
	path      []boundField
	query     []boundField
	hasBody   bool
	locations map[string]string // top-level Go field name -> location
	embedded  map[string]bool   // anonymous schema fields whose json keys sit at the body root
}

func buildTypeInfo(t reflect.Type) typeInfo {
	info := typeInfo{locations: make(map[string]string), embedded: make(map[string]bool)}
	if t == nil || t.Kind() != reflect.Struct {
		// Maps and slices are bound from the whole JSON body.
		return info
	}
	info.isStruct = true

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			// An embedded schema flattens its json fields into the body.
			// encoding/json promotes the embed's exported fields whether
			// or not the embedded type itself is exported, so the embed
			// declares the whole body either way.
			info.hasBody = true
			info.locations[field.Name] = "body"
			info.embedded[field.Name] = true

			continue
		}

		if !field.IsExported() {
			continue
		}

		bf := boundField{
			index:   field.Index,
			def:     field.Tag.Get("default"),
			isSlice: field.Type.Kind() == reflect.Slice,
		}
		if pattern := field.Tag.Get("pattern"); pattern != "" {
			// A malformed pattern is a configuration error, caught at
			// registration time rather than per request.
			bf.pattern = regexp.MustCompile(pattern)
		}

		switch {
		case field.Tag.Get("path") != "":
			bf.location = "path"
			bf.wire = field.Tag.Get("path")
			info.path = append(info.path, bf)
		case field.Tag.Get("query") != "":
			bf.location = "query"
			bf.wire = field.Tag.Get("query")
			info.query = append(info.query, bf)
		case jsonName(field) != "":
			info.hasBody = true
			bf.location = "body"
		}
		if bf.location != "" {
			info.locations[field.Name] = bf.location
		}
	}

	return info
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}

	return strings.Split(tag, ",")[0]
}

// Decoder binds a request type from every source its tags declare: path
// segments, query parameters, and the JSON body. Non-struct request types
// (maps, slices) are decoded as the entire body.
type Decoder[T any] struct {
	validator *validator.Validate
	info      typeInfo
}

// NewDecoder creates a decoder for T with the given validator.
func NewDecoder[T any](validator *validator.Validate) *Decoder[T] {
	var zero T

	return &Decoder[T]{
		validator: validator,
		info:      buildTypeInfo(reflect.TypeOf(zero)),
	}
}

// Decode binds and validates a request. A non-nil error is always a
// *ValidationError or a JSON syntax error; the handler never sees a
// partially validated value.
func (d *Decoder[T]) Decode(r *http.Request) (T, error) {
	var result T

	if !d.info.isStruct {
		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			return result, bodyError(err)
		}

		return result, nil
	}

	var fields []FieldError
	rv := reflect.ValueOf(&result).Elem()

	if d.info.hasBody && r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				fields = append(fields, FieldError{
					Location:   "body",
					Field:      typeErr.Field,
					Constraint: "type",
					Value:      typeErr.Value,
				})
			} else {
				return result, bodyError(err)
			}
		}
	}

	// Path and query values bind after the body, and an absent value resets
	// the field, so a body key matching a Go field name can never leak into
	// another location's binding.
	for _, bf := range d.info.path {
		raw := r.PathValue(bf.wire)
		if raw == "" {
			raw = bf.def
		}
		if raw == "" {
			rv.FieldByIndex(bf.index).SetZero()

			continue
		}
		fields = append(fields, bindString(rv, bf, raw)...)
	}

	query := r.URL.Query()
	for _, bf := range d.info.query {
		values := query[bf.wire]
		if len(values) == 0 {
			if bf.def == "" {
				rv.FieldByIndex(bf.index).SetZero()

				continue
			}
			values = []string{bf.def}
		}
		if bf.isSlice {
			fields = append(fields, bindSlice(rv, bf, values)...)
		} else {
			fields = append(fields, bindString(rv, bf, values[0])...)
		}
	}

	if len(fields) > 0 {
		return result, NewValidationError("Validation failed", fields)
	}

	if d.validator != nil {
		if err := d.validator.Struct(result); err != nil {
			return result, d.validationError(err)
		}
	}

	return result, nil
}

// ContentTypes returns the content types the decoder accepts.
func (d *Decoder[T]) ContentTypes() []string {
	return []string{"application/json"}
}

// bindString parses raw into the field described by bf, reporting pattern
// mismatches and type conversion failures as field errors.
func bindString(rv reflect.Value, bf boundField, raw string) []FieldError {
	if bf.pattern != nil && !bf.pattern.MatchString(raw) {
		return []FieldError{{
			Location:   bf.location,
			Field:      bf.wire,
			Constraint: "pattern=" + bf.pattern.String(),
			Value:      raw,
		}}
	}
	if err := setFieldValue(rv.FieldByIndex(bf.index), raw); err != nil {
		return []FieldError{{
			Location:   bf.location,
			Field:      bf.wire,
			Constraint: "type",
			Value:      raw,
		}}
	}

	return nil
}

// bindSlice fills a slice field from repeated wire values.
func bindSlice(rv reflect.Value, bf boundField, values []string) []FieldError {
	field := rv.FieldByIndex(bf.index)
	slice := reflect.MakeSlice(field.Type(), len(values), len(values))
	for i, raw := range values {
		if bf.pattern != nil && !bf.pattern.MatchString(raw) {
			return []FieldError{{
				Location:   bf.location,
				Field:      bf.wire,
				Constraint: "pattern=" + bf.pattern.String(),
				Value:      raw,
			}}
		}
		if err := setFieldValue(slice.Index(i), raw); err != nil {
			return []FieldError{{
				Location:   bf.location,
				Field:      bf.wire,
				Constraint: "type",
				Value:      raw,
			}}
		}
	}
	field.Set(slice)

	return nil
}

// validationError converts validator errors into a field-addressed
// ValidationError.
func (d *Decoder[T]) validationError(err error) error {
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return NewValidationError("Validation failed", nil)
	}

	fields := make([]FieldError, 0, len(validatorErrs))
	for _, ve := range validatorErrs {
		fields = append(fields, d.fieldError(ve))
	}

	return NewValidationError("Validation failed", fields)
}

func (d *Decoder[T]) fieldError(ve validator.FieldError) FieldError {
	// Namespace uses wire-level names ("UpdateItemRequest.item.price");
	// StructNamespace keeps Go names so the top-level field's declared
	// location can be resolved.
	wirePath := trimNamespaceRoot(ve.Namespace())
	topField := trimNamespaceRoot(ve.StructNamespace())
	if i := strings.Index(topField, "."); i >= 0 {
		topField = topField[:i]
	}
	if d.info.embedded[topField] {
		// The embedded schema's fields live at the body root: drop the
		// synthetic leading segment from the reported path.
		if i := strings.Index(wirePath, "."); i >= 0 {
			wirePath = wirePath[i+1:]
		}
	}

	location := "body"
	if loc, ok := d.info.locations[topField]; ok {
		location = loc
	}

	constraint := ve.Tag()
	if ve.Param() != "" {
		constraint += "=" + ve.Param()
	}

	return FieldError{
		Location:   location,
		Field:      wirePath,
		Constraint: constraint,
		Value:      fmt.Sprintf("%v", ve.Value()),
	}
}

func trimNamespaceRoot(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}

	return namespace
}

func bodyError(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
}

// setFieldValue sets a reflect.Value based on a string value.
func setFieldValue(fieldValue reflect.Value, value string) error {
	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidIntegerValue, value)
		}
		fieldValue.SetInt(intValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidUintegerValue, value)
		}
		fieldValue.SetUint(uintValue)
	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFloatValue, value)
		}
		fieldValue.SetFloat(floatValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidBooleanValue, value)
		}
		fieldValue.SetBool(boolValue)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFieldType, fieldValue.Kind())
	}

	return nil
}
