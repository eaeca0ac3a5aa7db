package llm

// Type is a JSON schema type.
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema is the subset of JSON schema the providers understand.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	// Order fixes property order for providers that honour it.
	Order    []string
	Required []string
	Items    *Schema
	Enum     []string
	MinItems int
	MaxItems int
}

// Object builds an object schema. Every property is required and keeps the
// given order.
func Object(description string, props ...Property) *Schema {
	s := &Schema{
		Type:        TypeObject,
		Description: description,
		Properties:  make(map[string]*Schema, len(props)),
	}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Order = append(s.Order, p.Name)
		s.Required = append(s.Required, p.Name)
	}
	return s
}

// Property is a named member of an object schema.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop pairs a name with a schema.
func Prop(name string, s *Schema) Property { return Property{Name: name, Schema: s} }

// String builds a string schema.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// Enum builds a string schema restricted to values.
func Enum(description string, values ...string) *Schema {
	return &Schema{Type: TypeString, Description: description, Enum: values}
}

// Array builds an array schema.
func Array(description string, items *Schema) *Schema {
	return &Schema{Type: TypeArray, Description: description, Items: items}
}

// Exactly bounds an array schema to n items.
func (s *Schema) Exactly(n int) *Schema {
	s.MinItems, s.MaxItems = n, n
	return s
}

// JSON returns the schema as a JSON-schema document.
func (s *Schema) JSON() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if s.Items != nil {
		out["items"] = s.Items.JSON()
	}
	if s.MinItems > 0 {
		out["minItems"] = s.MinItems
	}
	if s.MaxItems > 0 {
		out["maxItems"] = s.MaxItems
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSON()
		}
		out["properties"] = props
		out["additionalProperties"] = false
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}
