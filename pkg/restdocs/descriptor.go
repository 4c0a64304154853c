package restdocs

// Descriptor documents one header, parameter or payload field.
type Descriptor struct {
	Name        string
	Description string
	Type        string // inferred from the payload for fields when empty
	Constraints string
	Optional    bool
}

// Field describes a payload field by path, e.g. "name", "errors[].field" or "[].id".
func Field(path, description string) Descriptor {
	return Descriptor{Name: path, Description: description}
}

// Param describes a path or query parameter.
func Param(name, description string) Descriptor {
	return Descriptor{Name: name, Description: description, Type: "String"}
}

// Header describes a request header.
func Header(name, description string) Descriptor {
	return Descriptor{Name: name, Description: description, Type: "String"}
}

// WithType returns a copy of d with the given type.
func (d Descriptor) WithType(t string) Descriptor {
	d.Type = t
	return d
}

// WithConstraints returns a copy of d with the given constraints text.
func (d Descriptor) WithConstraints(c string) Descriptor {
	d.Constraints = c
	return d
}

// AsOptional returns a copy of d marked optional.
func (d Descriptor) AsOptional() Descriptor {
	d.Optional = true
	return d
}
