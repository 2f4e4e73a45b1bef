package model

import "github.com/goliatone/go-formbind/pkg/schema"

// Field models a single input inside a projected form. Struct fields are
// annotated so renderers can serialise the model directly when needed.
type Field struct {
	Name        string      `json:"name"`
	Kind        schema.Kind `json:"kind"`
	Optional    bool        `json:"optional,omitempty"`
	InputName   string      `json:"inputName,omitempty"`
	Path        string      `json:"path,omitempty"`
	Label       string      `json:"label,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Description string      `json:"description,omitempty"`
	Members     []string    `json:"members,omitempty"`
	Default     any         `json:"default,omitempty"`
	Nested      []Field     `json:"nested,omitempty"`
	Item        *Field      `json:"item,omitempty"`
}

// FormModel is the top-level representation renderers consume. InputName on
// each concrete field already includes the instance prefix and the flat-key
// separator, so renderers can emit input names without re-deriving them.
//
// Fields inside a list item prototype carry InputName values relative to the
// item slot; renderers join them onto a minted slot key with Key. Path stays
// absolute (dotted, index free) everywhere so error maps and exclusion rules
// can address prototype fields too.
type FormModel struct {
	Name      string  `json:"form"`
	Title     string  `json:"title,omitempty"`
	Prefix    string  `json:"prefix,omitempty"`
	Separator string  `json:"separator"`
	Fields    []Field `json:"fields"`
}

// Key joins name segments with the form's flat-key separator, skipping empty
// segments. Renderers use it to mint list slot keys (list input name plus
// index token) and to attach prototype child names onto a slot.
func (m FormModel) Key(segments ...string) string {
	out := ""
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		if out == "" {
			out = segment
			continue
		}
		out += m.Separator + segment
	}
	return out
}
