package model

import (
	"errors"

	"github.com/goliatone/go-formbind/pkg/schema"
)

// Builder projects schema definitions into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	if options.Separator != "" {
		opts.Separator = options.Separator
	}
	opts.Prefix = options.Prefix
	opts.Excluded = options.Excluded
	opts.Generator = options.Generator
	return &Builder{opts: opts}
}

// Build transforms a schema into a FormModel suitable for rendering. Field
// order follows schema declaration order, excluded paths are dropped, and
// scalar fields are annotated with their default display value when the
// builder carries a generator.
func (b *Builder) Build(s *schema.Schema) (FormModel, error) {
	if s == nil {
		return FormModel{}, errors.New("model: schema is required")
	}

	form := FormModel{
		Name:      s.Name(),
		Title:     b.opts.Labeler(s.Name()),
		Prefix:    b.opts.Prefix,
		Separator: b.opts.Separator,
	}
	form.Fields = b.fieldsFrom(s, b.opts.Prefix, "")
	return form, nil
}

// fieldsFrom projects the fields of a schema level. keyBase is the flat-key
// text to prepend verbatim (instance prefix, or a parent object key plus
// separator); pathBase is the dotted display path of the enclosing field.
func (b *Builder) fieldsFrom(s *schema.Schema, keyBase, pathBase string) []Field {
	fields := make([]Field, 0, s.Len())
	for _, sf := range s.Fields() {
		path := joinPath(pathBase, sf.Name)
		if b.excluded(path) {
			continue
		}
		fields = append(fields, b.fieldFrom(sf, keyBase+sf.Name, path))
	}
	return fields
}

func (b *Builder) fieldFrom(sf *schema.Field, key, path string) Field {
	field := Field{
		Name:        sf.Name,
		Kind:        sf.Kind,
		Optional:    sf.Optional,
		InputName:   key,
		Path:        path,
		Label:       b.label(sf),
		Placeholder: sf.Placeholder,
		Description: sf.Description,
	}
	if len(sf.Members) > 0 {
		field.Members = append([]string(nil), sf.Members...)
	}

	switch sf.Kind {
	case schema.KindObject:
		field.Nested = b.fieldsFrom(sf.Fields, key+b.opts.Separator, path)
	case schema.KindList:
		item := b.itemFrom(sf.Item, path)
		field.Item = &item
	default:
		field.Default = b.displayDefault(sf)
	}
	return field
}

// itemFrom builds the prototype for one list slot. The prototype and its
// children keep relative InputName values so renderers can join them onto a
// minted slot key, while Path stays anchored at the list for error lookups.
func (b *Builder) itemFrom(sf *schema.Field, path string) Field {
	item := Field{
		Name:        sf.Name,
		Kind:        sf.Kind,
		Optional:    sf.Optional,
		Path:        path,
		Label:       b.label(sf),
		Placeholder: sf.Placeholder,
		Description: sf.Description,
	}
	if len(sf.Members) > 0 {
		item.Members = append([]string(nil), sf.Members...)
	}

	switch sf.Kind {
	case schema.KindObject:
		item.Nested = b.fieldsFrom(sf.Fields, "", path)
	case schema.KindList:
		nested := b.itemFrom(sf.Item, path)
		item.Item = &nested
	default:
		item.Default = b.displayDefault(sf)
	}
	return item
}

func (b *Builder) label(sf *schema.Field) string {
	if sf.Label != "" {
		return sf.Label
	}
	return b.opts.Labeler(sf.Name)
}

// displayDefault asks the generator for the field's default display value.
// Factory failures are tolerated here: a form can still render without the
// prefill, and decode-time handling reports the failure properly.
func (b *Builder) displayDefault(sf *schema.Field) any {
	if b.opts.Generator == nil {
		return nil
	}
	value, err := b.opts.Generator.Value(sf)
	if err != nil {
		return nil
	}
	return value
}

func (b *Builder) excluded(path string) bool {
	for _, candidate := range b.opts.Excluded {
		if candidate == path {
			return true
		}
	}
	return false
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
