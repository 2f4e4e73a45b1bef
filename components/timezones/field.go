package timezones

import (
	"time"

	"github.com/goliatone/go-formbind/pkg/schema"
)

type fieldConfig struct {
	label       string
	description string
	optional    bool
	zones       []string
	defaultZone string
	hasDefault  bool
}

// FieldOption customizes the field returned by Field.
type FieldOption func(*fieldConfig)

// WithLabel overrides the display label.
func WithLabel(label string) FieldOption {
	return func(c *fieldConfig) {
		c.label = label
	}
}

// WithDescription attaches help text shown with the field.
func WithDescription(description string) FieldOption {
	return func(c *fieldConfig) {
		c.description = description
	}
}

// WithOptional marks the field optional, so an undetectable local zone
// defaults to nothing selected instead of a forced member.
func WithOptional() FieldOption {
	return func(c *fieldConfig) {
		c.optional = true
	}
}

// WithZones replaces the curated catalog with an explicit member list.
// An empty list keeps the catalog.
func WithZones(zones ...string) FieldOption {
	return func(c *fieldConfig) {
		if len(zones) > 0 {
			c.zones = zones
		}
	}
}

// WithDefaultZone pins the default to a fixed zone instead of resolving the
// process-local one.
func WithDefaultZone(zone string) FieldOption {
	return func(c *fieldConfig) {
		c.defaultZone = zone
		c.hasDefault = true
	}
}

// Field builds a choice field named name whose members are the zone catalog.
// Unless WithDefaultZone pins a value, the field carries a factory that
// resolves the process-local zone at generation time, falling back to UTC
// and then to the first member so the default is always a declared choice
// (or nothing, for optional fields).
func Field(name string, opts ...FieldOption) *schema.Field {
	cfg := fieldConfig{
		label: "Time zone",
		zones: Choices(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	field := &schema.Field{
		Name:        name,
		Kind:        schema.KindChoice,
		Optional:    cfg.optional,
		Label:       cfg.label,
		Description: cfg.description,
		Members:     cfg.zones,
	}
	if cfg.hasDefault {
		field.Default = cfg.defaultZone
		field.HasDefault = true
		return field
	}

	field.Factory = localZoneFactory(cfg.zones, cfg.optional)
	return field
}

// localZoneFactory resolves the runtime zone against the member list. The
// cascade keeps the result inside the declared members: local zone when
// listed, UTC when listed, nothing for optional fields, first member
// otherwise.
func localZoneFactory(members []string, optional bool) schema.Factory {
	return func() (any, error) {
		if zone := LocalZone(); member(members, zone) {
			return zone, nil
		}
		if member(members, "UTC") {
			return "UTC", nil
		}
		if optional {
			return nil, nil
		}
		return members[0], nil
	}
}

// LocalZone names the process-local IANA zone. When the runtime cannot name
// it (an unset TZ surfaces as the opaque "Local"), UTC is returned.
func LocalZone() string {
	name := time.Local.String()
	if name == "" || name == "Local" {
		return "UTC"
	}
	return name
}

func member(zones []string, zone string) bool {
	for _, candidate := range zones {
		if candidate == zone {
			return true
		}
	}
	return false
}
