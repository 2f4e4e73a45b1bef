// Package timezones ships a curated IANA time zone catalog as a ready-made
// choice field. Field produces a schema field whose members are the catalog
// and whose factory default resolves the process-local zone, so forms get a
// sensible preselected zone without any per-site configuration.
//
// The catalog is deliberately curated rather than exhaustive: one canonical
// city per offset region people actually pick in settings screens, instead
// of the full tzdata set with its aliases and ship-era backfills. Callers
// that need a different list can restrict or replace it with WithZones, or
// parse their own with LoadZones.
package timezones
