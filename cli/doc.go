// Package cli exposes the §6 external CLI surface as a plain Config
// struct: every knob the exact-synthesis, LUT-mapping, cut-enumeration
// and LNN-reordering passes accept, named to mirror the CLI flags
// verbatim. Flag parsing itself is out of scope (§1 Non-goals); Config
// field names and `json` tags are chosen so an external flag parser or
// `encoding/json` config file can populate a Config by name without
// this package needing to depend on one.
package cli
