// Package config loads table definitions for the boxgrid CLI.
//
// Configuration is layered with koanf: embedded defaults, then a TOML or
// YAML file (given explicitly or found under the XDG config directories),
// then BOXGRID_* environment variables, then command-line overrides. The
// result is a TableSpec, which Build turns into a table.Definition over
// records.
package config
