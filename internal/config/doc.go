// Package config loads the optional HCL configuration file. The file can
// carry anything the CLI flags can, plus a free-form options block of
// vis-network physics overrides that has no flag equivalent. Precedence is
// resolved by the app layer: built-in defaults, then this file, then flags.
package config
