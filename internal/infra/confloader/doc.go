// Package confloader loads layered configuration with koanf.
//
// Sources (highest priority first):
//
//  1. Overrides loaded with LoadMap (command-line flags)
//  2. Environment variables (EDGEAUTH_ prefix)
//  3. A YAML configuration file
//  4. Defaults already present in the target struct
//
// Environment variables map to keys by lowercasing and turning the first
// underscore after the prefix into a dot, so section-level keys may keep
// underscores: EDGEAUTH_TOKEN_FIELD_DELIMITER -> token.field_delimiter.
package confloader
