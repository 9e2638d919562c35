// Package config loads the bellmanford CLI settings from an optional YAML
// file. Missing keys keep their defaults; command-line flags are applied on
// top by the caller.
//
// Example file:
//
//	source: v0
//	workers: 4
//	log_level: debug
//	acyclic: false
//	metrics: true
//	trace: false
package config
