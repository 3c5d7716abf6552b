// Package infra contains technical adapters such as the terminal console,
// the zerolog logger and metrics sinks. These packages should depend only on
// the interfaces defined in the core packages.
package infra
