// Package logging provides structured logging for ServoLink Core.
//
// Built on log/slog, it adds:
//   - Configuration-driven format (JSON or text) and level filtering
//   - Default fields (service name, version) on every record
//   - A Default() logger for early startup before config is loaded
//
// Credentials never appear in log output: handlers log emails and user
// IDs, never passwords or tokens.
package logging
