// Package actuator holds the shared servo state for ServoLink Core.
//
// The servo is a single binary actuator: it is either ON or OFF. The
// Holder is the in-process source of truth; persistence layers (MQTT
// retained messages, InfluxDB history, the audit trail) observe changes
// but never drive them.
//
// Writes are last-write-wins with no versioning. Concurrent setters are
// serialised by the Holder's lock and readers always observe one of the
// two valid states, never a torn value.
package actuator
