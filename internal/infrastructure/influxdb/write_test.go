package influxdb

import "testing"

// Writes on a disconnected client must be silent no-ops: telemetry is
// best-effort and must never panic or block the request path.
func TestWriteActuatorState_Disconnected(t *testing.T) {
	c := &Client{}

	c.WriteActuatorState("ON", "usr-12345678")
	c.WriteActuatorState("OFF", "")
}

func TestWritePoint_Disconnected(t *testing.T) {
	c := &Client{}

	c.WritePoint("actuator_state",
		map[string]string{"state": "ON"},
		map[string]interface{}{"value": 1.0},
	)
}
