package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteActuatorState records an actuator state change.
//
// The write is non-blocking; data is batched and sent asynchronously.
// The state is stored as 1.0 for ON and 0.0 for OFF so dashboards can
// chart it as a step function.
//
// Parameters:
//   - state: The new actuator state ("ON" or "OFF")
//   - userID: The user who made the change (empty for system writes)
func (c *Client) WriteActuatorState(state string, userID string) {
	value := 0.0
	if state == "ON" {
		value = 1.0
	}

	tags := map[string]string{
		"state": state,
	}
	if userID != "" {
		tags["user_id"] = userID
	}

	c.WritePoint("actuator_state", tags, map[string]interface{}{
		"value": value,
	})
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
