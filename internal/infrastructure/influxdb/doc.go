// Package influxdb provides InfluxDB connectivity for ServoLink Core.
//
// It wraps the official influxdb-client-go v2 library with ServoLink-specific
// patterns for connection management, state recording, and health monitoring.
//
// # Purpose
//
// This package records the actuator state history as time-series data so
// operators can chart when the servo was switched and by whom.
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    URL:    "http://localhost:8086",
//	    Token:  "your-token",
//	    Org:    "servolink",
//	    Bucket: "telemetry",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteActuatorState("ON", "usr-a1b2c3d4")
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are logged via a callback.
// Connection and health check errors are returned directly.
package influxdb
