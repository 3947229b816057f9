// Package mqtt provides MQTT client connectivity for ServoLink Core.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Retained state publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// ServoLink publishes the actuator state to the broker whenever an
// authenticated client changes it. The retained message means any device
// or dashboard that subscribes later immediately learns the current state
// without touching the HTTP API.
//
//	ServoLink Core → MQTT Broker → Actuator firmware / dashboards
//
// The client is publish-only: nothing in Core consumes broker traffic,
// so there is no subscription machinery to restore on reconnect.
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Publish actuator state (retained)
//	client.PublishRetained(mqtt.Topics{}.ActuatorState(), []byte(`{"state":"ON"}`))
package mqtt
