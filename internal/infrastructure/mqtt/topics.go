package mqtt

import "fmt"

// Topic prefixes for ServoLink MQTT traffic.
//
// All topics live under a single servolink/ namespace so broker ACLs can
// grant the actuator firmware read access to exactly one subtree.
const (
	// TopicPrefix is the base for all ServoLink topics.
	TopicPrefix = "servolink"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "servolink/system"
)

// Topics provides builders for ServoLink MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
type Topics struct{}

// ActuatorState returns the retained actuator state topic.
//
// Example: servolink/actuator/state
func (Topics) ActuatorState() string {
	return fmt.Sprintf("%s/actuator/state", TopicPrefix)
}

// SystemStatus returns the system status topic.
// Carries online/offline payloads, including the LWT.
//
// Example: servolink/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
