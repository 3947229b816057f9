package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mwade84/servolink/internal/actuator"
	"github.com/mwade84/servolink/internal/audit"
	"github.com/mwade84/servolink/internal/infrastructure/mqtt"
)

// servoRequest is the request body for POST /servo.
type servoRequest struct {
	State string `json:"state"`
}

// servoStateResponse is the response body for GET /servo.
type servoStateResponse struct {
	State actuator.State `json:"state"`
}

// statePayload is the JSON published to the retained MQTT state topic and
// broadcast to WebSocket subscribers.
type statePayload struct {
	State actuator.State `json:"state"`
}

// handleSetServo changes the servo state. Requires authentication.
//
// A rejected state string leaves the current state untouched. An accepted
// write updates the shared holder, then fans out to MQTT (retained),
// InfluxDB, the WebSocket hub, and the audit trail. Fan-out failures are
// logged but never fail the request: the holder is the source of truth.
func (s *Server) handleSetServo(w http.ResponseWriter, r *http.Request) {
	var req servoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	state, err := actuator.ParseState(req.State)
	if err != nil {
		writeBadRequest(w, "Invalid state")
		return
	}

	s.servo.Set(state)

	var userID string
	if claims := claimsFromContext(r.Context()); claims != nil {
		userID = claims.Subject
	}

	s.publishState(state)
	if s.influx != nil {
		s.influx.WriteActuatorState(string(state), userID)
	}
	if s.hub != nil {
		s.hub.Broadcast(statePayload{State: state})
	}
	s.auditLog(audit.AuditLog{
		Action:     audit.ActionServoSet,
		EntityType: "actuator",
		EntityID:   "servo",
		UserID:     userID,
		Source:     "api",
		Details:    map[string]any{"state": string(state)},
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Servo set to %s", state),
	})
}

// handleGetServo returns the current servo state. No authentication:
// only changing the state is gated.
func (s *Server) handleGetServo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, servoStateResponse{State: s.servo.Get()})
}

// publishState pushes the new state to the retained MQTT topic so the
// actuator firmware and late-joining dashboards see it immediately.
func (s *Server) publishState(state actuator.State) {
	if s.mqtt == nil {
		return
	}

	payload, err := json.Marshal(statePayload{State: state})
	if err != nil {
		return
	}
	topic := mqtt.Topics{}.ActuatorState()
	if err := s.mqtt.PublishRetained(topic, payload); err != nil {
		s.logger.Warn("state publish failed", "topic", topic, "error", err)
	}
}
