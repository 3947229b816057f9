package mqtt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mwade84/servolink/internal/infrastructure/config"
)

// testConfig returns a valid MQTT configuration for testing.
func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     1883,
			ClientID: "servolink-test",
			TLS:      false,
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     5,
		},
	}
}

func TestCloseNil(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on unconnected client error = %v, want nil", err)
	}
}

func TestHealthCheckDisconnected(t *testing.T) {
	client := &Client{cfg: testConfig()}

	err := client.HealthCheck(context.Background())
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
}

func TestHealthCheckCancelled(t *testing.T) {
	client := &Client{cfg: testConfig()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() expected error for cancelled context")
	}
}

func TestPublishValidation(t *testing.T) {
	client := &Client{cfg: testConfig()}

	tests := []struct {
		name    string
		topic   string
		payload []byte
		qos     byte
		wantErr error
	}{
		{"empty topic", "", []byte("x"), 1, ErrInvalidTopic},
		{"invalid qos", "servolink/actuator/state", []byte("x"), 3, ErrInvalidQoS},
		{"oversized payload", "servolink/actuator/state", make([]byte, maxPayloadSize+1), 1, ErrPublishFailed},
		{"not connected", "servolink/actuator/state", []byte("x"), 1, ErrNotConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Publish(tt.topic, tt.payload, tt.qos, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Publish() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTopics(t *testing.T) {
	topics := Topics{}

	if got := topics.ActuatorState(); got != "servolink/actuator/state" {
		t.Errorf("ActuatorState() = %q, want %q", got, "servolink/actuator/state")
	}
	if got := topics.SystemStatus(); got != "servolink/system/status" {
		t.Errorf("SystemStatus() = %q, want %q", got, "servolink/system/status")
	}
}

func TestBuildClientOptions(t *testing.T) {
	t.Run("plain broker URL", func(t *testing.T) {
		opts := buildClientOptions(testConfig())

		if len(opts.Servers) != 1 {
			t.Fatalf("len(Servers) = %d, want 1", len(opts.Servers))
		}
		if got := opts.Servers[0].String(); got != "tcp://127.0.0.1:1883" {
			t.Errorf("broker URL = %q, want %q", got, "tcp://127.0.0.1:1883")
		}
		if opts.ClientID != "servolink-test" {
			t.Errorf("ClientID = %q, want %q", opts.ClientID, "servolink-test")
		}
	})

	t.Run("tls uses ssl scheme", func(t *testing.T) {
		cfg := testConfig()
		cfg.Broker.TLS = true

		opts := buildClientOptions(cfg)
		if got := opts.Servers[0].Scheme; got != "ssl" {
			t.Errorf("scheme = %q, want %q", got, "ssl")
		}
	})

	t.Run("credentials applied", func(t *testing.T) {
		cfg := testConfig()
		cfg.Auth.Username = "servo"
		cfg.Auth.Password = "secret"

		opts := buildClientOptions(cfg)
		if opts.Username != "servo" {
			t.Errorf("Username = %q, want %q", opts.Username, "servo")
		}
		if opts.Password != "secret" {
			t.Errorf("Password = %q, want %q", opts.Password, "secret")
		}
	})
}

func TestStatusPayloads(t *testing.T) {
	online := buildOnlinePayload("servolink-core")
	if !strings.Contains(online, `"status":"online"`) {
		t.Errorf("online payload missing status: %s", online)
	}
	if !strings.Contains(online, `"client_id":"servolink-core"`) {
		t.Errorf("online payload missing client_id: %s", online)
	}

	offline := buildOfflinePayload("servolink-core")
	if !strings.Contains(offline, `"reason":"graceful_shutdown"`) {
		t.Errorf("offline payload missing reason: %s", offline)
	}
}
