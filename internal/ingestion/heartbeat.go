// Package ingestion receives tracker heartbeats over MQTT and records the
// last contact time of each device. It is optional: the listener is only
// started when a broker is configured.
package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"tracker-rental/internal/config"
	deviceRepository "tracker-rental/internal/device/repository"
	"tracker-rental/internal/logger"
	"tracker-rental/pkg/apierr"
	pkgmqtt "tracker-rental/pkg/mqtt"
	"tracker-rental/pkg/utils"
)

const defaultHeartbeatTopic = "rastreadores/+/heartbeat"

type heartbeatMessage struct {
	MacAddress string `json:"macAddress"`
}

// HeartbeatListener subscribes to the heartbeat topic and updates the
// matching device's last contact timestamp.
type HeartbeatListener struct {
	client  *pkgmqtt.Client
	topic   string
	qos     byte
	devices deviceRepository.DeviceRepository

	mu      sync.Mutex
	started bool
}

func NewHeartbeatListener(cfg *config.MQTTConfig, devices deviceRepository.DeviceRepository) (*HeartbeatListener, error) {
	if cfg == nil || cfg.Broker == "" {
		return nil, errors.New("mqtt broker is not configured")
	}
	if devices == nil {
		return nil, errors.New("device repository is required")
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "tracker-rental-ingestion"
	}
	topic := cfg.HeartbeatTopic
	if topic == "" {
		topic = defaultHeartbeatTopic
	}

	client := pkgmqtt.NewClient(&pkgmqtt.Config{
		Broker:               cfg.Broker,
		ClientID:             clientID,
		Username:             cfg.Username,
		Password:             cfg.Password,
		CleanSession:         true,
		KeepAlive:            30,
		ConnectTimeout:       10,
		AutoReconnect:        true,
		MaxReconnectInterval: time.Minute,
	})

	return &HeartbeatListener{
		client:  client,
		topic:   topic,
		qos:     byte(cfg.QoS),
		devices: devices,
	}, nil
}

// Start connects to the broker and subscribes to the heartbeat topic.
func (l *HeartbeatListener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return nil
	}

	if err := l.client.Connect(); err != nil {
		return err
	}
	if err := l.client.Subscribe(l.topic, l.qos, l.handleHeartbeat); err != nil {
		l.client.Disconnect()
		return err
	}

	l.started = true
	return nil
}

// Stop disconnects from the broker.
func (l *HeartbeatListener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.started {
		return
	}
	l.client.Disconnect()
	l.started = false
}

func (l *HeartbeatListener) handleHeartbeat(topic string, payload []byte) {
	var msg heartbeatMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		logger.Warn("Discarding malformed heartbeat",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}
	if msg.MacAddress == "" {
		logger.Warn("Discarding heartbeat without MAC address", zap.String("topic", topic))
		return
	}

	mac := utils.NormalizeMACAddress(msg.MacAddress)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := l.devices.UpdateLastContact(ctx, mac, time.Now())
	if err != nil {
		var apiErr *apierr.APIError
		if errors.As(err, &apiErr) {
			logger.Warn("Heartbeat from unknown device", zap.String("mac_address", mac))
			return
		}
		logger.Error("Failed to record heartbeat",
			zap.String("mac_address", mac),
			zap.Error(err),
		)
		return
	}

	logger.Debug("Heartbeat recorded", zap.String("mac_address", mac))
}
