package realtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/shared/realtime"
)

func TestNewEvent_Envelope(t *testing.T) {
	now := time.Date(2025, 1, 15, 13, 0, 0, 0, time.FixedZone("IST", 3600))

	event := realtime.NewEvent(realtime.EventOverstayFlagged, map[string]string{"reservation_id": "res-1"}, now)

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "overstay.flagged", decoded["type"])
	assert.Equal(t, map[string]any{"reservation_id": "res-1"}, decoded["payload"])

	meta, ok := decoded["meta"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, meta["event_id"])
	assert.Equal(t, "2025-01-15T12:00:00Z", meta["timestamp"])

	other := realtime.NewEvent(realtime.EventOverstayFlagged, nil, now)
	assert.NotEqual(t, event.Meta.EventID, other.Meta.EventID)
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "frontdesk.property.p-1", realtime.Channel("", "p-1"))
	assert.Equal(t, "hotel.p-1", realtime.Channel("hotel.", "p-1"))
}

func TestPublisher_KafkaDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Realtime.Driver = realtime.DriverKafka
	cfg.Kafka.Topic.Realtime = "frontdesk.realtime"

	publisher := realtime.New(cfg, nil, kafkaClient, otelMocks.NewOtel())

	now := time.Date(2025, 1, 15, 13, 0, 0, 0, time.UTC)
	flagged := realtime.NewEvent(realtime.EventOverstayFlagged, nil, now)
	updated := realtime.NewEvent(realtime.EventReservationUpdated, nil, now)

	gomock.InOrder(
		kafkaClient.EXPECT().SendMessages(gomock.Any(), "frontdesk.realtime", gomock.Any()).Return(nil),
		kafkaClient.EXPECT().SendMessages(gomock.Any(), "frontdesk.realtime", gomock.Any()).Return(nil),
	)

	assert.NoError(t, publisher.Publish(context.Background(), "p-1", flagged, updated))
}

func TestPublisher_StopsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Realtime.Driver = realtime.DriverKafka

	publisher := realtime.New(cfg, nil, kafkaClient, otelMocks.NewOtel())

	kafkaClient.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(1)

	now := time.Now()
	err := publisher.Publish(context.Background(), "p-1",
		realtime.NewEvent(realtime.EventOverstayResolved, nil, now),
		realtime.NewEvent(realtime.EventReservationUpdated, nil, now),
	)

	assert.Error(t, err)
}

func TestPublisher_LogDriverIsDefault(t *testing.T) {
	publisher := realtime.New(&config.Config{}, nil, nil, otelMocks.NewOtel())

	err := publisher.Publish(context.Background(), "p-1", realtime.NewEvent(realtime.EventOverstayDismissed, nil, time.Now()))

	assert.NoError(t, err)
}
