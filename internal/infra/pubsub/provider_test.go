package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm/config"
	"crm/internal/domain/constants"
	"crm/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestEvent(t *testing.T) *service.Event {
	t.Helper()
	event, err := service.NewEvent(constants.EventReviewScrapeRequested, "user-1", "req-1",
		service.ScrapeRequestedPayload{GoogleMapsURL: "https://maps.google.com/?cid=1"})
	require.NoError(t, err)

	return event
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.Default(),
	})
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), newTestEvent(t)))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "rabbitmq without url", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.Default(),
			})
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	event := newTestEvent(t)

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, constants.EventReviewScrapeRequested, received.Message.Attributes["event_type"])
	assert.Equal(t, localSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.Event
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "user-1", decoded.UserID)
	assert.JSONEq(t, `{"google_maps_url":"https://maps.google.com/?cid=1"}`, string(decoded.Payload))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.Publish(context.Background(), newTestEvent(t))
	assert.ErrorContains(t, err, "503")
}

func TestQueueName(t *testing.T) {
	assert.Equal(t, defaultQueueName, QueueName(nil))
	assert.Equal(t, defaultQueueName, QueueName(&config.PubSubConfig{}))
	assert.Equal(t, "custom", QueueName(&config.PubSubConfig{Queue: "custom"}))
}
