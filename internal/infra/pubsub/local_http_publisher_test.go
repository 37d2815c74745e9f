package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mdr/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_SendLink(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := newLocalHTTPPublisher(server.URL, server.Client(), logger)

	msg := &entity.LinkMessage{
		Purpose:   entity.LinkPurposeAccountSetup,
		To:        "jane@example.org",
		Link:      "https://mdr.example.org/api/account/setup-password?email=jane%40example.org&token=t",
		RequestID: "req-42",
	}
	require.NoError(t, publisher.SendLink(context.Background(), msg))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "account_setup", received.Message.Attributes[AttrPurpose])
	assert.NotEmpty(t, received.Message.MessageID)

	decoded, err := DecodeLinkMessage(received.Message.Data)
	require.NoError(t, err)
	assert.Equal(t, msg.Link, decoded.Link)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := newLocalHTTPPublisher(server.URL, server.Client(), logger)

	err := publisher.SendLink(context.Background(), &entity.LinkMessage{
		Purpose: entity.LinkPurposeConfirmEmail,
		To:      "jane@example.org",
		Link:    "x",
	})
	assert.ErrorContains(t, err, "503")
}
