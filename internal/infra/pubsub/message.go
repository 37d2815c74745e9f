// Package pubsub publishes account link messages to a queue drained by the mail worker.
package pubsub

import (
	"encoding/json"

	"mdr/internal/domain/entity"
	"mdr/internal/errors"
)

// Message attribute keys shared by all publishers and the worker.
const (
	AttrPurpose   = "purpose"
	AttrRequestID = "request_id"
)

// PushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EncodeLinkMessage serialises a link message and its routing attributes.
func EncodeLinkMessage(msg *entity.LinkMessage) ([]byte, map[string]string, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrPurpose: msg.Purpose.String(),
	}
	if msg.RequestID != "" {
		attributes[AttrRequestID] = msg.RequestID
	}

	return data, attributes, nil
}

// DecodeLinkMessage parses a payload produced by EncodeLinkMessage.
func DecodeLinkMessage(data []byte) (*entity.LinkMessage, error) {
	var msg entity.LinkMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.Wrap(err, "decode link message")
	}
	if !msg.Purpose.IsValid() {
		return nil, errors.Errorf("unknown link purpose %q", msg.Purpose)
	}
	if msg.To == "" || msg.Link == "" {
		return nil, errors.New("link message missing recipient or link")
	}

	return &msg, nil
}
