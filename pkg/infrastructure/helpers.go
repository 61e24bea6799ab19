package infrastructure

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/viajabus/booking/pkg/domain"
)

// NewMessageID generates the identifier attached to every bus message.
var NewMessageID domain.IDGenerator[string] = func() string {
	return uuid.New().String()
}

// MarshalPayload serializes a message payload for the wire.
func MarshalPayload[T any](payload T) ([]byte, error) {
	return json.Marshal(payload)
}
