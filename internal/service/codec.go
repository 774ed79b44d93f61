package service

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// JSONCodec lets Connect carry plain Go structs as application/json.
// It replaces the protobuf JSON codec, so the messages in this package need
// no generated code.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

// Name is the Connect codec name; it selects the "application/json" content type.
func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("invalid JSON message: %w", err)
	}
	return nil
}
