// Package rpcutil holds connect plumbing shared by services that exchange
// plain Go structs instead of generated protobuf messages.
package rpcutil

import (
	"encoding/json"
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

// JSONCodec replaces connect's protojson codec for the "json" content type.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal json message: %w", err)
	}
	return nil
}

// HandlerOptions are applied to every handler built on JSONCodec.
func HandlerOptions(opts ...connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// ClientOptions configure a connect client to speak the JSON codec.
func ClientOptions(opts ...connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// CodeFor maps err onto a connect code using the given sentinel table,
// falling back to CodeInternal.
func CodeFor(err error, table map[error]connect.Code) connect.Code {
	for sentinel, code := range table {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return connect.CodeInternal
}
