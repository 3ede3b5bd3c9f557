package rpcutil

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec(t *testing.T) {
	type msg struct {
		ID int64 `json:"id"`
	}
	codec := JSONCodec{}
	assert.Equal(t, "json", codec.Name())

	data, err := codec.Marshal(msg{ID: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7}`, string(data))

	var out msg
	require.NoError(t, codec.Unmarshal(nil, &out))
	assert.Zero(t, out.ID)
	assert.Error(t, codec.Unmarshal([]byte("{"), &out))
}

func TestCodeFor(t *testing.T) {
	notFound := errors.New("missing")
	table := map[error]connect.Code{notFound: connect.CodeNotFound}

	assert.Equal(t, connect.CodeNotFound, CodeFor(fmt.Errorf("wrap: %w", notFound), table))
	assert.Equal(t, connect.CodeInternal, CodeFor(errors.New("other"), table))
}
