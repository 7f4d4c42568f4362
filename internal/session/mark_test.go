package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_ToggleCycle(t *testing.T) {
	m := MarkUnset
	m = m.Next()
	assert.Equal(t, MarkExcluded, m)
	m = m.Next()
	assert.Equal(t, MarkIncluded, m)
	m = m.Next()
	assert.Equal(t, MarkUnset, m)
}

func TestMark_JSONRoundTrip(t *testing.T) {
	in := []Mark{MarkUnset, MarkExcluded, MarkIncluded}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["unset","excluded","included"]`, string(data))

	var out []Mark
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestMark_UnknownValueDegradesToUnset(t *testing.T) {
	var out []Mark
	require.NoError(t, json.Unmarshal([]byte(`["green","bogus",""]`), &out))
	assert.Equal(t, []Mark{MarkUnset, MarkUnset, MarkUnset}, out)
}
