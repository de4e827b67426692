package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title String `json:"title"`
}

func TestStringStates(t *testing.T) {
	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Title.Present())
	_, ok := absent.Title.NonNull()
	assert.False(t, ok)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &null))
	assert.True(t, null.Title.Present())
	assert.Nil(t, null.Title.Value)
	assert.False(t, null.Title.Truthy())

	var empty payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":""}`), &empty))
	assert.True(t, empty.Title.Present())
	assert.False(t, empty.Title.Truthy())
	v, ok := empty.Title.NonNull()
	assert.True(t, ok)
	assert.Equal(t, "", *v)

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"title":"X"}`), &set))
	assert.True(t, set.Title.Truthy())
	assert.Equal(t, "X", *set.Title.Value)
}

func TestStringRejectsNonString(t *testing.T) {
	var p payload
	require.Error(t, json.Unmarshal([]byte(`{"title":42}`), &p))
}
