package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestPutGetJSON(t *testing.T) {
	mr, adapter := newRedis(t)
	ctx := context.Background()

	require.NoError(t, PutJSON(ctx, adapter, "k", sample{Name: "latte", Count: 2}, 0))

	raw, err := mr.Get("k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"data":{"name":"latte","count":2}}`, raw)

	var got sample
	found, err := GetJSON(ctx, adapter, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "latte", Count: 2}, got)
}

func TestGetJSON_Missing(t *testing.T) {
	_, adapter := newRedis(t)

	var got sample
	found, err := GetJSON(context.Background(), adapter, "absent", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_Corrupt(t *testing.T) {
	cases := map[string]string{
		"NotJSON":      `{{{`,
		"NoEnvelope":   `[1,2,3]`,
		"WrongPayload": `{"v":1,"data":{"name":5}}`,
	}

	for name, stored := range cases {
		t.Run(name, func(t *testing.T) {
			mr := miniredis.RunT(t)
			adapter, err := NewRedisAdapter("redis://" + mr.Addr())
			require.NoError(t, err)
			defer adapter.Close()

			require.NoError(t, mr.Set("k", stored))

			var got sample
			found, err := GetJSON(context.Background(), adapter, "k", &got)
			assert.False(t, found)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
