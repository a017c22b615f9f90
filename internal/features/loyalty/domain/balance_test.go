package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance_Decode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		points  int
		level   *Level
	}{
		{name: "StringLevel", payload: `{"points":1250,"level":"Gold"}`, points: 1250, level: &Level{Name: "Gold"}},
		{name: "ObjectLevel", payload: `{"points":40,"level":{"name":"Новичок","color":"#95a5a6"}}`, points: 40, level: &Level{Name: "Новичок", Color: "#95a5a6"}},
		{name: "NullLevel", payload: `{"points":0,"level":null}`, points: 0},
		{name: "NoLevel", payload: `{"points":7}`, points: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Balance
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &b))
			assert.Equal(t, tt.points, b.Points)
			assert.Equal(t, tt.level, b.Level)
		})
	}
}

func TestBalance_MaxDiscount(t *testing.T) {
	assert.Equal(t, 12, Balance{Points: 1250}.MaxDiscount(100))
	assert.Equal(t, 0, Balance{Points: 99}.MaxDiscount(100))
	assert.Equal(t, 0, Balance{Points: -300}.MaxDiscount(100))
	assert.Equal(t, 0, Balance{Points: 500}.MaxDiscount(0))
}
