package bench

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestTrialJSON(t *testing.T) {
	t.Run("encoding a defined mean", func(t *testing.T) {
		data, err := json.Marshal(Trial{Index: 1, Samples: 100, MeanMicros: 2.5})
		assert.NoError(t, err)
		assert.JSONEq(t, `{"index":1,"samples":100,"mean_micros":2.5}`, string(data))
	})

	t.Run("encoding an undefined mean as null", func(t *testing.T) {
		data, err := json.Marshal(Trial{Index: 0, Samples: 0, MeanMicros: math.NaN()})
		assert.NoError(t, err)
		assert.JSONEq(t, `{"index":0,"samples":0,"mean_micros":null}`, string(data))
	})
}
