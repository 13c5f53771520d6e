package metric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsFinite(t *testing.T) {
	var v Value
	assert.False(t, v.IsUnbounded())

	f, ok := v.Float64()
	assert.True(t, ok)
	assert.Equal(t, 0.0, f)
}

func TestValue_UnboundedNormalizesToZero(t *testing.T) {
	v := Unbounded()

	_, ok := v.Float64()
	assert.False(t, ok)
	assert.Equal(t, 0.0, v.OrZero())
	assert.Equal(t, "∞", v.String())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "1.25", Finite(1.25).String())
	assert.Equal(t, "125", Finite(125).String())
}

func TestValue_JSON(t *testing.T) {
	type payload struct {
		LTV   Value `json:"ltv"`
		Ratio Value `json:"ratio"`
	}

	out, err := json.Marshal(payload{LTV: Unbounded(), Ratio: Finite(16)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ltv":"unbounded","ratio":16}`, string(out))

	var back payload
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.LTV.IsUnbounded())
	assert.Equal(t, 16.0, back.Ratio.OrZero())

	var bad Value
	assert.Error(t, json.Unmarshal([]byte(`"infinite"`), &bad))
}
