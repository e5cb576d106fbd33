// FILE: internal/entity/limit_value_test.go
package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimitValue_Sentinel(t *testing.T) {
	v, err := ParseLimitValue("unlimited")
	assert.NoError(t, err)
	assert.True(t, v.Unlimited)
}

func TestParseLimitValue_Numbers(t *testing.T) {
	v, err := ParseLimitValue(float64(50))
	assert.NoError(t, err)
	assert.False(t, v.Unlimited)
	assert.Equal(t, int64(50), v.Value)

	v, err = ParseLimitValue(0)
	assert.NoError(t, err)
	assert.True(t, v.IsZero())

	v, err = ParseLimitValue(int64(7))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v.Value)
}

func TestParseLimitValue_Rejects(t *testing.T) {
	_, err := ParseLimitValue(float64(-1))
	assert.Error(t, err)

	_, err = ParseLimitValue(float64(1.5))
	assert.Error(t, err)

	_, err = ParseLimitValue("infinite")
	assert.Error(t, err)

	_, err = ParseLimitValue(true)
	assert.Error(t, err)
}

func TestParseLimitValue_Passthrough(t *testing.T) {
	v, err := ParseLimitValue(Unlimited())
	assert.NoError(t, err)
	assert.True(t, v.Unlimited)
}

func TestLimitValue_ZeroIsNotUnlimited(t *testing.T) {
	zero := Limited(0)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.Unlimited)
	assert.NotEqual(t, Unlimited(), zero)
}

func TestLimitValue_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Unlimited())
	assert.NoError(t, err)
	assert.Equal(t, `"unlimited"`, string(data))

	data, err = json.Marshal(Limited(100))
	assert.NoError(t, err)
	assert.Equal(t, `100`, string(data))

	var v LimitValue
	assert.NoError(t, json.Unmarshal([]byte(`"unlimited"`), &v))
	assert.True(t, v.Unlimited)

	assert.NoError(t, json.Unmarshal([]byte(`25`), &v))
	assert.Equal(t, Limited(25), v)

	assert.Error(t, json.Unmarshal([]byte(`-3`), &v))
}
