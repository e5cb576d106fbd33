// FILE: internal/entity/limit_value.go
// LimitValue models a numeric cap that may be boundless. The unlimited
// sentinel is distinct from zero: zero means "none allowed", unlimited
// means "no cap at all".
package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

// UnlimitedToken is the wire representation of a boundless limit.
const UnlimitedToken = "unlimited"

// LimitValue is either a non-negative integer cap or unlimited.
type LimitValue struct {
	Unlimited bool
	Value     int64
}

// Limited returns a bounded LimitValue.
func Limited(n int64) LimitValue {
	return LimitValue{Value: n}
}

// Unlimited returns the boundless LimitValue.
func Unlimited() LimitValue {
	return LimitValue{Unlimited: true}
}

// IsZero reports whether the limit is the bounded zero cap.
func (v LimitValue) IsZero() bool {
	return !v.Unlimited && v.Value == 0
}

func (v LimitValue) String() string {
	if v.Unlimited {
		return UnlimitedToken
	}
	return fmt.Sprintf("%d", v.Value)
}

// MarshalJSON writes the sentinel string for unlimited values and a
// plain number otherwise.
func (v LimitValue) MarshalJSON() ([]byte, error) {
	if v.Unlimited {
		return json.Marshal(UnlimitedToken)
	}
	return json.Marshal(v.Value)
}

func (v *LimitValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLimitValue(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseLimitValue converts a decoded JSON value into a LimitValue. It
// accepts the unlimited sentinel string, a non-negative integral number
// (JSON numbers decode as float64) or an existing LimitValue.
func ParseLimitValue(raw interface{}) (LimitValue, error) {
	switch val := raw.(type) {
	case LimitValue:
		return val, nil
	case string:
		if val == UnlimitedToken {
			return Unlimited(), nil
		}
		return LimitValue{}, fmt.Errorf("must be a non-negative integer or '%s'", UnlimitedToken)
	case float64:
		if val != math.Trunc(val) {
			return LimitValue{}, fmt.Errorf("must be an integer, got %v", val)
		}
		if val < 0 {
			return LimitValue{}, fmt.Errorf("must be non-negative, got %v", val)
		}
		return Limited(int64(val)), nil
	case int:
		if val < 0 {
			return LimitValue{}, fmt.Errorf("must be non-negative, got %d", val)
		}
		return Limited(int64(val)), nil
	case int64:
		if val < 0 {
			return LimitValue{}, fmt.Errorf("must be non-negative, got %d", val)
		}
		return Limited(val), nil
	default:
		return LimitValue{}, fmt.Errorf("must be a non-negative integer or '%s'", UnlimitedToken)
	}
}
