// FILE: internal/entity/feature_value.go
// Type-checking and normalization of system feature values. Used both
// when a default value is authored in the catalog and when the plan
// assignment engine validates a submitted bundle.
package entity

import (
	"fmt"
)

// NormalizeFeatureValue type-checks raw (a decoded JSON value) against
// the feature's declared type and returns its canonical form:
// bool for boolean features, LimitValue for limit features and []string
// for list features. The returned error carries the reason only; callers
// attach the field path.
func NormalizeFeatureValue(feature *SystemFeature, raw interface{}) (interface{}, error) {
	switch feature.Type {
	case FeatureTypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("must be true or false")
		}
		return b, nil

	case FeatureTypeLimit:
		limit, err := ParseLimitValue(raw)
		if err != nil {
			return nil, err
		}
		return limit, nil

	case FeatureTypeList:
		tokens, err := toStringSlice(raw)
		if err != nil {
			return nil, err
		}
		if len(feature.AllowedValues) > 0 {
			allowed := make(map[string]struct{}, len(feature.AllowedValues))
			for _, v := range feature.AllowedValues {
				allowed[v] = struct{}{}
			}
			for _, token := range tokens {
				if _, ok := allowed[token]; !ok {
					return nil, fmt.Errorf("token '%s' is not in the allowed vocabulary", token)
				}
			}
		}
		return tokens, nil

	default:
		return nil, fmt.Errorf("unknown feature type '%s'", feature.Type)
	}
}

func toStringSlice(raw interface{}) ([]string, error) {
	switch val := raw.(type) {
	case []string:
		return val, nil
	case []interface{}:
		tokens := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("must be a list of strings")
			}
			tokens = append(tokens, s)
		}
		return tokens, nil
	default:
		return nil, fmt.Errorf("must be a list of strings")
	}
}
