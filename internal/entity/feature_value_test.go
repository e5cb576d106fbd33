// FILE: internal/entity/feature_value_test.go
package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFeatureValue_Boolean(t *testing.T) {
	feature := &SystemFeature{Key: "nsfw_enabled", Type: FeatureTypeBoolean}

	v, err := NormalizeFeatureValue(feature, true)
	assert.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = NormalizeFeatureValue(feature, "true")
	assert.Error(t, err)

	_, err = NormalizeFeatureValue(feature, float64(1))
	assert.Error(t, err)
}

func TestNormalizeFeatureValue_Limit(t *testing.T) {
	feature := &SystemFeature{Key: "daily_message_limit", Type: FeatureTypeLimit}

	v, err := NormalizeFeatureValue(feature, float64(50))
	assert.NoError(t, err)
	assert.Equal(t, Limited(50), v)

	v, err = NormalizeFeatureValue(feature, "unlimited")
	assert.NoError(t, err)
	assert.Equal(t, Unlimited(), v)

	_, err = NormalizeFeatureValue(feature, float64(-5))
	assert.Error(t, err)
}

func TestNormalizeFeatureValue_List(t *testing.T) {
	feature := &SystemFeature{
		Key:           "voice_quality",
		Type:          FeatureTypeList,
		AllowedValues: []string{"standard", "premium"},
	}

	v, err := NormalizeFeatureValue(feature, []interface{}{"standard"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"standard"}, v)

	_, err = NormalizeFeatureValue(feature, []interface{}{"ultra"})
	assert.Error(t, err)

	_, err = NormalizeFeatureValue(feature, "standard")
	assert.Error(t, err)
}

func TestNormalizeFeatureValue_ListWithoutVocabulary(t *testing.T) {
	feature := &SystemFeature{Key: "tags", Type: FeatureTypeList}

	v, err := NormalizeFeatureValue(feature, []interface{}{"anything", "goes"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"anything", "goes"}, v)
}

func TestRankCharacters_Ordering(t *testing.T) {
	bundle := FeatureBundle{
		CharacterLimits: map[string]CharacterLimit{
			"zeta":  {MessageLimit: Limited(10), TokenLimit: Unlimited(), Priority: 1},
			"alpha": {MessageLimit: Limited(20), TokenLimit: Limited(5000), Priority: 1},
			"beta":  {MessageLimit: Unlimited(), TokenLimit: Unlimited(), Priority: 0},
		},
	}

	ranks := bundle.RankCharacters()
	assert.Len(t, ranks, 3)
	assert.Equal(t, "beta", ranks[0].CharacterId)
	// Equal priority falls back to character id ascending.
	assert.Equal(t, "alpha", ranks[1].CharacterId)
	assert.Equal(t, "zeta", ranks[2].CharacterId)
}
