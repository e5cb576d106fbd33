// FILE: internal/entity/assignment_entity.go
// Domain entities for plan feature assignment bundles
package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Priority bounds accepted for character limits. Lower value means the
// character is served first when the plan is over capacity.
const (
	MinCharacterPriority = 0
	MaxCharacterPriority = 1000
)

// CharacterLimit is the per-character access cap inside a plan bundle.
type CharacterLimit struct {
	MessageLimit LimitValue `json:"message_limit"`
	TokenLimit   LimitValue `json:"token_limit"`
	Priority     int        `json:"priority"`
}

// FeatureBundle is the complete set of feature selections, typed values
// and character limits assigned to one plan. It is the unit of
// consistency: saves replace the stored bundle wholesale.
type FeatureBundle struct {
	DisplayFeatureIds   []uuid.UUID
	SystemFeatureValues map[uuid.UUID]interface{}
	CharacterLimits     map[string]CharacterLimit
}

// SortedCharacterIds returns the character ids of the bundle in ascending
// order. Validation and conflict reporting iterate in this order so output
// is deterministic.
func (b *FeatureBundle) SortedCharacterIds() []string {
	ids := make([]string, 0, len(b.CharacterLimits))
	for id := range b.CharacterLimits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CharacterRank is one row of a ranked character preview.
type CharacterRank struct {
	CharacterId  string     `json:"character_id"`
	Priority     int        `json:"priority"`
	MessageLimit LimitValue `json:"message_limit"`
	TokenLimit   LimitValue `json:"token_limit"`
}

// RankCharacters orders the bundle's characters by priority ascending,
// breaking ties by character id ascending.
func (b *FeatureBundle) RankCharacters() []CharacterRank {
	ranks := make([]CharacterRank, 0, len(b.CharacterLimits))
	for id, lim := range b.CharacterLimits {
		ranks = append(ranks, CharacterRank{
			CharacterId:  id,
			Priority:     lim.Priority,
			MessageLimit: lim.MessageLimit,
			TokenLimit:   lim.TokenLimit,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Priority != ranks[j].Priority {
			return ranks[i].Priority < ranks[j].Priority
		}
		return ranks[i].CharacterId < ranks[j].CharacterId
	})
	return ranks
}

// PlanFeatureAssignment is the stored bundle for one plan.
type PlanFeatureAssignment struct {
	PlanId    uuid.UUID
	Bundle    FeatureBundle
	CreatedAt time.Time
	UpdatedAt time.Time
}
