// FILE: internal/dto/assignment_dto.go
// DTOs for the bulk plan assignment operation
package dto

import "github.com/google/uuid"

// CharacterLimitInput carries raw JSON values so the engine can collect
// every type error in one pass instead of failing at decode time.
type CharacterLimitInput struct {
	MessageLimit interface{} `json:"message_limit"`
	TokenLimit   interface{} `json:"token_limit"`
	Priority     int         `json:"priority"`
}

// AssignPlanFeaturesRequest is the complete bundle submitted for one plan.
// The whole bundle is validated before anything is written.
type AssignPlanFeaturesRequest struct {
	DisplayFeatureIds   []uuid.UUID                    `json:"display_feature_ids"`
	SystemFeatureValues map[uuid.UUID]interface{}      `json:"system_feature_values"`
	CharacterLimits     map[string]CharacterLimitInput `json:"character_limits"`
}

type CharacterLimitResponse struct {
	MessageLimit interface{} `json:"message_limit"`
	TokenLimit   interface{} `json:"token_limit"`
	Priority     int         `json:"priority"`
}

type PlanAssignmentResponse struct {
	PlanId              uuid.UUID                         `json:"plan_id"`
	DisplayFeatureIds   []uuid.UUID                       `json:"display_feature_ids"`
	SystemFeatureValues map[uuid.UUID]interface{}         `json:"system_feature_values"`
	CharacterLimits     map[string]CharacterLimitResponse `json:"character_limits"`
}

// CharacterRankResponse is one row of the ranked preview: priority
// ascending, ties broken by character id.
type CharacterRankResponse struct {
	CharacterId  string      `json:"character_id"`
	Priority     int         `json:"priority"`
	MessageLimit interface{} `json:"message_limit"`
	TokenLimit   interface{} `json:"token_limit"`
}
