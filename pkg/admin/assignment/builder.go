// FILE: pkg/admin/assignment/builder.go
package assignment

import (
	"sort"
	"strconv"

	"ai-character-admin-be/internal/entity"
	"ai-character-admin-be/internal/pkg/apperrors"

	"github.com/google/uuid"
)

// Catalog is the snapshot of reference data a bundle is validated
// against. The engine loads it once per call; a feature deleted after
// the snapshot is an accepted race, caught on the next submission.
type Catalog struct {
	DisplayFeatures map[uuid.UUID]*entity.DisplayFeature
	SystemFeatures  map[uuid.UUID]*entity.SystemFeature
	Characters      map[string]*entity.Character
}

// BundleBuilder assembles a complete feature bundle and validates it in
// one pass against a catalog snapshot. Nothing is persisted until
// Build returns without error; a failed build reports every field
// problem at once.
type BundleBuilder struct {
	displayIds   []uuid.UUID
	systemValues map[uuid.UUID]interface{}
	limits       map[string]limitInput
}

type limitInput struct {
	messageLimit interface{}
	tokenLimit   interface{}
	priority     int
}

// NewBundleBuilder creates an empty builder.
func NewBundleBuilder() *BundleBuilder {
	return &BundleBuilder{
		systemValues: make(map[uuid.UUID]interface{}),
		limits:       make(map[string]limitInput),
	}
}

// DisplayFeatures sets the selected display feature ids, in submission
// order.
func (b *BundleBuilder) DisplayFeatures(ids ...uuid.UUID) *BundleBuilder {
	b.displayIds = append(b.displayIds, ids...)
	return b
}

// SystemValue sets the raw value for one system feature. The value is
// type-checked against the feature's declared type at Build time.
func (b *BundleBuilder) SystemValue(featureId uuid.UUID, value interface{}) *BundleBuilder {
	b.systemValues[featureId] = value
	return b
}

// CharacterLimit sets the raw per-character cap. Limits may be numbers
// or the unlimited sentinel; both are parsed at Build time.
func (b *BundleBuilder) CharacterLimit(characterId string, messageLimit, tokenLimit interface{}, priority int) *BundleBuilder {
	b.limits[characterId] = limitInput{
		messageLimit: messageLimit,
		tokenLimit:   tokenLimit,
		priority:     priority,
	}
	return b
}

// Build validates every part of the bundle against the catalog and
// returns the normalized bundle. On failure it returns an aggregate
// ValidationError carrying one entry per invalid field.
func (b *BundleBuilder) Build(catalog Catalog) (entity.FeatureBundle, error) {
	var errs apperrors.Collector

	bundle := entity.FeatureBundle{
		DisplayFeatureIds:   make([]uuid.UUID, 0, len(b.displayIds)),
		SystemFeatureValues: make(map[uuid.UUID]interface{}, len(b.systemValues)),
		CharacterLimits:     make(map[string]entity.CharacterLimit, len(b.limits)),
	}

	seen := make(map[uuid.UUID]int, len(b.displayIds))
	for i, id := range b.displayIds {
		if _, dup := seen[id]; dup {
			errs.Addf(displayFieldKey(i), "duplicate display feature id '%s'", id)
			continue
		}
		seen[id] = i
		if _, ok := catalog.DisplayFeatures[id]; !ok {
			errs.Addf(displayFieldKey(i), "display feature '%s' does not exist", id)
			continue
		}
		bundle.DisplayFeatureIds = append(bundle.DisplayFeatureIds, id)
	}

	for _, featureId := range sortedFeatureIds(b.systemValues) {
		feature, ok := catalog.SystemFeatures[featureId]
		if !ok {
			errs.Addf(featureId.String(), "system feature '%s' does not exist", featureId)
			continue
		}
		normalized, err := entity.NormalizeFeatureValue(feature, b.systemValues[featureId])
		if err != nil {
			errs.Add(featureId.String(), err.Error())
			continue
		}
		bundle.SystemFeatureValues[featureId] = normalized
	}

	for _, characterId := range sortedCharacterIds(b.limits) {
		in := b.limits[characterId]
		if _, ok := catalog.Characters[characterId]; !ok {
			errs.Addf(characterId, "character '%s' does not exist", characterId)
			continue
		}

		valid := true
		limit := entity.CharacterLimit{Priority: in.priority}

		if msg, err := entity.ParseLimitValue(in.messageLimit); err != nil {
			errs.Add(characterId+".message_limit", err.Error())
			valid = false
		} else {
			limit.MessageLimit = msg
		}
		if tok, err := entity.ParseLimitValue(in.tokenLimit); err != nil {
			errs.Add(characterId+".token_limit", err.Error())
			valid = false
		} else {
			limit.TokenLimit = tok
		}
		if in.priority < entity.MinCharacterPriority || in.priority > entity.MaxCharacterPriority {
			errs.Addf(characterId+".priority", "must be between %d and %d", entity.MinCharacterPriority, entity.MaxCharacterPriority)
			valid = false
		}

		if valid {
			bundle.CharacterLimits[characterId] = limit
		}
	}

	if err := errs.Err(); err != nil {
		return entity.FeatureBundle{}, err
	}
	return bundle, nil
}

func displayFieldKey(i int) string {
	return "display_feature_ids[" + strconv.Itoa(i) + "]"
}

func sortedFeatureIds(values map[uuid.UUID]interface{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func sortedCharacterIds(limits map[string]limitInput) []string {
	ids := make([]string, 0, len(limits))
	for id := range limits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
