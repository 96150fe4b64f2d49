package extract

import (
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/lookup"
)

// FeatureActivation maps how a feature is activated
func FeatureActivation(def *ddb.FeatureDefinition) *vtt.Activation {
	if def.Activation == nil {
		return &vtt.Activation{Type: lookup.ActivationNone}
	}
	var cost *int
	if def.Activation.ActivationTime != nil {
		cost = positive(*def.Activation.ActivationTime)
	}
	return &vtt.Activation{
		Type: lookup.ActivationForID(def.Activation.ActivationType),
		Cost: cost,
	}
}

// FeatureUses maps a limited-use budget. Unlimited features get all-null
// uses.
func FeatureUses(limitedUse *ddb.LimitedUse) *vtt.Uses {
	if limitedUse == nil {
		return &vtt.Uses{}
	}
	uses := &vtt.Uses{
		Value: positive(limitedUse.MaxUses),
		Max:   positive(limitedUse.MaxUses),
	}
	if per := lookup.UsesPeriodForResetType(limitedUse.ResetType); per != lookup.UsesPeriodNone {
		uses.Per = &per
	}
	return uses
}
