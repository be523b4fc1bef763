package timeline

import (
	"testing"

	"github.com/shamsu/conops/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactMask(start, end float64) domain.WindowMask {
	return domain.WindowMask{Start: start, End: end, Mode: domain.MaskAllow, SourceType: domain.SourceGroundContact}
}

func blackoutMask(start, end float64) domain.WindowMask {
	return domain.WindowMask{Start: start, End: end, Mode: domain.MaskDeny, SourceType: domain.SourceCommsBlackout}
}

func eclipseMask(start, end float64) domain.WindowMask {
	return domain.WindowMask{Start: start, End: end, Mode: domain.MaskDeny, SourceType: domain.SourceEclipse}
}

func TestOverlapsFor_Classification(t *testing.T) {
	masks := []domain.WindowMask{
		contactMask(0, 2),
		blackoutMask(4, 6),
		eclipseMask(8, 10),
	}

	assert.Equal(t, MaskOverlaps{Contact: true}, OverlapsFor(1, 3, masks))
	assert.Equal(t, MaskOverlaps{Blackout: true}, OverlapsFor(5, 5.5, masks))
	assert.Equal(t, MaskOverlaps{Eclipse: true}, OverlapsFor(7, 9, masks))
	assert.Equal(t, MaskOverlaps{}, OverlapsFor(2.5, 3.5, masks))
}

func TestOverlapsFor_TouchingBoundaryIsNotOverlap(t *testing.T) {
	masks := []domain.WindowMask{contactMask(2, 4)}
	assert.Equal(t, MaskOverlaps{}, OverlapsFor(0, 2, masks), "activity ending where the window starts")
	assert.Equal(t, MaskOverlaps{}, OverlapsFor(4, 6, masks), "activity starting where the window ends")
}

func TestOverlapsFor_WrongModeDoesNotCount(t *testing.T) {
	masks := []domain.WindowMask{
		// A deny-mode ground contact is not a contact opportunity, and an
		// allow-mode blackout is not a blackout.
		{Start: 0, End: 10, Mode: domain.MaskDeny, SourceType: domain.SourceGroundContact},
		{Start: 0, End: 10, Mode: domain.MaskAllow, SourceType: domain.SourceCommsBlackout},
	}
	assert.Equal(t, MaskOverlaps{}, OverlapsFor(1, 2, masks))
}

func TestEvaluateRules_RequiresContact_Fails(t *testing.T) {
	act := domain.Activity{Name: "capture", Start: 5, Duration: 1}
	rules := []domain.RequirementRule{{ActivityType: "capture", Rule: domain.RuleRequiresContact}}
	masks := []domain.WindowMask{contactMask(0, 2)}

	violations := EvaluateRules(act, masks, rules)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationRequiresContact, violations[0].Code)
	assert.Contains(t, violations[0].Message, "requires contact window overlap")
}

func TestEvaluateRules_RequiresContact_PassesOnOverlap(t *testing.T) {
	act := domain.Activity{Name: "capture", Start: 1, Duration: 2}
	rules := []domain.RequirementRule{{ActivityType: "capture", Rule: domain.RuleRequiresContact}}
	masks := []domain.WindowMask{contactMask(0, 2)}

	assert.Empty(t, EvaluateRules(act, masks, rules))
}

func TestEvaluateRules_CaseInsensitiveNameMatch(t *testing.T) {
	act := domain.Activity{Name: "Capture", Start: 5, Duration: 1}
	rules := []domain.RequirementRule{{ActivityType: "CAPTURE", Rule: domain.RuleRequiresContact}}

	violations := EvaluateRules(act, nil, rules)
	require.Len(t, violations, 1)
}

func TestEvaluateRules_NonMatchingRuleSkipped(t *testing.T) {
	act := domain.Activity{Name: "downlink", Start: 5, Duration: 1}
	rules := []domain.RequirementRule{{ActivityType: "capture", Rule: domain.RuleRequiresContact}}

	assert.Empty(t, EvaluateRules(act, nil, rules))
}

func TestEvaluateRules_ContactOrBlackout_TruthTable(t *testing.T) {
	rules := []domain.RequirementRule{{ActivityType: "downlink", Rule: domain.RuleContactOrBlackoutAtMost}}
	act := domain.Activity{Name: "downlink", Start: 4, Duration: 2}

	cases := []struct {
		name  string
		masks []domain.WindowMask
		fails bool
	}{
		{"contact and blackout", []domain.WindowMask{contactMask(4, 5), blackoutMask(5, 6)}, false},
		{"contact only", []domain.WindowMask{contactMask(4, 5)}, false},
		{"neither", nil, false},
		{"blackout only", []domain.WindowMask{blackoutMask(5, 6)}, true},
	}
	for _, tc := range cases {
		violations := EvaluateRules(act, tc.masks, rules)
		if tc.fails {
			require.Len(t, violations, 1, tc.name)
			assert.Equal(t, ViolationContactOrBlackout, violations[0].Code, tc.name)
		} else {
			assert.Empty(t, violations, tc.name)
		}
	}
}

func TestEvaluateRules_ContactOrBlackout_ThresholdShownInMessage(t *testing.T) {
	act := domain.Activity{Name: "downlink", Start: 4, Duration: 2}
	rules := []domain.RequirementRule{{
		ActivityType: "downlink",
		Rule:         domain.RuleContactOrBlackoutAtMost,
		Threshold:    "6h",
	}}
	masks := []domain.WindowMask{blackoutMask(4, 5)}

	violations := EvaluateRules(act, masks, rules)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "6h")
}

func TestEvaluateRules_ForbidDuringEclipse(t *testing.T) {
	act := domain.Activity{Name: "star cal", Start: 8.5, Duration: 1}
	rules := []domain.RequirementRule{{ActivityType: "star cal", Rule: domain.RuleForbidDuringEclipse}}
	masks := []domain.WindowMask{eclipseMask(8, 10)}

	violations := EvaluateRules(act, masks, rules)
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationDuringEclipse, violations[0].Code)

	clear := EvaluateRules(domain.Activity{Name: "star cal", Start: 0, Duration: 1}, masks, rules)
	assert.Empty(t, clear)
}

func TestEvaluateRules_UnknownKindIgnored(t *testing.T) {
	act := domain.Activity{Name: "capture", Start: 5, Duration: 1}
	rules := []domain.RequirementRule{{ActivityType: "capture", Rule: "requires_alignment"}}

	assert.Empty(t, EvaluateRules(act, nil, rules))
}

func TestEvaluateRules_MultipleMatchingRulesAllReported(t *testing.T) {
	act := domain.Activity{Name: "capture", Start: 8.5, Duration: 1}
	rules := []domain.RequirementRule{
		{ActivityType: "capture", Rule: domain.RuleRequiresContact},
		{ActivityType: "capture", Rule: domain.RuleForbidDuringEclipse},
	}
	masks := []domain.WindowMask{eclipseMask(8, 10)}

	violations := EvaluateRules(act, masks, rules)
	require.Len(t, violations, 2)
	assert.Equal(t, ViolationRequiresContact, violations[0].Code)
	assert.Equal(t, ViolationDuringEclipse, violations[1].Code)
}
