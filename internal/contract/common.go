// Package contract defines the stable request and response shapes shared
// by the CLI, the HTTP server, and any other caller of the services. The
// engine-level types are re-exported as aliases so callers depend on one
// package.
package contract

import (
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/timeline"
)

type Interval = timeline.Interval

type PhaseSpan = domain.PhaseSpan

type ViolationCode = timeline.ViolationCode

const (
	ViolationStartsBeforeTimeline ViolationCode = timeline.ViolationStartsBeforeTimeline
	ViolationNonpositiveDuration  ViolationCode = timeline.ViolationNonpositiveDuration
	ViolationOutsideAllowed       ViolationCode = timeline.ViolationOutsideAllowed
	ViolationDenyOverlap          ViolationCode = timeline.ViolationDenyOverlap
	ViolationRequiresContact      ViolationCode = timeline.ViolationRequiresContact
	ViolationContactOrBlackout    ViolationCode = timeline.ViolationContactOrBlackout
	ViolationDuringEclipse        ViolationCode = timeline.ViolationDuringEclipse
)

type Violation = timeline.Violation

type PlacementReport = timeline.PlacementReport
