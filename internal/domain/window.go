package domain

// LegacyWindow is the original flat window shape: an implicit allow
// interval with no mode or source. Documents that predate window masks
// still carry these, and the window builder falls back to them when no
// allow-mode masks exist.
type LegacyWindow struct {
	Name  string  `json:"name" yaml:"name"`
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// WindowMask is a moded window declaration: an allow mask contributes to
// the base of legal time, a deny mask carves time out of it. Gating rules
// also read masks directly, by source type, against the raw spans.
type WindowMask struct {
	Name       string     `json:"name" yaml:"name"`
	Start      float64    `json:"start" yaml:"start"`
	End        float64    `json:"end" yaml:"end"`
	Mode       MaskMode   `json:"mode" yaml:"mode"`
	SourceType SourceType `json:"source_type" yaml:"source_type"`
	SourceRef  string     `json:"source_ref,omitempty" yaml:"source_ref,omitempty"`
}

// SourceRule declares that windows of a given source type exist for the
// mission without pinning them to times. It documents intent (e.g. "deny
// during comms blackouts") until concrete spans arrive from analysis.
type SourceRule struct {
	Name       string     `json:"name" yaml:"name"`
	Mode       MaskMode   `json:"mode" yaml:"mode"`
	SourceType SourceType `json:"source_type" yaml:"source_type"`
	SourceRef  string     `json:"source_ref,omitempty" yaml:"source_ref,omitempty"`
}

// ManualTimeBlock is a hand-placed, time-bounded mask. It is the editable
// counterpart of a WindowMask and converts to one for the engine.
type ManualTimeBlock struct {
	Name       string     `json:"name" yaml:"name"`
	Start      float64    `json:"start" yaml:"start"`
	End        float64    `json:"end" yaml:"end"`
	Mode       MaskMode   `json:"mode" yaml:"mode"`
	SourceType SourceType `json:"source_type" yaml:"source_type"`
}

// AsMask converts a manual block to the mask shape the engine consumes.
func (b ManualTimeBlock) AsMask() WindowMask {
	return WindowMask{
		Name:       b.Name,
		Start:      b.Start,
		End:        b.End,
		Mode:       b.Mode,
		SourceType: b.SourceType,
	}
}
