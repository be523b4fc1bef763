package contract

// ExportResult names the artifacts one export wrote: the full mission
// spec, the ConOps patch, and the human-readable summary.
type ExportResult struct {
	Dir         string `json:"dir"`
	MissionFile string `json:"mission"`
	PatchFile   string `json:"patch"`
	SummaryFile string `json:"summary"`
}

// Files lists the written artifacts in export order.
func (r ExportResult) Files() []string {
	return []string{r.MissionFile, r.PatchFile, r.SummaryFile}
}
