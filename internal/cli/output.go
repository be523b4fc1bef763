package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shamsu/conops/internal/cli/formatter"
	"github.com/shamsu/conops/internal/domain"
	"github.com/shamsu/conops/internal/missionfile"
	"github.com/spf13/cobra"
)

// loadDocument reads a mission file and enforces the structural rules,
// printing each problem before failing so the user sees all of them at
// once.
func loadDocument(cmd *cobra.Command, path string) (*domain.Document, error) {
	doc, err := missionfile.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := missionfile.Validate(doc); len(errs) > 0 {
		out := cmd.OutOrStdout()
		for _, e := range errs {
			fmt.Fprintln(out, formatter.StyleRed.Render("✗ "+e.Error()))
		}
		return nil, fmt.Errorf("invalid document: %d structural error(s)", len(errs))
	}
	return doc, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
