package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumberlabs/pep8/internal/logging"
	"github.com/lumberlabs/pep8/pkg/style"
	"github.com/lumberlabs/pep8/pkg/style/checks"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// checkerInfo represents a checker in JSON output.
type checkerInfo struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Codes       []string `json:"codes"`
	Description string   `json:"description"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available style checkers",
		Long: `List all built-in style checkers with the diagnostic codes they
report and the PEP 8 prose behind each one. Physical-line checkers run on
raw source lines; logical-line checkers run on reconstructed statements.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			infos := checks.NewDefaultRegistry().Describe()

			// Handle JSON output format.
			if flags.format == formatJSON {
				return outputRulesJSON(infos)
			}

			// Default to text output.
			logger := logging.NewInteractive()

			logger.Info("available checkers")

			for _, info := range infos {
				logger.Info(info.Name,
					logging.FieldKind, info.Kind,
					logging.FieldCodes, strings.Join(info.Codes, ","),
					logging.FieldDescription, firstProseLine(info.Description),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// firstProseLine trims a multi-line rule description down to its first
// non-empty line for compact listings.
func firstProseLine(prose string) string {
	for _, line := range strings.Split(prose, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// outputRulesJSON outputs checkers as a JSON array.
func outputRulesJSON(infos []style.CheckerInfo) error {
	out := make([]checkerInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, checkerInfo{
			Name:        info.Name,
			Kind:        info.Kind,
			Codes:       info.Codes,
			Description: info.Description,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding checkers: %w", err)
	}
	return nil
}
