package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/vizgraph/vizgraph/pkg/errors"
	"github.com/vizgraph/vizgraph/pkg/io"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// validateCommand creates the validate command for checking documents.
func (c *CLI) validateCommand() *cobra.Command {
	var warningsAsErrors bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a visual graph document",
		Long: `Validate checks a JSON document against the structural invariants:
id uniqueness per collection, referential integrity across collections,
feature cardinality, geometry, and view bounds.

Errors mark violated invariants; warnings are advisory. The command exits
non-zero when any error is found (or any warning, with --strict).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0], warningsAsErrors)
		},
	}

	cmd.Flags().BoolVar(&warningsAsErrors, "strict", false, "treat warnings as errors")

	return cmd
}

func runValidate(ctx context.Context, path string, strict bool) error {
	logger := loggerFromContext(ctx)

	if err := apperrors.ValidatePath(path); err != nil {
		return err
	}

	prog := newProgress(logger)
	g, err := io.ImportJSON(path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d elements, %d relationships", len(g.Elements), len(g.Relationships)))

	findings := vgraph.Validate(g)
	errorCount, warningCount := printFindings(findings)
	printFindingCounts(errorCount, warningCount)

	if errorCount > 0 || (strict && warningCount > 0) {
		return fmt.Errorf("%s: %d error(s), %d warning(s)", path, errorCount, warningCount)
	}
	return nil
}

// printFindings lists each finding with severity styling and returns the
// error and warning counts.
func printFindings(findings []vgraph.ValidationError) (errorCount, warningCount int) {
	for _, f := range findings {
		switch f.Severity {
		case vgraph.SeverityError:
			errorCount++
			printDetail("%s", StyleError.Render(f.Error()))
		default:
			warningCount++
			printDetail("%s", StyleWarning.Render(f.Error()))
		}
	}
	return errorCount, warningCount
}
