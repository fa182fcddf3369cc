package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/govently/govently_backend/internal/assessment"
)

func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the assessment question catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(assessment.Sections); err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			return nil
		},
	}
}
