package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newAccrualCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accrual",
		Short: "Storage accrual operations",
	}
	cmd.AddCommand(newAccrualRunCmd(c))
	return cmd
}

func newAccrualRunCmd(c *cli) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Recompute storage fees for every received package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC3339: %w", err)
				}
				now = parsed
			}

			services, err := c.backend()
			if err != nil {
				return err
			}

			result, err := services.Accrual.RunBatch(cmd.Context(), now)
			if err != nil {
				return err
			}

			if c.v.GetBool(keyJSON) {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "run at: %s\n", result.RunAt.Format(time.RFC3339))
			_, _ = fmt.Fprintf(out, "updated: %d\n", result.UpdatedCount)
			_, _ = fmt.Fprintf(out, "failed: %d\n", result.FailedCount)
			for _, r := range result.Results {
				if r.Err != nil {
					_, _ = fmt.Fprintf(out, "  package %d: %s\n", r.PackageID, r.Error)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "compute as of this RFC3339 instant instead of now")
	return cmd
}
