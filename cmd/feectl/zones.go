package main

import (
	"fmt"
	"os"

	"reship/internal/catalog"
	"reship/internal/models"
	"reship/internal/services/pricing"
	"reship/internal/validation"

	"github.com/spf13/cobra"
)

func newZonesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Manage the pricing zone catalog",
	}

	cmd.AddCommand(
		newZonesValidateCmd(),
		newZonesImportCmd(c),
		newZonesExportCmd(c),
	)

	return cmd
}

// loadCatalog reads a catalog file and checks every zone and the table as a whole.
func loadCatalog(path string) ([]models.PricingZone, error) {
	zones, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	for i := range zones {
		v := validation.New()
		v.Zone(&zones[i])
		if !v.Valid() {
			return nil, fmt.Errorf("zone %q: %s", zones[i].Code, v.Error())
		}
	}

	if _, err := pricing.NewZoneTable(zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func newZonesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a TOML zone catalog without touching the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zones, err := loadCatalog(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d zones\n", len(zones))
			return nil
		},
	}
}

func newZonesImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored zone catalog with a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zones, err := loadCatalog(args[0])
			if err != nil {
				return err
			}

			services, err := c.backend()
			if err != nil {
				return err
			}
			if err := services.ImportZones(cmd.Context(), zones); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d zones\n", len(zones))
			return nil
		},
	}
}

func newZonesExportCmd(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored zone catalog as TOML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := c.backend()
			if err != nil {
				return err
			}

			zones, err := services.ZoneRepo.List(cmd.Context())
			if err != nil {
				return err
			}
			data, err := catalog.Encode(zones)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
