package main

import (
	"encoding/json"
	"fmt"
	"io"

	"reship/internal/catalog"
	"reship/internal/models"
	"reship/internal/services/pricing"

	"github.com/spf13/cobra"
)

func newQuoteCmd(c *cli) *cobra.Command {
	var (
		req      models.ShipmentRequest
		tier     string
		customer uint
		pkg      uint
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a shipment",
		Long: "Price a shipment against the stored zone catalog, or against a TOML " +
			"catalog file with --catalog (no database needed).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Tier = models.SubscriptionTier(tier)
			if customer != 0 {
				req.CustomerID = &customer
			}
			if pkg != 0 {
				req.PackageID = &pkg
			}

			svc, err := c.quoteService()
			if err != nil {
				return err
			}

			quote, err := svc.ComputeQuote(cmd.Context(), req)
			if err != nil {
				return err
			}

			if c.v.GetBool(keyJSON) {
				return writeJSON(cmd.OutOrStdout(), quote)
			}
			printQuote(cmd.OutOrStdout(), quote)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&req.WeightKg, "weight", 0, "actual weight in kg")
	flags.Float64Var(&req.LengthCm, "length", 0, "box length in cm")
	flags.Float64Var(&req.WidthCm, "width", 0, "box width in cm")
	flags.Float64Var(&req.HeightCm, "height", 0, "box height in cm")
	flags.StringVar(&req.Destination, "dest", "", "destination ISO country code")
	flags.StringVar(&tier, "tier", "", "subscription tier (free, premium_monthly, premium, premium_yearly)")
	flags.UintVar(&customer, "customer", 0, "customer id to read the tier from (database mode)")
	flags.UintVar(&pkg, "package", 0, "package id whose storage fee is added (database mode)")
	flags.String(keyCatalog, "", "TOML zone catalog for offline quotes")
	_ = c.v.BindPFlag(keyCatalog, flags.Lookup(keyCatalog))
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

// quoteService prices from the catalog file when one is configured and from
// the database otherwise.
func (c *cli) quoteService() (pricing.Service, error) {
	policy, err := c.fallback()
	if err != nil {
		return nil, err
	}
	cfg := pricing.Config{Currency: c.v.GetString(keyCurrency), Fallback: policy}

	if path := c.v.GetString(keyCatalog); path != "" {
		zones, err := catalog.LoadFile(path)
		if err != nil {
			return nil, err
		}
		table, err := pricing.NewZoneTable(zones)
		if err != nil {
			return nil, err
		}
		return pricing.NewService(pricing.StaticZones{Table: table}, nil, nil, cfg), nil
	}

	services, err := c.backend()
	if err != nil {
		return nil, err
	}
	return pricing.NewService(services.Zones, services.Accrual, services.Subscribers, cfg), nil
}

func printQuote(w io.Writer, q *models.Quote) {
	_, _ = fmt.Fprintf(w, "chargeable weight: %.3f kg\n", q.ChargeableWeight)
	if q.DefaultCurve {
		_, _ = fmt.Fprintf(w, "zone: default curve (%s)\n", q.FallbackReason)
	} else {
		_, _ = fmt.Fprintf(w, "zone: %s\n", q.ZoneCode)
	}
	_, _ = fmt.Fprintf(w, "tier: %s\n", q.Tier)
	_, _ = fmt.Fprintf(w, "base price: %.2f %s\n", q.BasePrice, q.Currency)
	if q.StorageFeeSource != "" {
		_, _ = fmt.Fprintf(w, "storage fee: %.2f %s (%s)\n", q.StorageFee, q.Currency, q.StorageFeeSource)
	}
	_, _ = fmt.Fprintf(w, "total: %.2f %s\n", q.Total, q.Currency)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
