package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"reship/internal/app"
	"reship/internal/config"
	"reship/internal/repositories"
	"reship/internal/services/pricing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyCatalog  = "catalog"
	keyFallback = "fallback"
	keyCurrency = "currency"
	keyJSON     = "json"
)

// cli carries settings and lazily opened backends shared by subcommands.
type cli struct {
	v *viper.Viper

	once     sync.Once
	services *app.Services
	err      error
}

func newCLI() *cli {
	v := viper.New()
	v.SetConfigName("feectl")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/reship")
	v.SetEnvPrefix("FEECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyFallback, "default_curve")
	v.SetDefault(keyCurrency, pricing.DefaultCurrency)
	return &cli{v: v}
}

func (c *cli) readConfig() error {
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read feectl config: %w", err)
		}
	}
	return nil
}

func (c *cli) fallback() (pricing.FallbackPolicy, error) {
	switch strings.ToLower(c.v.GetString(keyFallback)) {
	case "default_curve", "default":
		return pricing.FallbackDefaultCurve, nil
	case "reject":
		return pricing.FallbackReject, nil
	}
	return 0, fmt.Errorf("fallback must be default_curve or reject, got %q", c.v.GetString(keyFallback))
}

// backend connects to Postgres and Redis once, on first use.
func (c *cli) backend() (*app.Services, error) {
	c.once.Do(func() {
		config.LoadEnv()
		if err := repositories.InitDB(); err != nil {
			c.err = err
			return
		}
		c.services = app.NewServices(repositories.DB, repositories.CacheService, nil)
	})
	return c.services, c.err
}

func (c *cli) close() {
	if c.services != nil {
		repositories.Close()
	}
}

func newRootCmd() *cobra.Command {
	c := newCLI()

	rootCmd := &cobra.Command{
		Use:           "feectl",
		Short:         "Shipping and storage fee tools",
		Long:          "feectl prices shipments, runs the storage accrual batch and imports or validates pricing zone catalogs.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.readConfig()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			c.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyFallback, "default_curve", "unmatched destinations: default_curve or reject")
	flags.String(keyCurrency, pricing.DefaultCurrency, "quote currency")
	flags.Bool(keyJSON, false, "print JSON output")
	_ = c.v.BindPFlag(keyFallback, flags.Lookup(keyFallback))
	_ = c.v.BindPFlag(keyCurrency, flags.Lookup(keyCurrency))
	_ = c.v.BindPFlag(keyJSON, flags.Lookup(keyJSON))

	rootCmd.AddCommand(
		newQuoteCmd(c),
		newAccrualCmd(c),
		newZonesCmd(c),
	)

	return rootCmd
}
