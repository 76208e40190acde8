package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"postcode-geo-service/internal/adapters/cache"
	"postcode-geo-service/internal/adapters/geocode"
	"postcode-geo-service/internal/config"
	"postcode-geo-service/internal/domain"
	"postcode-geo-service/internal/platform/obs"
	"postcode-geo-service/internal/postcode"
	"postcode-geo-service/internal/services"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	baseURL  string
	timeout  time.Duration
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "geoctl",
		Short: "Resolve Danish postal codes to coordinates",
		Long: `geoctl resolves postal codes through the same cache, reference table and
geocode proxy chain the server uses. Remote lookups go to the proxy at --base-url.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return obs.Configure(opts.logLevel, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url",
		config.Get("GEOCODE_BASE_URL", "http://localhost:8080"), "geocode proxy base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", services.DefaultResolveTimeout, "remote lookup timeout")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	cmd.AddCommand(newResolveCmd(opts), newBatchCmd(opts), newNearestCmd(), newCodesCmd())
	return cmd
}

func newResolver(opts *rootOptions) (*services.Resolver, error) {
	g, err := geocode.NewHTTPGeocoder(opts.baseURL, opts.timeout)
	if err != nil {
		return nil, err
	}
	return services.NewResolver(cache.NewMemoryGeocodeCache(), postcode.Default(), g,
		services.WithResolveTimeout(opts.timeout))
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var fallback bool

	cmd := &cobra.Command{
		Use:   "resolve POSTAL_CODE...",
		Short: "Resolve postal codes one by one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newResolver(opts)
			if err != nil {
				return fmt.Errorf("resolve: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, code := range args {
				if fallback {
					c := r.ResolveWithFallback(cmd.Context(), code)
					fmt.Fprintf(out, "%s\t%.4f\t%.4f\n", code, c.Lat, c.Lng)
					continue
				}
				c, ok := r.Resolve(cmd.Context(), code)
				if !ok {
					fmt.Fprintf(out, "%s\tnot found\n", code)
					continue
				}
				fmt.Fprintf(out, "%s\t%.4f\t%.4f\n", code, c.Lat, c.Lng)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "print the centre of Denmark for unknown codes")
	return cmd
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "batch POSTAL_CODE...",
		Short: "Resolve postal codes as a paced batch and print JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newResolver(opts)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}
			results := r.ResolveBatch(cmd.Context(), args, delay)
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", services.DefaultBatchDelay, "pause between remote lookups")
	return cmd
}

func newNearestCmd() *cobra.Command {
	var lat, lng float64
	var k int

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Find the reference postal codes closest to a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if k < 1 {
				return fmt.Errorf("nearest: -k must be positive, got %d", k)
			}
			matches := postcode.Default().Nearest(domain.Coordinates{Lat: lat, Lng: lng}, k)

			out := cmd.OutOrStdout()
			for _, m := range matches {
				fmt.Fprintf(out, "%s\t%s\t%.0f m\n", m.PostalCode, m.Known.City, m.DistanceMeters)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", domain.DefaultCoordinates.Lat, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", domain.DefaultCoordinates.Lng, "longitude")
	cmd.Flags().IntVarP(&k, "k", "k", 1, "number of postal codes")
	return cmd
}

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the postal codes in the reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := postcode.Default()
			out := cmd.OutOrStdout()
			for _, code := range table.Codes() {
				k, _ := table.Lookup(code)
				fmt.Fprintf(out, "%s\t%s\n", code, k.City)
			}
			return nil
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
