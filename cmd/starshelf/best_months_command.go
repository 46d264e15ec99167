package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"starshelf/internal/metadata"
	"starshelf/internal/visibility"
)

func newBestMonthsCommand(ctx *commandContext) *cobra.Command {
	latFlag := math.NaN()
	lonFlag := math.NaN()

	cmd := &cobra.Command{
		Use:   "best-months <ra> <dec>",
		Short: "Estimate observable months for a position",
		Long: `Estimate which calendar months a position clears the usable imaging
altitude from the configured observer location. RA is accepted in hours as a
decimal or H:M:S; Dec in degrees as a decimal or ±D:M:S.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			raHours, ok := metadata.ParseRA(args[0])
			if !ok {
				return fmt.Errorf("unparsable right ascension %q", args[0])
			}
			decDeg, ok := metadata.ParseDec(args[1])
			if !ok {
				return fmt.Errorf("unparsable declination %q", args[1])
			}

			latitude := cfg.Observer.Latitude
			longitude := cfg.Observer.Longitude
			if !math.IsNaN(latFlag) {
				latitude = latFlag
			}
			if !math.IsNaN(lonFlag) {
				longitude = lonFlag
			}

			months := visibility.BestMonths(raHours, decDeg, latitude, longitude)
			if months == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Never clears the imaging altitude from this location.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), months)
			return nil
		},
	}

	cmd.Flags().Float64Var(&latFlag, "latitude", math.NaN(), "Observer latitude override in degrees")
	cmd.Flags().Float64Var(&lonFlag, "longitude", math.NaN(), "Observer longitude override in degrees")
	return cmd
}
