package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/Meesho/BharatMLStack/price-predictor/internal/form"
	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/clients/pricepredictor"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/config"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	_ "go.uber.org/automaxprocs"
)

func main() {
	defaults := listing.DefaultFields()
	flags := pflag.NewFlagSet("price-predictor-form", pflag.ExitOnError)
	flags.String("api-url", pricepredictor.DefaultAPIURL, "base URL of the price-predictor service")
	mode := flags.String("mode", form.ModePost, "entry point to call: post or get")
	force := flags.Bool("force", false, "submit even when the listing has issues")
	nonInteractive := flags.Bool("non-interactive", false, "take every field from flags instead of prompting")
	logLevel := flags.String("log-level", "WARN", "log level")
	bhk := flags.Int("bhk", defaults.BHK, "bedrooms")
	bath := flags.Int("bath", defaults.Bath, "bathrooms")
	balcony := flags.Int("balcony", defaults.Balcony, "balconies")
	totalSqft := flags.Float64("total-sqft", defaults.TotalSqft, "total area in sqft")
	pricePerSqft := flags.Float64("price-per-sqft", defaults.PricePerSqft, "price per sqft in rupees")
	_ = flags.Parse(os.Args[1:])

	logger.Init("price-predictor-form", *logLevel)
	config.InitEnv()
	// an explicit flag wins over API_URL from the environment
	if err := viper.BindPFlag(pricepredictor.APIURLKey, flags.Lookup("api-url")); err != nil {
		fmt.Fprintf(os.Stderr, "failed to bind --api-url: %v\n", err)
		os.Exit(2)
	}

	client := pricepredictor.InitClient()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f := form.New(client, os.Stdin, os.Stdout, form.Options{
		BaseURL:        viper.GetString(pricepredictor.APIURLKey),
		Mode:           *mode,
		Force:          *force,
		NonInteractive: *nonInteractive,
		Preset: listing.Fields{
			BHK:          *bhk,
			Bath:         *bath,
			Balcony:      *balcony,
			TotalSqft:    *totalSqft,
			PricePerSqft: *pricePerSqft,
		},
	})
	if err := f.Run(ctx); err != nil {
		if errors.Is(err, form.ErrAdvisoryIssues) {
			fmt.Fprintln(os.Stderr, err)
		}
		log.Debug().Err(err).Msg("form finished with an error")
		os.Exit(1)
	}
}
