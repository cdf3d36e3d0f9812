package form

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Meesho/BharatMLStack/price-predictor/internal/listing"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/clients/pricepredictor"
	"github.com/Meesho/BharatMLStack/price-predictor/pkg/contracts"
	"github.com/rs/zerolog/log"
)

const (
	ModePost = "post"
	ModeGet  = "get"
)

// ErrAdvisoryIssues stops a submit that the advisory check flagged, unless forced
var ErrAdvisoryIssues = errors.New("listing has issues, correct them or pass --force to submit anyway")

// Options controls one run of the form
type Options struct {
	BaseURL        string
	Mode           string
	Force          bool
	NonInteractive bool
	// Preset holds the values used in non-interactive mode
	Preset listing.Fields
}

type Form struct {
	client pricepredictor.Client
	in     *bufio.Reader
	out    io.Writer
	opts   Options
}

func New(client pricepredictor.Client, in io.Reader, out io.Writer, opts Options) *Form {
	if opts.Mode == "" {
		opts.Mode = ModePost
	}
	return &Form{client: client, in: bufio.NewReader(in), out: out, opts: opts}
}

// Run shows the service status, collects a listing and submits it once
func (f *Form) Run(ctx context.Context) error {
	if f.opts.Mode != ModePost && f.opts.Mode != ModeGet {
		return fmt.Errorf("unknown mode %q, expected %q or %q", f.opts.Mode, ModePost, ModeGet)
	}
	f.printf("Bangalore House Price Prediction\n\n")
	board := startStatusBoard(ctx, f.client, f.opts.BaseURL)

	fields := f.opts.Preset
	if !f.opts.NonInteractive {
		var err error
		if fields, err = f.collect(board); err != nil {
			return err
		}
	}
	f.printLines(board.rest())

	if issues := listing.Advise(fields); len(issues) > 0 {
		f.printf("\nPlease check these before predicting:\n")
		for _, issue := range issues {
			f.printf("  • %s\n", issue)
		}
		if !f.opts.Force {
			return ErrAdvisoryIssues
		}
		f.printf("Submitting anyway, the service validates every request.\n")
	}
	return f.submit(ctx, fields)
}

func (f *Form) collect(board *statusBoard) (listing.Fields, error) {
	fields := listing.DefaultFields()
	f.printf("Enter house details, press enter to keep the default.\n")
	for _, bound := range listing.FieldRules {
		f.printLines(board.ready())
		v, err := f.prompt(bound)
		if err != nil {
			return listing.Fields{}, err
		}
		setField(&fields, bound.Field, v)
	}
	return fields, nil
}

// prompt asks for one field until it gets a value the bound admits
func (f *Form) prompt(bound listing.Bound) (float64, error) {
	for {
		f.printf("%s [%s] (default %s): ", bound.Label, inputRange(bound), formatNumber(bound.Default))
		line, err := f.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("input closed before %s was entered", bound.Field)
			}
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return bound.Default, nil
		}
		v, parseErr := parseValue(bound, line)
		if parseErr != nil {
			f.printf("  %v\n", parseErr)
			continue
		}
		if !bound.InputAdmits(v) {
			f.printf("  %s must be %s\n", bound.Label, inputRange(bound))
			continue
		}
		return v, nil
	}
}

func (f *Form) submit(ctx context.Context, fields listing.Fields) error {
	var (
		resp *contracts.PredictResponse
		err  error
	)
	switch f.opts.Mode {
	case ModeGet:
		f.printf("\nPredicting (GET /predict/%d)...\n", fields.BHK)
		resp, err = f.client.PredictByPath(ctx, fields.BHK, contracts.PredictQuery{
			Bath:         fields.Bath,
			Balcony:      fields.Balcony,
			TotalSqftInt: fields.TotalSqft,
			PricePerSqft: fields.PricePerSqft,
		})
	default:
		f.printf("\nPredicting (POST /predict)...\n")
		resp, err = f.client.PredictByBody(ctx, contracts.PredictRequest{
			Bath:         &fields.Bath,
			Balcony:      &fields.Balcony,
			TotalSqftInt: &fields.TotalSqft,
			BHK:          &fields.BHK,
			PricePerSqft: &fields.PricePerSqft,
		})
	}
	if err != nil {
		var apiErr *pricepredictor.APIError
		var transportErr *pricepredictor.TransportError
		switch {
		case errors.As(err, &apiErr):
			f.printf("%s\n", apiErr.Error())
		case errors.As(err, &transportErr):
			f.printf("Connection error: %v\n", transportErr.Cause)
		default:
			f.printf("Prediction failed: %v\n", err)
		}
		log.Debug().Err(err).Msg("prediction request failed")
		return err
	}

	f.printf("Predicted Price: ₹ %s lakh\n", formatNumber(resp.PredictedPriceLakhs))
	f.printf("Feature order: %s\n", strings.Join(resp.FeatureOrder, ", "))
	used := make([]string, len(resp.FeaturesUsed))
	for i, v := range resp.FeaturesUsed {
		used[i] = formatNumber(v)
	}
	f.printf("Features used: [%s]\n", strings.Join(used, ", "))
	return nil
}

func (f *Form) printLines(lines []string) {
	for _, line := range lines {
		f.printf("%s\n", line)
	}
}

func (f *Form) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(f.out, format, args...)
}

func parseValue(bound listing.Bound, s string) (float64, error) {
	if bound.Integer {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%q is not a whole number", s)
		}
		return float64(n), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func inputRange(bound listing.Bound) string {
	if bound.HasMax {
		return formatNumber(bound.InputMin) + "-" + formatNumber(bound.Max)
	}
	return ">= " + formatNumber(bound.InputMin)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func setField(fields *listing.Fields, name string, v float64) {
	switch name {
	case listing.FieldBHK:
		fields.BHK = int(v)
	case listing.FieldBath:
		fields.Bath = int(v)
	case listing.FieldBalcony:
		fields.Balcony = int(v)
	case listing.FieldTotalSqft:
		fields.TotalSqft = v
	case listing.FieldPricePerSqft:
		fields.PricePerSqft = v
	}
}
