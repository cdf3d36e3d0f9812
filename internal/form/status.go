package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Meesho/BharatMLStack/price-predictor/pkg/clients/pricepredictor"
)

// statusBoard runs the liveness probe and the model info fetch in the background.
// Lines are shown as soon as they are ready and never hold up the form.
type statusBoard struct {
	lines   chan string
	pending int
}

func startStatusBoard(ctx context.Context, client pricepredictor.Client, baseURL string) *statusBoard {
	b := &statusBoard{lines: make(chan string, 2), pending: 2}
	go func() {
		b.lines <- probeLine(ctx, client, baseURL)
	}()
	go func() {
		b.lines <- modelInfoLine(ctx, client)
	}()
	return b
}

// ready returns the lines that have arrived so far
func (b *statusBoard) ready() []string {
	var lines []string
	for b.pending > 0 {
		select {
		case line := <-b.lines:
			b.pending--
			lines = append(lines, line)
		default:
			return lines
		}
	}
	return lines
}

// rest waits for the lines still outstanding. The client bounds both calls.
func (b *statusBoard) rest() []string {
	var lines []string
	for ; b.pending > 0; b.pending-- {
		lines = append(lines, <-b.lines)
	}
	return lines
}

func probeLine(ctx context.Context, client pricepredictor.Client, baseURL string) string {
	_, err := client.Health(ctx)
	var apiErr *pricepredictor.APIError
	switch {
	case err == nil:
		return fmt.Sprintf("Connected to price predictor at %s", baseURL)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Price predictor reachable at %s but returned %d", baseURL, apiErr.StatusCode)
	default:
		return fmt.Sprintf("Cannot reach price predictor at %s. Please start the backend.", baseURL)
	}
}

func modelInfoLine(ctx context.Context, client pricepredictor.Client) string {
	info, err := client.ModelInfo(ctx)
	if err != nil {
		return fmt.Sprintf("Couldn't fetch model info: %v", err)
	}
	modelType := info.ModelType
	if modelType == "" {
		modelType = "Unknown"
	}
	return fmt.Sprintf("Model type: %s | Feature order: %s", modelType, strings.Join(info.FeatureOrder, ", "))
}
