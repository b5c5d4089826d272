package ups

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/nuex/go-ups-rating/pkg/rating"
	"github.com/nuex/go-ups-rating/pkg/transport"
)

// Carrier rating endpoints
const (
	// ProductionURL is the live rating endpoint.
	ProductionURL = "https://onlinetools.ups.com/ups.app/xml/Rate"
	// TestingURL is the customer integration environment, selected by the
	// Test option.
	TestingURL = "https://wwwcie.ups.com/ups.app/xml/Rate"
)

// Client submits rating requests to the carrier
type Client struct {
	httpClient    *transport.Client
	logger        *slog.Logger
	productionURL string
	testingURL    string
}

// ClientConfig holds client configuration
type ClientConfig struct {
	Transport *transport.Config
	Logger    *slog.Logger

	// Endpoint overrides, used in tests. Zero values select the carrier's
	// fixed URLs.
	ProductionURL string
	TestingURL    string
}

// NewClient creates a new rating client. A nil config selects defaults.
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = &ClientConfig{}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	productionURL := config.ProductionURL
	if productionURL == "" {
		productionURL = ProductionURL
	}
	testingURL := config.TestingURL
	if testingURL == "" {
		testingURL = TestingURL
	}

	return &Client{
		httpClient:    transport.NewClient(config.Transport),
		logger:        logger,
		productionURL: productionURL,
		testingURL:    testingURL,
	}
}

// Rate executes one RatingServiceSelectionRequest: validate and encode the
// options, POST the document, and decode the carrier's answer.
//
// Contract violations (rating.ValidationError, rating.EncodingError) are
// returned as errors before any network activity. Communication failures
// and carrier-reported errors are not errors; they come back as the
// corresponding Result shape for the caller to branch on.
func (c *Client) Rate(ctx context.Context, opts *rating.Options) (*rating.Result, error) {
	selection, err := rating.SelectionRequest(opts)
	if err != nil {
		return nil, err
	}

	body, err := serialize(rating.AccessRequest(opts), selection)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}

	endpoint := c.productionURL
	if opts.Test {
		endpoint = c.testingURL
	}

	c.logger.Debug("posting rating request", "endpoint", endpoint, "bytes", len(body))

	response, err := c.httpClient.Post(ctx, endpoint, body)
	if err != nil {
		c.logger.Warn("rating request failed", "endpoint", endpoint, "error", err)
		return rating.ParseResponse(nil), nil
	}

	c.logger.Debug("rating response received", "bytes", len(response))

	return rating.ParseResponse(response), nil
}

// serialize concatenates the credentials and rating fragments into one POST
// body, credentials first.
func serialize(docs ...*etree.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, doc := range docs {
		if _, err := doc.WriteTo(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
