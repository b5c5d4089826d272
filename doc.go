/*
Package goupsrating implements a client for the UPS Rating XML API
(RatingServiceSelectionRequest), quoting shipping charges for a single
service or shopping rates across all available services.

# Package Structure

The library is organized into the following packages:

	github.com/nuex/go-ups-rating/pkg/ups       - Main rating client API
	github.com/nuex/go-ups-rating/pkg/rating    - Request encoding and response decoding
	github.com/nuex/go-ups-rating/pkg/codes     - Carrier code tables
	github.com/nuex/go-ups-rating/pkg/transport - HTTPS transport with TLS 1.2/1.3

# Quick Start

To request rates:

	import (
	    "context"

	    "github.com/nuex/go-ups-rating/pkg/rating"
	    "github.com/nuex/go-ups-rating/pkg/ups"
	)

	opts := &rating.Options{
	    AccessLicenseNumber: licenseNumber,
	    UserID:              userID,
	    Password:            password,
	    Country:             "US",
	    ToCountry:           "US",
	    Weight:              20,
	}

	client := ups.NewClient(nil)
	result, err := client.Rate(context.Background(), opts)
	if err != nil {
	    // missing required options or an unknown code-table key
	}
	if result.Success {
	    for service, charge := range result.Rates {
	        // "ground" -> 12.34
	    }
	}

Carrier-reported errors and communication failures are carried as data on
the Result rather than returned as errors, since both are expected runtime
outcomes the caller branches on.
*/
package goupsrating
