// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lmendieta/plotproof/spatial"
)

// DefaultTerritoryEndpoint is the public territory index queried when no
// override is configured.
const DefaultTerritoryEndpoint = "https://native-land.ca/api/index.php"

// lookupTimeout bounds the one network call on the render path. On expiry
// the audit degrades to "no known territories" instead of hanging.
const lookupTimeout = 5 * time.Second

// LookupResult is the outcome of a territory query. Unavailable
// distinguishes "the service answered and found nothing" from "the service
// could not be reached or answered garbage". The risk mapping treats both as
// clear, but callers can tell the user which of the two happened.
type LookupResult struct {
	Names       []string
	Unavailable bool
}

// TerritoryLookup answers which named indigenous territories overlap a
// position.
type TerritoryLookup interface {
	Lookup(ctx context.Context, position spatial.Point) LookupResult
}

// NativeLandClient queries the native-land.ca territory index.
type NativeLandClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewNativeLandClient creates a client for the given endpoint. An empty
// endpoint selects DefaultTerritoryEndpoint.
func NewNativeLandClient(endpoint string) *NativeLandClient {
	if endpoint == "" {
		endpoint = DefaultTerritoryEndpoint
	}

	return &NativeLandClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: lookupTimeout,
		},
	}
}

type territoryFeature struct {
	Properties struct {
		Name string `json:"Name"`
	} `json:"properties"`
}

// Lookup issues a single GET with the position as a "<lat>,<lon>" query
// parameter. Every failure mode (timeout, non-200, malformed body) yields
// Unavailable; the lookup never returns an error and never retries.
func (c *NativeLandClient) Lookup(ctx context.Context, position spatial.Point) LookupResult {
	params := url.Values{}
	params.Set("maps", "territories")
	params.Set("position", formatPosition(position))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return LookupResult{Unavailable: true}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LookupResult{Unavailable: true}
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LookupResult{Unavailable: true}
	}

	var features []territoryFeature
	if err := json.NewDecoder(resp.Body).Decode(&features); err != nil {
		return LookupResult{Unavailable: true}
	}

	names := make([]string, 0, len(features))

	for _, f := range features {
		if f.Properties.Name != "" {
			names = append(names, f.Properties.Name)
		}
	}

	return LookupResult{Names: names}
}

// formatPosition renders "<lat>,<lon>" with the shortest exact float
// representation.
func formatPosition(p spatial.Point) string {
	return fmt.Sprintf("%s,%s",
		strconv.FormatFloat(p.Lat, 'f', -1, 64),
		strconv.FormatFloat(p.Lng, 'f', -1, 64),
	)
}
