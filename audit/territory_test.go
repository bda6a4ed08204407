// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmendieta/plotproof/spatial"
)

func TestNativeLandClientLookup(t *testing.T) {
	var gotQuery map[string][]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"properties": {"Name": "Charrúa"}},
			{"properties": {"Name": "Guaraní"}},
			{"properties": {"Other": "ignored"}}
		]`))
	}))
	defer ts.Close()

	client := NewNativeLandClient(ts.URL)
	res := client.Lookup(context.Background(), spatial.Point{Lat: 1.5, Lng: -2.25})

	require.False(t, res.Unavailable)
	assert.Equal(t, []string{"Charrúa", "Guaraní"}, res.Names)

	require.NotNil(t, gotQuery)
	assert.Equal(t, "territories", gotQuery["maps"][0])
	assert.Equal(t, "1.5,-2.25", gotQuery["position"][0])
}

func TestNativeLandClientEmptyAnswerIsVerified(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	res := NewNativeLandClient(ts.URL).Lookup(context.Background(), spatial.Point{})

	assert.False(t, res.Unavailable)
	assert.Empty(t, res.Names)
}

func TestNativeLandClientFailOpen(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"not": "an array"`))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(tc.handler)
			defer ts.Close()

			res := NewNativeLandClient(ts.URL).Lookup(context.Background(), spatial.Point{})

			assert.True(t, res.Unavailable)
			assert.Empty(t, res.Names)
		})
	}
}

func TestNativeLandClientTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res := NewNativeLandClient(ts.URL).Lookup(ctx, spatial.Point{})

	assert.True(t, res.Unavailable)
}

func TestNativeLandClientUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	ts.Close() // connection refused from here on

	res := NewNativeLandClient(ts.URL).Lookup(context.Background(), spatial.Point{})

	assert.True(t, res.Unavailable)
}

func TestFormatPosition(t *testing.T) {
	tests := []struct {
		point spatial.Point
		want  string
	}{
		{spatial.Point{Lat: 1.5, Lng: -2.25}, "1.5,-2.25"},
		{spatial.Point{}, "0,0"},
		{spatial.Point{Lat: -34.90115, Lng: -56.16456}, "-34.90115,-56.16456"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, formatPosition(tc.point))
		})
	}
}
