package probe_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"invclean/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		appName       string
		appVersion    string
		body          []byte
	}{
		{
			name:          "Health handler",
			listenAddress: ":10001",
			endpoint:      "http://:10001/healthz",
			statusCode:    http.StatusOK,
			appName:       "invclean-1",
			appVersion:    "v0.0.1",
			body:          []byte(`{"name":"invclean-1","version":"v0.0.1"}`),
		},
		{
			name:          "Ready handler",
			listenAddress: ":10002",
			endpoint:      "http://:10002/ready",
			statusCode:    http.StatusOK,
			appName:       "invclean-2",
			appVersion:    "v0.0.2",
			body:          []byte(`{"name":"invclean-2","version":"v0.0.2"}`),
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10003",
			endpoint:      "http://:10003/invalid",
			statusCode:    http.StatusNotFound,
			body:          []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			g, gCtx := errgroup.WithContext(ctx)

			server := probe.NewServer(tc.listenAddress, probe.Options{
				Name:    tc.appName,
				Version: tc.appVersion,
			})

			g.Go(func() error {
				return server.Run(gCtx)
			})

			time.Sleep(100 * time.Millisecond)

			resp, err := http.Get(tc.endpoint) //nolint:noctx
			rq.NoError(err)

			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Equal(tc.body, body)

			cancel()
			rq.NoError(g.Wait())
		})
	}
}
