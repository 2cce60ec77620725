//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/adaptivecoach/pkg"

	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", pkg.ContentType.JSON)
	}

	return s.httpClient.Do(req)
}

func (s *IntegrationTestSuite) get(ctx context.Context, path string) (*http.Response, error) {
	return s.do(ctx, http.MethodGet, path, nil)
}

// mustDo sends the request, checks the status and decodes the JSON response into dst when given.
func (s *IntegrationTestSuite) mustDo(ctx context.Context, method, path string, body any, expectedStatus int, dst any) {
	t := s.T()
	t.Helper()

	resp, err := s.do(ctx, method, path, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: %s", method, path, respBytes)

	if dst != nil {
		require.NoError(t, json.Unmarshal(respBytes, dst))
	}
}
