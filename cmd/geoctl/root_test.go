package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func proxy(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("postalCode") == "8000" {
			_, _ = w.Write([]byte(`{"lat":56.1572,"lng":10.2107,"display_name":"Aarhus C","postalCode":"8000"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Postal code not found"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveCommand(t *testing.T) {
	srv := proxy(t)

	out := run(t, "--base-url", srv.URL, "resolve", "4690", "8000", "9999")
	assert.Equal(t, "4690\t55.2938\t11.8723\n8000\t56.1572\t10.2107\n9999\tnot found\n", out)
}

func TestResolveCommandFallback(t *testing.T) {
	srv := proxy(t)

	out := run(t, "--base-url", srv.URL, "resolve", "--fallback", "9999")
	assert.Equal(t, "9999\t56.2639\t9.5018\n", out)
}

func TestBatchCommand(t *testing.T) {
	srv := proxy(t)

	out := run(t, "--base-url", srv.URL, "batch", "--delay", "0s", "4690", "9999", "4690")

	var got map[string]*struct{ Lat, Lng float64 }
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	require.NotNil(t, got["4690"])
	assert.Equal(t, 55.2938, got["4690"].Lat)
	assert.Nil(t, got["9999"])
}

func TestNearestCommand(t *testing.T) {
	out := run(t, "nearest", "--lat", "55.2938", "--lng", "11.8723", "-k", "2")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "4690\tHaslev\t0 m", lines[0])
}

func TestNearestCommandRejectsBadK(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"nearest", "-k", "0"})
	assert.Error(t, cmd.Execute())
}

func TestCodesCommand(t *testing.T) {
	out := run(t, "codes")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "1000\tKøbenhavn K", lines[0])
	assert.Contains(t, lines, "4690\tHaslev")
}
