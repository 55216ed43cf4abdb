// go test github.com/homemade/coursecat/catalog -v
package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSearchServer(t *testing.T, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Query().Get("uniqueSessionId") != "ab12cd1712345678901" ||
			r.Header.Get("X-Synchronizer-Token") != "7c3e9f2a-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun(t *testing.T) {
	var hits int32
	srv := newSearchServer(t, sectionJSON, &hits)

	cfg := testConfig(srv.URL+"/searchResults", filepath.Join(t.TempDir(), "output.csv"))
	cfg.Credentials = writeCredentialFiles(t, "ab12cd1712345678901\n", "7c3e9f2a-token\n", "JSESSIONID=ABC123\n")

	summary, err := Run(context.Background(), RunContext{Config: cfg})
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&hits))
	require.Equal(t, 2, summary.Rows)
	require.Equal(t, Some(int64(2)), summary.TotalCount)
	require.Equal(t, Some(true), summary.Success)

	records := readCSV(t, cfg.Output.Path, ',')
	require.Len(t, records, 3)
	require.Equal(t, expectedHeaders, records[0])
	require.Equal(t, []string{
		"388472", "202510", "Spring 2025", "40123", "1", "110", "CS",
		"Computer Science", "01", "Main", "Lecture",
		"Introduction to Computer Science I", "4", "35", "33", "2", "10", "0",
		"10", "", "", "", "", "", "4", "", "true", "", "false", "CS110", "P",
		"In Person",
	}, records[1])
	require.Equal(t, "40124", records[2][3])
	require.Equal(t, "MATH", records[2][6])
	require.Equal(t, "", records[2][14])
}

func TestRun_MissingCredentialSkipsNetwork(t *testing.T) {
	var hits int32
	srv := newSearchServer(t, sectionJSON, &hits)

	cfg := testConfig(srv.URL+"/searchResults", filepath.Join(t.TempDir(), "output.csv"))
	cfg.Credentials = writeCredentialFiles(t, "ab12cd1712345678901", "7c3e9f2a-token", "")

	_, err := Run(context.Background(), RunContext{Config: cfg})
	require.ErrorIs(t, err, ErrMissingCredential)
	require.Equal(t, int32(0), atomic.LoadInt32(&hits))
	_, err = os.Stat(cfg.Output.Path)
	require.True(t, os.IsNotExist(err))
}

func TestRun_DecodeErrorWritesNothing(t *testing.T) {
	var hits int32
	srv := newSearchServer(t, `{"success":true,"totalCount":0}`, &hits)

	cfg := testConfig(srv.URL+"/searchResults", filepath.Join(t.TempDir(), "output.csv"))
	cfg.Credentials = writeCredentialFiles(t, "ab12cd1712345678901", "7c3e9f2a-token", "JSESSIONID=ABC123")

	_, err := Run(context.Background(), RunContext{Config: cfg})
	require.ErrorIs(t, err, ErrDecode)
	_, err = os.Stat(cfg.Output.Path)
	require.True(t, os.IsNotExist(err))
}

func TestRun_Unauthorized(t *testing.T) {
	var hits int32
	srv := newSearchServer(t, sectionJSON, &hits)

	cfg := testConfig(srv.URL+"/searchResults", filepath.Join(t.TempDir(), "output.csv"))
	cfg.Credentials = writeCredentialFiles(t, "expired", "7c3e9f2a-token", "JSESSIONID=ABC123")

	_, err := Run(context.Background(), RunContext{Config: cfg})
	require.ErrorIs(t, err, ErrTransport)
}

func TestRun_EmptyData(t *testing.T) {
	var hits int32
	srv := newSearchServer(t, `{"success":true,"totalCount":0,"data":[]}`, &hits)

	cfg := testConfig(srv.URL+"/searchResults", filepath.Join(t.TempDir(), "output.tsv"))
	cfg.Output.Format = FormatTSV
	cfg.Credentials = writeCredentialFiles(t, "ab12cd1712345678901", "7c3e9f2a-token", "JSESSIONID=ABC123")

	summary, err := Run(context.Background(), RunContext{Config: cfg})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Rows)
	require.Equal(t, [][]string{expectedHeaders}, readCSV(t, cfg.Output.Path, '\t'))
}
