// go test github.com/homemade/coursecat/catalog -v
package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlmjohnson/requests"
	"github.com/stretchr/testify/require"
)

func replayRunContext(rawResponse string) RunContext {
	return RunContext{
		Config:    testConfig("https://reg-prod.ec.usfca.edu/StudentRegistrationSsb/ssb/searchResults/searchResults", "out.csv"),
		Transport: requests.ReplayString(rawResponse),
	}
}

func fetchReplay(t *testing.T, rc RunContext) (SearchResults, error) {
	t.Helper()
	req, err := NewSearchRequest(rc.Config, testCredentials)
	require.NoError(t, err)
	return FetchSearchResults(context.Background(), rc, req)
}

func TestFetchSearchResults(t *testing.T) {
	rc := replayRunContext("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n" + sectionJSON)

	results, err := fetchReplay(t, rc)
	require.NoError(t, err)
	require.Len(t, results.Data, 2)
	require.Equal(t, Some("40123"), results.Data[0].CourseReferenceNumber)
	require.Equal(t, Some("40124"), results.Data[1].CourseReferenceNumber)
}

func TestFetchSearchResults_NonSuccessStatus(t *testing.T) {
	rc := replayRunContext("HTTP/1.1 401 Unauthorized\r\nContent-Type: text/html\r\n\r\n<html>login</html>")

	_, err := fetchReplay(t, rc)
	require.ErrorIs(t, err, ErrTransport)
}

func TestFetchSearchResults_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + "/searchResults"
	srv.Close()

	rc := RunContext{Config: testConfig(endpoint, "out.csv")}
	_, err := fetchReplay(t, rc)
	require.ErrorIs(t, err, ErrTransport)
}

func TestFetchSearchResults_NotJSON(t *testing.T) {
	rc := replayRunContext("HTTP/1.1 200 OK\r\nContent-Type: text/html\r\n\r\n<html>session expired</html>")

	_, err := fetchReplay(t, rc)
	require.ErrorIs(t, err, ErrDecode)
}

func TestFetchSearchResults_MissingData(t *testing.T) {
	rc := replayRunContext("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n{\"success\":true,\"totalCount\":0}")

	_, err := fetchReplay(t, rc)
	require.ErrorIs(t, err, ErrDecode)
}

func TestFetchSearchResults_UnsuccessfulIsExportedByDefault(t *testing.T) {
	rc := replayRunContext("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n{\"success\":false,\"data\":[{\"courseReferenceNumber\":\"1\"}]}")

	results, err := fetchReplay(t, rc)
	require.NoError(t, err)
	require.Len(t, results.Data, 1)
	require.Equal(t, Some(false), results.Success)
}

func TestFetchSearchResults_RequireSuccess(t *testing.T) {
	rc := replayRunContext("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n{\"success\":false,\"data\":[{\"courseReferenceNumber\":\"1\"}]}")
	rc.Config.Output.RequireSuccess = true

	_, err := fetchReplay(t, rc)
	require.ErrorIs(t, err, ErrUnsuccessfulResponse)

	rc = replayRunContext("HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n{\"data\":[]}")
	rc.Config.Output.RequireSuccess = true

	_, err = fetchReplay(t, rc)
	require.ErrorIs(t, err, ErrUnsuccessfulResponse)
}
