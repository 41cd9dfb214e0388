/*
Copyright 2026 the Suitest Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package networkapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"
	"github.com/SuitestAutomation/translate-demo/pkg/networkapi/fake"
	"github.com/SuitestAutomation/translate-demo/pkg/openapi"

	"k8s.io/utils/ptr"
)

const (
	tokenID       = "token-id"
	tokenPassword = "token-password"
)

//nolint:gochecknoglobals
var credentials = networkapi.Credentials{
	TokenID:       tokenID,
	TokenPassword: tokenPassword,
}

func device(id string) map[string]any {
	return map[string]any{
		"deviceId": id,
	}
}

func newClient(t *testing.T, server *fake.Server, options ...networkapi.Option) *networkapi.Client {
	t.Helper()

	validator, err := openapi.NewValidator(t.Context())
	require.NoError(t, err)

	options = append([]networkapi.Option{networkapi.WithValidator(validator)}, options...)

	client, err := networkapi.New(server.URL(), credentials, options...)
	require.NoError(t, err)

	return client
}

func deviceIDs(devices []networkapi.Device) []string {
	out := make([]string, len(devices))

	for i := range devices {
		out[i] = devices[i].DeviceID
	}

	return out
}

// TestFetchAllConcatenatesPages checks every page is read in order.
func TestFetchAllConcatenatesPages(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.SetDevicePages(
		[]any{device("d1"), device("d2")},
		[]any{device("d3")},
		[]any{},
		[]any{device("d4"), device("d5"), device("d6")},
	)

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.NoError(t, err)
	require.Equal(t, []string{"d1", "d2", "d3", "d4", "d5", "d6"}, deviceIDs(devices))
	require.Equal(t, []string{"devices", "devices?page=1", "devices?page=2", "devices?page=3"}, server.Requests())
}

// TestFetchAllSinglePage checks a response without a next link terminates.
func TestFetchAllSinglePage(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.SetDevicePages([]any{device("d1")})

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.NoError(t, err)
	require.Equal(t, []string{"d1"}, deviceIDs(devices))
}

// TestFetchAllEmpty checks a listing with no values returns an empty, non-nil slice.
func TestFetchAllEmpty(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.Raw("devices", `{}`)

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.NoError(t, err)
	require.NotNil(t, devices)
	require.Empty(t, devices)
}

// TestFetchAllEmptyNext checks an empty next link is the end of the listing.
func TestFetchAllEmptyNext(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.Raw("devices", `{"values":[{"deviceId":"d1"}],"next":""}`)

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.NoError(t, err)
	require.Equal(t, []string{"d1"}, deviceIDs(devices))
}

// TestFetchAllFailureDiscardsPartialResults checks a failing page aborts the listing.
func TestFetchAllFailureDiscardsPartialResults(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.SetDevicePages(
		[]any{device("d1")},
		[]any{device("d2")},
		[]any{device("d3")},
	)
	server.Fail("devices?page=1", http.StatusServiceUnavailable)

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.Error(t, err)
	require.Nil(t, devices)

	var fetchError *networkapi.FetchError

	require.ErrorAs(t, err, &fetchError)
	require.Equal(t, http.StatusServiceUnavailable, fetchError.StatusCode)
	require.Equal(t, "Service Unavailable", fetchError.Status)
	require.Equal(t, "failed to fetch the result: 503 - Service Unavailable", err.Error())

	// The page after the failure is never requested.
	require.Equal(t, []string{"devices", "devices?page=1"}, server.Requests())
}

// TestFetchAllLoop checks a next link pointing backwards is an error rather than
// an infinite loop.
func TestFetchAllLoop(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.Raw("devices", `{"values":[{"deviceId":"d1"}],"next":"devices?page=1"}`)
	server.Raw("devices?page=1", `{"values":[{"deviceId":"d2"}],"next":"devices"}`)

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.ErrorIs(t, err, networkapi.ErrPaginationLoop)
	require.Nil(t, devices)
}

// TestFetchAllRelativeNext checks relative next links are resolved against the page.
func TestFetchAllRelativeNext(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.Raw("devices", `{"values":[{"deviceId":"d1"}],"next":"devices?page=1"}`)
	server.Raw("devices?page=1", `{"values":[{"deviceId":"d2"}]}`)

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.NoError(t, err)
	require.Equal(t, []string{"d1", "d2"}, deviceIDs(devices))
}

// TestFetchAllNonTextNext checks a next link that is not a string ends the listing.
func TestFetchAllNonTextNext(t *testing.T) {
	t.Parallel()

	links := []string{`false`, `42`, `{}`, `["devices?page=1"]`}

	for _, link := range links {
		t.Run(link, func(t *testing.T) {
			t.Parallel()

			server := fake.New(credentials)
			defer server.Close()

			server.Raw("devices", `{"values":[{"deviceId":"d1"}],"next":`+link+`}`)

			client, err := networkapi.New(server.URL(), credentials)
			require.NoError(t, err)

			devices, err := client.ListDevices(t.Context())
			require.NoError(t, err)
			require.Equal(t, []string{"d1"}, deviceIDs(devices))

			devices, err = newClient(t, server).ListDevices(t.Context())
			require.NoError(t, err)
			require.Equal(t, []string{"d1"}, deviceIDs(devices))
			require.Len(t, server.Requests(), 2)
		})
	}
}

// TestFetchAllSchemaViolation checks a device without an ID is rejected by validation.
func TestFetchAllSchemaViolation(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.Raw("devices", `{"values":[{"customName":"TV"}]}`)

	devices, err := newClient(t, server).ListDevices(t.Context())
	require.ErrorIs(t, err, networkapi.ErrSchema)
	require.False(t, networkapi.IsFetchError(err))
	require.Nil(t, devices)
}

// TestFetchAllDecodeFailure checks typed decoding catches bad shapes without validation.
func TestFetchAllDecodeFailure(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.Raw("devices", `{"values":"nope"}`)

	client, err := networkapi.New(server.URL(), credentials)
	require.NoError(t, err)

	devices, err := client.ListDevices(t.Context())
	require.ErrorIs(t, err, networkapi.ErrSchema)
	require.Nil(t, devices)
}

// TestCredentials checks authentication headers are sent.
func TestCredentials(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.SetDevicePages([]any{device("d1")})

	client, err := networkapi.New(server.URL(), networkapi.Credentials{TokenID: tokenID, TokenPassword: "wrong"})
	require.NoError(t, err)

	_, err = client.ListDevices(t.Context())

	var fetchError *networkapi.FetchError

	require.ErrorAs(t, err, &fetchError)
	require.Equal(t, http.StatusUnauthorized, fetchError.StatusCode)
}

// TestHeaders checks the fixed headers sent with every request.
func TestHeaders(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"values":[]}`))
	}))
	defer server.Close()

	client, err := networkapi.New(server.URL, credentials, networkapi.WithUserAgent("test/1.0"))
	require.NoError(t, err)

	_, err = client.ListDevices(t.Context())
	require.NoError(t, err)

	header := <-headers

	require.Equal(t, tokenID, header.Get(networkapi.HeaderTokenID))
	require.Equal(t, tokenPassword, header.Get(networkapi.HeaderTokenPassword))
	require.Equal(t, "application/json", header.Get("Accept"))
	require.Equal(t, "test/1.0", header.Get("User-Agent"))
	require.Regexp(t, `^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`, header.Get("Traceparent"))
}

// TestGetTestPackRun checks the detailed flag is sent and entries are decoded.
func TestGetTestPackRun(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.AddRun("run1", map[string]any{
		"list": []any{
			map[string]any{"resultId": "r1", "deviceId": "d1", "testId": "t1"},
			map[string]any{"resultId": "r2", "deviceId": "d2", "testId": "t2"},
		},
		"effectiveAppConfig": map[string]any{"url": "https://example.com"},
	})

	run, err := newClient(t, server).GetTestPackRun(t.Context(), "run1")
	require.NoError(t, err)
	require.Len(t, run.List, 2)
	require.JSONEq(t, `{"url":"https://example.com"}`, string(run.EffectiveAppConfig))
	require.Equal(t, &networkapi.RunEntry{ResultID: "r2", DeviceID: "d2", TestID: "t2"}, run.Entry("r2"))
	require.Nil(t, run.Entry("r3"))
	require.Equal(t, []string{"test-pack-runs/run1?detailed=true"}, server.Requests())
}

// TestGetTestPackRunSchemaViolation checks a run without entries is rejected.
func TestGetTestPackRunSchemaViolation(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.AddRun("run1", map[string]any{
		"effectiveAppConfig": map[string]any{},
	})

	_, err := newClient(t, server).GetTestPackRun(t.Context(), "run1")
	require.ErrorIs(t, err, networkapi.ErrSchema)
}

// TestGetTestResult checks the detailed payload is passed through verbatim.
func TestGetTestResult(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.AddResult("r1", map[string]any{
		"detailed": map[string]any{
			"def":      []any{map[string]any{"type": "openApp"}},
			"snippets": map[string]any{},
			"elements": map[string]any{"e1": "Login button"},
			"results":  []any{map[string]any{"result": "success"}},
		},
	})

	result, err := newClient(t, server).GetTestResult(t.Context(), "r1")
	require.NoError(t, err)
	require.JSONEq(t, `[{"type":"openApp"}]`, string(result.Detailed.Def))
	require.JSONEq(t, `{}`, string(result.Detailed.Snippets))
	require.JSONEq(t, `{"e1":"Login button"}`, string(result.Detailed.Elements))
	require.JSONEq(t, `[{"result":"success"}]`, string(result.Detailed.Results))
}

// TestGetTestResultNotFound checks non-success statuses surface as fetch errors.
func TestGetTestResultNotFound(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	_, err := newClient(t, server).GetTestResult(t.Context(), "missing")
	require.True(t, networkapi.IsFetchError(err))
	require.EqualError(t, err, "failed to fetch the result: 404 - Not Found")
}

// TestListTests checks the application version is part of the path.
func TestListTests(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.SetTestPages("app1", "v1",
		[]any{map[string]any{"testId": "t1", "title": "Login flow"}},
		[]any{map[string]any{"testId": "t2"}},
	)

	tests, err := newClient(t, server).ListTests(t.Context(), "app1", "v1")
	require.NoError(t, err)
	require.Equal(t, []networkapi.Test{
		{TestID: "t1", Title: ptr.To("Login flow")},
		{TestID: "t2"},
	}, tests)
	require.Equal(t, []string{"apps/app1/versions/v1/tests", "apps/app1/versions/v1/tests?page=1"}, server.Requests())
}

// TestContextCancellation checks requests observe the context.
func TestContextCancellation(t *testing.T) {
	t.Parallel()

	server := fake.New(credentials)
	defer server.Close()

	server.SetDevicePages([]any{device("d1")})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := newClient(t, server).ListDevices(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, networkapi.IsFetchError(err))
}

func TestNewInvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, url := range []string{"", "the.suite.st/api", "ftp://the.suite.st/", "://"} {
		_, err := networkapi.New(url, credentials)
		require.ErrorIs(t, err, networkapi.ErrInvalidBaseURL, url)
	}
}

func TestEndpoints(t *testing.T) {
	t.Parallel()

	endpoints, err := networkapi.NewEndpoints("https://the.suite.st/api/public/v3")
	require.NoError(t, err)
	require.Equal(t, networkapi.DefaultBaseURL, endpoints.Base())
	require.Equal(t, "https://the.suite.st/api/public/v3/devices", endpoints.Devices())

	run, err := endpoints.TestPackRun("8f1c0d1e-7b9a-4c33-9a1a-1f2e3d4c5b6a")
	require.NoError(t, err)
	require.Equal(t, "https://the.suite.st/api/public/v3/test-pack-runs/8f1c0d1e-7b9a-4c33-9a1a-1f2e3d4c5b6a?detailed=true", run)

	result, err := endpoints.TestResult("a/b")
	require.NoError(t, err)
	require.Equal(t, "https://the.suite.st/api/public/v3/results/a%2Fb", result)

	tests, err := endpoints.Tests("app", "v 1")
	require.NoError(t, err)
	require.Equal(t, "https://the.suite.st/api/public/v3/apps/app/versions/v%201/tests", tests)
}
