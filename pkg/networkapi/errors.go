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

package networkapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

var (
	// ErrSchema is returned when a response body does not have the expected shape.
	ErrSchema = errors.New("unexpected response schema")

	// ErrPaginationLoop is returned when a next link points at a page already read.
	ErrPaginationLoop = errors.New("pagination loop detected")

	// ErrInvalidBaseURL is returned when the client is configured with a bad base URL.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// FetchError is returned when the API responds with a non-success status.
type FetchError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the HTTP status text.
	Status string
	// URL is the request that failed.
	URL string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch the result: %d - %s", e.StatusCode, e.Status)
}

// IsFetchError tells whether the error chain contains a FetchError.
func IsFetchError(err error) bool {
	var target *FetchError

	return errors.As(err, &target)
}

func newFetchError(url string, resp *http.Response) *FetchError {
	// The status line includes the code, which we already report separately.
	status := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if status == "" {
		status = http.StatusText(resp.StatusCode)
	}

	return &FetchError{
		StatusCode: resp.StatusCode,
		Status:     status,
		URL:        url,
	}
}

func success(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
