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
	"fmt"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// DefaultBaseURL is the public Network API v3.
const DefaultBaseURL = "https://the.suite.st/api/public/v3/"

// Endpoints contains all API endpoint patterns, relative to a base URL.
type Endpoints struct {
	base string
}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints(baseURL string) (*Endpoints, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidBaseURL, baseURL)
	}

	base := u.String()
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return &Endpoints{
		base: base,
	}, nil
}

// Base returns the normalized base URL.
func (e *Endpoints) Base() string {
	return e.base
}

func pathParameter(name, value string) (string, error) {
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

func (e *Endpoints) TestPackRun(testPackRunID string) (string, error) {
	id, err := pathParameter("testPackRunId", testPackRunID)
	if err != nil {
		return "", err
	}

	return e.base + "test-pack-runs/" + id + "?detailed=true", nil
}

func (e *Endpoints) TestResult(testResultID string) (string, error) {
	id, err := pathParameter("testResultId", testResultID)
	if err != nil {
		return "", err
	}

	return e.base + "results/" + id, nil
}

func (e *Endpoints) Devices() string {
	return e.base + "devices"
}

func (e *Endpoints) Tests(appID, versionID string) (string, error) {
	app, err := pathParameter("appId", appID)
	if err != nil {
		return "", err
	}

	version, err := pathParameter("versionId", versionID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%sapps/%s/versions/%s/tests", e.base, app, version), nil
}
