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

package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"
)

var (
	// ErrMismatch is returned when the requested result was not produced
	// by the requested test pack run.
	ErrMismatch = errors.New("test pack run ID and test result ID do not match")

	// ErrInvalidRequest is returned when a request is missing parameters.
	ErrInvalidRequest = errors.New("invalid request")
)

// Request identifies a single test result and the context it was run in.
type Request struct {
	Credentials   networkapi.Credentials
	TestPackRunID string
	TestResultID  string
	AppID         string
	VersionID     string
}

// Validate checks all parameters are set.
func (r *Request) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: no request", ErrInvalidRequest)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"token ID", r.Credentials.TokenID},
		{"token password", r.Credentials.TokenPassword},
		{"test pack run ID", r.TestPackRunID},
		{"test result ID", r.TestResultID},
		{"app ID", r.AppID},
		{"version ID", r.VersionID},
	}

	var missing []string

	for _, field := range fields {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}

	return nil
}

// SnippetName is how a test is named when referenced as a snippet.
type SnippetName struct {
	Name string `json:"name"`
}

// ResultData is everything needed to render a single test result.
// Upstream fields the Network API leaves out are left out here too.
type ResultData struct {
	TestDefinition     json.RawMessage        `json:"testDefinition,omitempty"`
	SnippetDefinitions json.RawMessage        `json:"snippetDefinitions,omitempty"`
	ElementNames       json.RawMessage        `json:"elementNames,omitempty"`
	TestResults        json.RawMessage        `json:"testResults,omitempty"`
	AppConfig          json.RawMessage        `json:"appConfig,omitempty"`
	SnippetNames       map[string]SnippetName `json:"snippetNames"`
	DeviceName         string                 `json:"deviceName"`
	TestName           string                 `json:"testName"`
}
