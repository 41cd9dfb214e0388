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
	"encoding/json"

	"k8s.io/utils/ptr"
)

// RunEntry is a single test executed on a single device within a test pack run.
type RunEntry struct {
	ResultID string `json:"resultId"`
	DeviceID string `json:"deviceId"`
	TestID   string `json:"testId"`
}

// TestPackRun is a batch execution of tests across devices.  Only the
// fields that are cross referenced are typed, the application configuration
// is passed through verbatim.
type TestPackRun struct {
	List               []RunEntry      `json:"list"`
	EffectiveAppConfig json.RawMessage `json:"effectiveAppConfig,omitempty"`
}

// Entry returns the run entry that produced the given result, or nil.
func (r *TestPackRun) Entry(resultID string) *RunEntry {
	for i := range r.List {
		if r.List[i].ResultID == resultID {
			return &r.List[i]
		}
	}

	return nil
}

// TestResultDetail is the detailed payload of a test result.
type TestResultDetail struct {
	Def      json.RawMessage `json:"def,omitempty"`
	Snippets json.RawMessage `json:"snippets,omitempty"`
	Elements json.RawMessage `json:"elements,omitempty"`
	Results  json.RawMessage `json:"results,omitempty"`
}

// TestResult is the outcome of one test within a run.
type TestResult struct {
	Detailed TestResultDetail `json:"detailed"`
}

// Device is a device registered with the organization.
type Device struct {
	DeviceID     string  `json:"deviceId"`
	CustomName   *string `json:"customName,omitempty"`
	Manufacturer *string `json:"manufacturer,omitempty"`
	Model        *string `json:"model,omitempty"`
}

// Test is a test defined for an application version.
type Test struct {
	TestID string  `json:"testId"`
	Title  *string `json:"title,omitempty"`
}

// Page is a single page of a paginated listing.
type Page[T any] struct {
	Values []T      `json:"values"`
	Next   *string `json:"next,omitempty"`
}

// UnmarshalJSON decodes a page.  A next link that is not a string ends the
// listing rather than failing it.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var page struct {
		Values []T             `json:"values"`
		Next   json.RawMessage `json:"next"`
	}

	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}

	p.Values = page.Values
	p.Next = nil

	var next string

	if len(page.Next) != 0 && json.Unmarshal(page.Next, &next) == nil && next != "" {
		p.Next = &next
	}

	return nil
}

// NextURL returns the link to the next page, empty on the last page.
func (p *Page[T]) NextURL() string {
	return ptr.Deref(p.Next, "")
}
