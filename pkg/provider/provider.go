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

//go:generate go tool mockgen -source=provider.go -destination=mock/interface.go -package=mock

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"

	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Interface assembles test result data.
type Interface interface {
	GetData(ctx context.Context, request *Request) (*ResultData, error)
}

// ClientFactory creates an API client authenticated with the given credentials.
type ClientFactory func(credentials networkapi.Credentials) (networkapi.Interface, error)

// Provider joins test pack run, result, device and test listings into
// a single record.
type Provider struct {
	factory ClientFactory
}

var _ Interface = &Provider{}

// New returns a new provider.
func New(factory ClientFactory) *Provider {
	return &Provider{
		factory: factory,
	}
}

// NewForBaseURL returns a provider talking to the Network API at the given URL.
func NewForBaseURL(baseURL string, options ...networkapi.Option) *Provider {
	factory := func(credentials networkapi.Credentials) (networkapi.Interface, error) {
		return networkapi.New(baseURL, credentials, options...)
	}

	return New(factory)
}

// GetData loads the data for a test result from the public Network API.
func GetData(ctx context.Context, tokenID, tokenPassword, testPackRunID, testResultID, appID, versionID string) (*ResultData, error) {
	request := &Request{
		Credentials: networkapi.Credentials{
			TokenID:       tokenID,
			TokenPassword: tokenPassword,
		},
		TestPackRunID: testPackRunID,
		TestResultID:  testResultID,
		AppID:         appID,
		VersionID:     versionID,
	}

	return NewForBaseURL(networkapi.DefaultBaseURL).GetData(ctx, request)
}

// GetData assembles the data required to render a test result.
func (p *Provider) GetData(ctx context.Context, request *Request) (*ResultData, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	log := log.FromContext(ctx).WithValues("testPackRunID", request.TestPackRunID, "testResultID", request.TestResultID)

	client, err := p.factory(request.Credentials)
	if err != nil {
		return nil, fmt.Errorf("creating network api client: %w", err)
	}

	run, result, err := getRunAndResult(ctx, client, request)
	if err != nil {
		return nil, err
	}

	entry := run.Entry(request.TestResultID)
	if entry == nil {
		return nil, fmt.Errorf("%w: result %s is not part of test pack run %s", ErrMismatch, request.TestResultID, request.TestPackRunID)
	}

	devices, tests, err := listDevicesAndTests(ctx, client, request)
	if err != nil {
		return nil, err
	}

	device := findDevice(devices, entry.DeviceID)
	if device == nil {
		log.V(1).Info("device not found", "deviceID", entry.DeviceID)
	}

	test := findTest(tests, entry.TestID)
	if test == nil {
		log.V(1).Info("test not found", "testID", entry.TestID, "appID", request.AppID, "versionID", request.VersionID)
	}

	data := &ResultData{
		TestDefinition:     result.Detailed.Def,
		SnippetDefinitions: result.Detailed.Snippets,
		ElementNames:       result.Detailed.Elements,
		TestResults:        result.Detailed.Results,
		AppConfig:          run.EffectiveAppConfig,
		SnippetNames:       SnippetNames(tests),
		DeviceName:         DeviceName(device, entry.DeviceID),
		TestName:           TestName(test, entry.TestID),
	}

	return data, nil
}

// getRunAndResult fetches both concurrently.  When both fail the run's error
// is the one reported.
func getRunAndResult(ctx context.Context, client networkapi.Interface, request *Request) (*networkapi.TestPackRun, *networkapi.TestResult, error) {
	var (
		run       *networkapi.TestPackRun
		result    *networkapi.TestResult
		runErr    error
		resultErr error
	)

	var wg conc.WaitGroup

	wg.Go(func() {
		run, runErr = client.GetTestPackRun(ctx, request.TestPackRunID)
	})

	wg.Go(func() {
		result, resultErr = client.GetTestResult(ctx, request.TestResultID)
	})

	wg.Wait()

	if runErr != nil {
		return nil, nil, fmt.Errorf("getting test pack run: %w", runErr)
	}

	if resultErr != nil {
		return nil, nil, fmt.Errorf("getting test result: %w", resultErr)
	}

	return run, result, nil
}

// listDevicesAndTests fetches both listings concurrently, neither depends
// on the other.
func listDevicesAndTests(ctx context.Context, client networkapi.Interface, request *Request) ([]networkapi.Device, []networkapi.Test, error) {
	var (
		devices []networkapi.Device
		tests   []networkapi.Test
	)

	p := pool.New().
		WithErrors().
		WithFirstError().
		WithContext(ctx).
		WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		var err error

		if devices, err = client.ListDevices(ctx); err != nil {
			return fmt.Errorf("listing devices: %w", err)
		}

		return nil
	})

	p.Go(func(ctx context.Context) error {
		var err error

		if tests, err = client.ListTests(ctx, request.AppID, request.VersionID); err != nil {
			return fmt.Errorf("listing tests: %w", err)
		}

		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return devices, tests, nil
}

func findDevice(devices []networkapi.Device, deviceID string) *networkapi.Device {
	for i := range devices {
		if devices[i].DeviceID == deviceID {
			return &devices[i]
		}
	}

	return nil
}

func findTest(tests []networkapi.Test, testID string) *networkapi.Test {
	for i := range tests {
		if tests[i].TestID == testID {
			return &tests[i]
		}
	}

	return nil
}

// DeviceName prefers the custom name, then the manufacturer and model
// concatenated without a separator.  Unknown devices get a placeholder.
func DeviceName(device *networkapi.Device, deviceID string) string {
	if device == nil {
		return fmt.Sprintf("Unknown device (%s)", deviceID)
	}

	if name := ptr.Deref(device.CustomName, ""); name != "" {
		return name
	}

	return ptr.Deref(device.Manufacturer, "") + ptr.Deref(device.Model, "")
}

// TestName returns the test title, or a placeholder for unknown tests.
func TestName(test *networkapi.Test, testID string) string {
	if test == nil || test.Title == nil {
		return fmt.Sprintf("Unknown test (%s)", testID)
	}

	return *test.Title
}

// SnippetNames maps every test ID to its title.  Snippets are tests
// referenced from within other tests, so this resolves their names.
func SnippetNames(tests []networkapi.Test) map[string]SnippetName {
	names := make(map[string]SnippetName, len(tests))

	for _, test := range tests {
		names[test.TestID] = SnippetName{
			Name: ptr.Deref(test.Title, ""),
		}
	}

	return names
}
