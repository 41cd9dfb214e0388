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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"
	"github.com/SuitestAutomation/translate-demo/pkg/provider"
)

func request() *provider.Request {
	return &provider.Request{
		Credentials:   config.Credentials(),
		TestPackRunID: config.TestPackRunID,
		TestResultID:  config.TestResultID,
		AppID:         config.AppID,
		VersionID:     config.VersionID,
	}
}

var _ = Describe("Network API", func() {
	Context("When listing devices", func() {
		It("should return every device across all pages", func() {
			// Given: valid credentials
			// When: I list devices
			devices, err := client.ListDevices(ctx)

			// Then: the listing conforms to the schema
			Expect(err).NotTo(HaveOccurred())

			for _, device := range devices {
				Expect(device.DeviceID).NotTo(BeEmpty())
			}

			GinkgoWriter.Printf("Found %d devices\n", len(devices))
		})
	})

	Context("When listing tests", func() {
		It("should return every test for the application version", func() {
			tests, err := client.ListTests(ctx, config.AppID, config.VersionID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tests).NotTo(BeEmpty())

			GinkgoWriter.Printf("Found %d tests\n", len(tests))
		})
	})

	Context("When reading the test pack run", func() {
		It("should contain the configured result", func() {
			run, err := client.GetTestPackRun(ctx, config.TestPackRunID)
			Expect(err).NotTo(HaveOccurred())
			Expect(run.Entry(config.TestResultID)).NotTo(BeNil())
		})
	})

	Context("When authenticating with bad credentials", func() {
		It("should surface the HTTP status", func() {
			bad, err := networkapi.New(config.BaseURL, networkapi.Credentials{TokenID: config.TokenID, TokenPassword: "invalid"})
			Expect(err).NotTo(HaveOccurred())

			_, err = bad.ListDevices(ctx)
			Expect(networkapi.IsFetchError(err)).To(BeTrue())
		})
	})
})

var _ = Describe("Result data", func() {
	Context("When the run and result match", func() {
		It("should assemble the result data", func() {
			// Given: a result produced by the configured run
			// When: I load the result data
			result, err := data.GetData(ctx, request())

			// Then: names are resolved and payloads are present
			Expect(err).NotTo(HaveOccurred())
			Expect(result.DeviceName).NotTo(BeEmpty())
			Expect(result.TestName).NotTo(BeEmpty())
			Expect(result.TestDefinition).NotTo(BeEmpty())
			Expect(result.SnippetNames).NotTo(BeEmpty())
		})
	})

	Context("When the run does not contain the result", func() {
		It("should report mismatched IDs", func() {
			// Given: a result ID that is not part of the run
			r := request()
			r.TestResultID = "00000000-0000-0000-0000-000000000000"

			// When: I load the result data
			_, err := data.GetData(ctx, r)

			// Then: it is rejected as a mismatch, unless the result itself cannot be read
			if networkapi.IsFetchError(err) {
				Skip("result lookup failed before the run could be checked")
			}

			Expect(err).To(MatchError(provider.ErrMismatch))
		})
	})
})
