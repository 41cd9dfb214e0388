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

// Package api provides integration test utilities for assembling test result
// data against a live Network API.
//
// The suites are driven entirely by configuration, a token pair and the IDs of
// an existing test pack run, one of its results and the application version it
// was run against.  See LoadTestConfig for the variables.  When they are not
// set the suites are skipped so they are safe to run alongside unit tests.
package api
