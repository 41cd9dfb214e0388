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

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/SuitestAutomation/translate-demo/pkg/options"
	"github.com/SuitestAutomation/translate-demo/pkg/provider"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

var errMissingFlags = errors.New("missing required flags")

type flags struct {
	testPackRunID string
	testResultID  string
	appID         string
	versionID     string
	output        string
}

func (f *flags) addFlags(set *pflag.FlagSet) {
	set.StringVar(&f.testPackRunID, "test-pack-run-id", "", "Test pack run the result belongs to.")
	set.StringVar(&f.testResultID, "test-result-id", "", "Test result to load.")
	set.StringVar(&f.appID, "app-id", "", "Application the test belongs to.")
	set.StringVar(&f.versionID, "version-id", "", "Application version the test belongs to.")
	set.StringVarP(&f.output, "output", "o", "", "Write to a file rather than standard output.")
}

func write(path string, data *provider.ResultData) error {
	var out io.Writer = os.Stdout

	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}

		defer f.Close()

		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

func run(ctx context.Context) error {
	var o options.Options

	var f flags

	o.AddFlags(pflag.CommandLine)
	f.addFlags(pflag.CommandLine)

	pflag.Parse()

	o.SetupLogging()

	if f.testPackRunID == "" || f.testResultID == "" || f.appID == "" || f.versionID == "" {
		return fmt.Errorf("%w: --test-pack-run-id, --test-result-id, --app-id and --version-id must be set", errMissingFlags)
	}

	if err := o.LoadEnv(); err != nil {
		return err
	}

	credentials, err := o.Credentials()
	if err != nil {
		return err
	}

	ctx = log.IntoContext(ctx, log.Log.WithName("suitest-result-data"))

	p, err := o.Provider(ctx)
	if err != nil {
		return err
	}

	request := &provider.Request{
		Credentials:   credentials,
		TestPackRunID: f.testPackRunID,
		TestResultID:  f.testResultID,
		AppID:         f.appID,
		VersionID:     f.versionID,
	}

	data, err := p.GetData(ctx, request)
	if err != nil {
		return err
	}

	return write(f.output, data)
}

func main() {
	if err := run(cr.SetupSignalHandler()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
