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

package options

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"
	"github.com/SuitestAutomation/translate-demo/pkg/openapi"
	"github.com/SuitestAutomation/translate-demo/pkg/provider"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

const (
	EnvTokenID       = "SUITEST_TOKEN_ID"
	EnvTokenPassword = "SUITEST_TOKEN_PASSWORD"
)

var ErrMissingCredentials = errors.New("missing credentials")

// Options are shared by all commands.
type Options struct {
	// NetworkAPIURL is the base URL of the Network API.
	NetworkAPIURL string

	// NetworkAPITimeout bounds each individual request.
	NetworkAPITimeout time.Duration

	// SchemaValidation checks responses against the API document.
	SchemaValidation bool

	// EnvFile is an optional dotenv file to load credentials from.
	EnvFile string

	// TokenID and TokenPassword authenticate requests, if not set they are
	// read from the environment.
	TokenID       string
	TokenPassword string

	zapOptions zap.Options
}

// AddFlags registers flags with the provided flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.NetworkAPIURL, "network-api-url", networkapi.DefaultBaseURL, "Base URL of the Network API.")
	f.DurationVar(&o.NetworkAPITimeout, "network-api-timeout", 30*time.Second, "Timeout for individual Network API requests.")
	f.BoolVar(&o.SchemaValidation, "schema-validation", true, "Validate Network API responses against the expected schema.")
	f.StringVar(&o.EnvFile, "env-file", ".env", "Optional dotenv file containing credentials.")
	f.StringVar(&o.TokenID, "token-id", "", "Network API token ID, defaults to $"+EnvTokenID+".")
	f.StringVar(&o.TokenPassword, "token-password", "", "Network API token password, defaults to $"+EnvTokenPassword+".")

	goflags := flag.NewFlagSet("logging", flag.ContinueOnError)
	o.zapOptions.BindFlags(goflags)

	f.AddGoFlagSet(goflags)
}

// SetupLogging installs the global logger.
func (o *Options) SetupLogging() {
	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOptions)))
}

// LoadEnv loads the dotenv file if it exists, existing variables take precedence.
func (o *Options) LoadEnv() error {
	if o.EnvFile == "" {
		return nil
	}

	if _, err := os.Stat(o.EnvFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	if err := godotenv.Load(o.EnvFile); err != nil {
		return fmt.Errorf("loading %s: %w", o.EnvFile, err)
	}

	return nil
}

// Credentials returns credentials from flags, falling back to the environment.
func (o *Options) Credentials() (networkapi.Credentials, error) {
	credentials := networkapi.Credentials{
		TokenID:       o.TokenID,
		TokenPassword: o.TokenPassword,
	}

	if credentials.TokenID == "" {
		credentials.TokenID = os.Getenv(EnvTokenID)
	}

	if credentials.TokenPassword == "" {
		credentials.TokenPassword = os.Getenv(EnvTokenPassword)
	}

	if credentials.TokenID == "" || credentials.TokenPassword == "" {
		return credentials, fmt.Errorf("%w: set --token-id and --token-password or %s and %s", ErrMissingCredentials, EnvTokenID, EnvTokenPassword)
	}

	return credentials, nil
}

// ClientOptions returns the client options implied by the flags.
func (o *Options) ClientOptions(ctx context.Context) ([]networkapi.Option, error) {
	options := []networkapi.Option{
		networkapi.WithHTTPClient(&http.Client{
			Timeout: o.NetworkAPITimeout,
		}),
	}

	if o.SchemaValidation {
		validator, err := openapi.NewValidator(ctx)
		if err != nil {
			return nil, err
		}

		options = append(options, networkapi.WithValidator(validator))
	}

	return options, nil
}

// Provider returns a provider configured by the flags.
func (o *Options) Provider(ctx context.Context) (*provider.Provider, error) {
	options, err := o.ClientOptions(ctx)
	if err != nil {
		return nil, err
	}

	// Validate the URL up front rather than on first use.
	if _, err := networkapi.NewEndpoints(o.NetworkAPIURL); err != nil {
		return nil, err
	}

	return provider.NewForBaseURL(o.NetworkAPIURL, options...), nil
}
