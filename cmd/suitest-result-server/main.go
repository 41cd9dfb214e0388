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
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/SuitestAutomation/translate-demo/pkg/constants"
	"github.com/SuitestAutomation/translate-demo/pkg/server"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

func run() error {
	s := &server.Server{}

	s.AddFlags(pflag.CommandLine)

	pflag.Parse()

	s.SetupLogging()

	logger := log.Log.WithName("init")
	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	if err := s.CoreOptions.LoadEnv(); err != nil {
		return err
	}

	ctx := cr.SetupSignalHandler()

	httpServer, err := s.GetServer(log.IntoContext(ctx, log.Log.WithName("server")))
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Options.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown failed")
		}
	}()

	logger.Info("listening", "address", s.Options.ListenAddress)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
