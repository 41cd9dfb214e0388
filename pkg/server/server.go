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

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"

	"github.com/SuitestAutomation/translate-demo/pkg/options"
	"github.com/SuitestAutomation/translate-demo/pkg/provider"
	"github.com/SuitestAutomation/translate-demo/pkg/server/handler"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Options configure the HTTP server.
type Options struct {
	// ListenAddress tells the server what to listen on.
	ListenAddress string

	// ReadHeaderTimeout defines the timeout for reading request headers.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":6080", "API listener address.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", time.Second, "How long to wait for request headers.")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "How long to wait for requests to drain on shutdown.")
}

type Server struct {
	// Options are server specific options.
	Options Options

	// CoreOptions are shared with other commands.
	CoreOptions options.Options
}

func (s *Server) AddFlags(f *pflag.FlagSet) {
	s.Options.AddFlags(f)
	s.CoreOptions.AddFlags(f)
}

func (s *Server) SetupLogging() {
	s.CoreOptions.SetupLogging()
}

// logging attaches the request logger to the context.
func logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		logger := log.FromContext(ctx).WithValues("method", r.Method, "path", r.URL.Path, "requestID", middleware.GetReqID(ctx))

		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(log.IntoContext(ctx, logger)))

		logger.Info("request", "status", ww.Status(), "duration", time.Since(start))
	})
}

// NewRouter returns the routes served by the API.
func NewRouter(ctx context.Context, provider provider.Interface) (chi.Router, error) {
	h, err := handler.New(provider)
	if err != nil {
		return nil, err
	}

	base := log.FromContext(ctx)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(log.IntoContext(r.Context(), base)))
		})
	})
	router.Use(logging)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.GetHealthz)
	router.Get("/api/v1/test-pack-runs/{testPackRunID}/results/{testResultID}", func(w http.ResponseWriter, r *http.Request) {
		params := handler.GetApiV1TestPackRunsTestPackRunIDResultsTestResultIDParams{
			AppID:     r.URL.Query().Get("appId"),
			VersionID: r.URL.Query().Get("versionId"),
		}

		h.GetApiV1TestPackRunsTestPackRunIDResultsTestResultID(w, r, chi.URLParam(r, "testPackRunID"), chi.URLParam(r, "testResultID"), params)
	})

	return router, nil
}

// GetServer returns the HTTP server, ready to listen.
func (s *Server) GetServer(ctx context.Context) (*http.Server, error) {
	provider, err := s.CoreOptions.Provider(ctx)
	if err != nil {
		return nil, err
	}

	router, err := NewRouter(ctx, provider)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              s.Options.ListenAddress,
		ReadHeaderTimeout: s.Options.ReadHeaderTimeout,
		Handler:           router,
	}

	return server, nil
}
