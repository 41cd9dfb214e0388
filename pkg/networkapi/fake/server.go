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

// Package fake provides an in-process Network API for testing.
package fake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"
)

// Prefix is where the API is mounted, mirroring the public deployment.
const Prefix = "/api/public/v3/"

// Server serves canned test pack runs, results and paginated listings.
type Server struct {
	server      *httptest.Server
	credentials networkapi.Credentials

	lock        sync.Mutex
	runs        map[string]any
	results     map[string]any
	devicePages [][]any
	testPages   map[string][][]any
	failures    map[string]int
	raw         map[string]string
	requests    []string
}

// New starts a server that accepts the given credentials.
func New(credentials networkapi.Credentials) *Server {
	s := &Server{
		credentials: credentials,
		runs:        map[string]any{},
		results:     map[string]any{},
		testPages:   map[string][][]any{},
		failures:    map[string]int{},
		raw:         map[string]string{},
	}

	router := chi.NewRouter()
	router.Use(s.record, s.authenticate, s.fail)

	router.Route(strings.TrimSuffix(Prefix, "/"), func(r chi.Router) {
		r.Get("/test-pack-runs/{testPackRunId}", s.getTestPackRun)
		r.Get("/results/{testResultId}", s.getTestResult)
		r.Get("/devices", s.listDevices)
		r.Get("/apps/{appId}/versions/{versionId}/tests", s.listTests)
	})

	s.server = httptest.NewServer(router)

	return s
}

// URL is the base URL clients should be configured with.
func (s *Server) URL() string {
	return s.server.URL + Prefix
}

func (s *Server) Close() {
	s.server.Close()
}

func (s *Server) AddRun(id string, run any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.runs[id] = run
}

func (s *Server) AddResult(id string, result any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.results[id] = result
}

// SetDevicePages sets the device listing, one argument per page.
func (s *Server) SetDevicePages(pages ...[]any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.devicePages = pages
}

// SetTestPages sets the test listing for an application version, one argument per page.
func (s *Server) SetTestPages(appID, versionID string, pages ...[]any) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.testPages[appID+"/"+versionID] = pages
}

// Fail makes the request URI, relative to the base URL, fail with the given status.
func (s *Server) Fail(uri string, status int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.failures[uri] = status
}

// Raw serves the body verbatim for the request URI, relative to the base URL.
func (s *Server) Raw(uri, body string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.raw[uri] = body
}

// Requests returns the request URIs seen so far, relative to the base URL.
func (s *Server) Requests() []string {
	s.lock.Lock()
	defer s.lock.Unlock()

	out := make([]string, len(s.requests))
	copy(out, s.requests)

	return out
}

func relative(r *http.Request) string {
	return strings.TrimPrefix(r.URL.RequestURI(), Prefix)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.requests = append(s.requests, relative(r))
		s.lock.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(networkapi.HeaderTokenID) != s.credentials.TokenID || r.Header.Get(networkapi.HeaderTokenPassword) != s.credentials.TokenPassword {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) fail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		status, failed := s.failures[relative(r)]
		body, raw := s.raw[relative(r)]
		s.lock.Unlock()

		if failed {
			w.WriteHeader(status)
			return
		}

		if raw {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (s *Server) getTestPackRun(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	run, ok := s.runs[chi.URLParam(r, "testPackRunId")]
	s.lock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, run)
}

func (s *Server) getTestResult(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	result, ok := s.results[chi.URLParam(r, "testResultId")]
	s.lock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, result)
}

// page serves the requested page and links the next one with an absolute URL.
func (s *Server) page(w http.ResponseWriter, r *http.Request, pages [][]any) {
	index := 0

	if p := r.URL.Query().Get("page"); p != "" {
		i, err := strconv.Atoi(p)
		if err != nil || i < 0 || i >= len(pages) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		index = i
	}

	body := map[string]any{
		"values": []any{},
	}

	if index < len(pages) {
		body["values"] = pages[index]
	}

	if index+1 < len(pages) {
		next := *r.URL
		next.Scheme = "http"
		next.Host = r.Host

		query := next.Query()
		query.Set("page", strconv.Itoa(index+1))
		next.RawQuery = query.Encode()

		body["next"] = next.String()
	}

	writeJSON(w, body)
}

func (s *Server) listDevices(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	pages := s.devicePages
	s.lock.Unlock()

	s.page(w, r, pages)
}

func (s *Server) listTests(w http.ResponseWriter, r *http.Request) {
	key := fmt.Sprintf("%s/%s", chi.URLParam(r, "appId"), chi.URLParam(r, "versionId"))

	s.lock.Lock()
	pages, ok := s.testPages[key]
	s.lock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.page(w, r, pages)
}
