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

//nolint:revive
package handler

import (
	"errors"
	"net/http"

	"github.com/SuitestAutomation/translate-demo/pkg/networkapi"
	"github.com/SuitestAutomation/translate-demo/pkg/provider"
	coreerrors "github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"
)

// GetApiV1TestPackRunsTestPackRunIDResultsTestResultIDParams are the query
// parameters of the result data endpoint.
type GetApiV1TestPackRunsTestPackRunIDResultsTestResultIDParams struct {
	AppID     string
	VersionID string
}

type Handler struct {
	// provider assembles result data.
	provider provider.Interface
}

func New(provider provider.Interface) (*Handler, error) {
	h := &Handler{
		provider: provider,
	}

	return h, nil
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// credentials are forwarded from the caller, this service holds none of its own.
func credentials(r *http.Request) networkapi.Credentials {
	return networkapi.Credentials{
		TokenID:       r.Header.Get(networkapi.HeaderTokenID),
		TokenPassword: r.Header.Get(networkapi.HeaderTokenPassword),
	}
}

// handleError maps provider errors to HTTP responses.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var fetchError *networkapi.FetchError

	switch {
	case errors.Is(err, provider.ErrInvalidRequest), errors.Is(err, provider.ErrMismatch):
		coreerrors.HandleError(w, r, coreerrors.OAuth2InvalidRequest(err.Error()).WithError(err))
	case errors.As(err, &fetchError) && fetchError.StatusCode == http.StatusNotFound:
		coreerrors.HandleError(w, r, coreerrors.HTTPNotFound().WithError(err))
	default:
		coreerrors.HandleError(w, r, coreerrors.OAuth2ServerError("unable to read test result data").WithError(err))
	}
}

func (h *Handler) GetApiV1TestPackRunsTestPackRunIDResultsTestResultID(w http.ResponseWriter, r *http.Request, testPackRunID, testResultID string, params GetApiV1TestPackRunsTestPackRunIDResultsTestResultIDParams) {
	request := &provider.Request{
		Credentials:   credentials(r),
		TestPackRunID: testPackRunID,
		TestResultID:  testResultID,
		AppID:         params.AppID,
		VersionID:     params.VersionID,
	}

	result, err := h.provider.GetData(r.Context(), request)
	if err != nil {
		handleError(w, r, err)
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) GetHealthz(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)
	w.WriteHeader(http.StatusOK)
}
