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
	"context"
	"fmt"
	"net/url"

	"github.com/spjmurray/go-util/pkg/set"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// FetchAll follows the next link of each page starting at the given URL and
// returns all values in page order.  Any failure discards whatever has been
// accumulated so far.
func FetchAll[T any](ctx context.Context, c *Client, operationID, startURL string) ([]T, error) {
	log := log.FromContext(ctx)

	var values []T

	var pages int

	visited := set.New[string]()

	for next := startURL; next != ""; {
		if visited.Contains(next) {
			return nil, fmt.Errorf("%w: %s", ErrPaginationLoop, next)
		}

		visited.Add(next)

		page, err := get[Page[T]](ctx, c, operationID, next)
		if err != nil {
			return nil, err
		}

		pages++

		values = append(values, page.Values...)

		if next, err = resolveNext(next, page.NextURL()); err != nil {
			return nil, err
		}
	}

	log.V(1).Info("fetched all pages", "operation", operationID, "pages", pages, "values", len(values))

	if values == nil {
		values = []T{}
	}

	return values, nil
}

// resolveNext turns a next link into an absolute URL.  Links are expected
// to be fully qualified, relative ones are tolerated.
func resolveNext(current, next string) (string, error) {
	if next == "" {
		return "", nil
	}

	base, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("%w: parsing page url: %w", ErrSchema, err)
	}

	ref, err := url.Parse(next)
	if err != nil {
		return "", fmt.Errorf("%w: parsing next link: %w", ErrSchema, err)
	}

	return base.ResolveReference(ref).String(), nil
}
