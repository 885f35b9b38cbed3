// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// checkHTTPMethod is the router's MethodNotAllowed handler. It answers with
// the pipeline's JSON 405 and an Allow header listing the methods the
// matched path does handle.
func (h *Handler) checkHTTPMethod(w http.ResponseWriter, r *http.Request) {
	path := r.URL.RawPath
	if path == "" {
		path = r.URL.Path
	}

	allowed := make([]string, 0, len(knownMethods))
	for _, method := range knownMethods {
		if h.router.Find(chi.NewRouteContext(), method, path) != "" {
			allowed = append(allowed, method)
		}
	}
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}

	h.writeError(w, ErrMethodNotAllowed)
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	h.writeError(w, ErrRouteNotFound)
}
