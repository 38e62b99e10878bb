// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fuel-station-dashboard/internal/utils"
)

// notFound answers unknown paths with a JSON 404. It is also the router's
// MethodNotAllowed handler: a known path called with a method it does not
// accept is answered 404, not 405.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
