/*
Copyright 2026 the CDP Integration Test Authors.

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

// Package api provides integration test utilities for the CDP engineering
// data web service.
//
// # Things
//
// The server's resources are handled as opaque JSON objects (Thing) and
// addressed through the Property and ClassKind constants.  Nothing here
// models the server's data; the suites only assert what comes back against
// literal values from the seeded dataset.
//
// # Client
//
// APIClient is a deliberately small HTTP wrapper:
//   - Basic authentication with the configured credentials
//   - an optional Accept-CDP version header per request
//   - W3C trace context on every request, with the trace ID and a curl
//     reproduction logged on failure
//   - a single large timeout and no retries
//
// Any non-2xx response is returned as *HTTPError so specs can assert on the
// status code and the server's message.
//
// # Dataset
//
// Specs that mutate data call RestoreOnCleanup, which posts to /Data/Restore
// after the spec so the next one starts from the seeded dataset again.
package api
