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

package fake

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/cdp-integration/webservice-tests/test/api"
)

// version is a major.minor.patch protocol version as sent in Accept-CDP.
type version [3]int

// baseVersion is assumed when a client does not ask for one.
//
//nolint:gochecknoglobals
var baseVersion = version{1, 0, 0}

// versionedProperties are only serialized to clients asking for at least
// the given version.
//
//nolint:gochecknoglobals
var versionedProperties = map[string]version{
	api.PropertyThingPreference: {1, 2, 0},
	api.PropertyActor:           {1, 3, 0},
}

func parseVersion(s string) (version, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 || len(parts) > 3 {
		return version{}, false
	}

	var v version

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return version{}, false
		}

		v[i] = n
	}

	return v, true
}

func requestedVersion(r *http.Request) version {
	if v, ok := parseVersion(r.Header.Get(api.HeaderAcceptCDP)); ok {
		return v
	}

	return baseVersion
}

func (v version) less(o version) bool {
	for i := range v {
		if v[i] != o[i] {
			return v[i] < o[i]
		}
	}

	return false
}

// filter returns the thing as a client of this version would see it.
func (v version) filter(thing api.Thing) api.Thing {
	out := make(api.Thing, len(thing))

	for k, value := range thing {
		if minimum, ok := versionedProperties[k]; ok && v.less(minimum) {
			continue
		}

		out[k] = value
	}

	return out
}

type userContextKey struct{}

type contextUser struct {
	name string
	user User
}

func withUser(ctx context.Context, name string, user User) context.Context {
	return context.WithValue(ctx, userContextKey{}, contextUser{name: name, user: user})
}

func userFrom(ctx context.Context) (string, User) {
	value, _ := ctx.Value(userContextKey{}).(contextUser)

	return value.name, value.user
}
