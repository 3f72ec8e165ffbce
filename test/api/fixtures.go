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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/apimachinery/pkg/util/wait"
)

const (
	// FixtureDir holds request bodies, relative to the suite package.
	FixtureDir = "testdata"

	// shortNameSuffixLength keeps generated short names well under the
	// server's identifier limits.
	shortNameSuffixLength = 6

	servicePollInterval = 2 * time.Second
)

var ErrFixtureNotFound = errors.New("fixture not found")

// LoadFixture reads a literal request body from the fixture directory.
// Replacements are old/new pairs applied to the text, typically used to
// swap a placeholder for a freshly generated iid.
func LoadFixture(name string, replacements ...string) ([]byte, error) {
	if len(replacements)%2 != 0 {
		return nil, fmt.Errorf("fixture %s: replacements must be old/new pairs", name)
	}

	path := filepath.Join(FixtureDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, path)
		}

		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	if len(replacements) == 0 {
		return data, nil
	}

	return []byte(strings.NewReplacer(replacements...).Replace(string(data))), nil
}

// MustLoadFixture is LoadFixture that fails the current spec on error.
func MustLoadFixture(name string, replacements ...string) []byte {
	GinkgoHelper()

	data, err := LoadFixture(name, replacements...)
	Expect(err).NotTo(HaveOccurred(), "Fixture %s should load", name)

	return data
}

// FixturePath returns the on-disk location of a fixture, e.g. an upload.
func FixturePath(name string) string {
	return filepath.Join(FixtureDir, name)
}

// GenerateShortName returns a unique, server legal short name for things
// created by a spec.
func GenerateShortName(prefix string) string {
	return prefix + rand.String(shortNameSuffixLength)
}

// WaitForService polls the site directory until the server answers.  An
// authentication failure ends the wait early as it will not resolve itself.
func (c *APIClient) WaitForService(ctx context.Context, timeout time.Duration) error {
	var lastErr error

	err := wait.PollUntilContextTimeout(ctx, servicePollInterval, timeout, true, func(ctx context.Context) (bool, error) {
		_, err := c.Get(ctx, c.endpoints.SiteDirectories())
		if err == nil {
			return true, nil
		}

		if IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden) {
			return false, err
		}

		lastErr = err

		return false, nil
	})
	if err != nil {
		if lastErr != nil && wait.Interrupted(err) {
			return fmt.Errorf("waiting for service: %w: last error: %w", err, lastErr)
		}

		return fmt.Errorf("waiting for service: %w", err)
	}

	return nil
}

// RestoreOnCleanup schedules a dataset restore once the current spec
// finishes, whether it passed or not.  Specs that mutate the dataset call
// this first so later specs see the seeded state.
func RestoreOnCleanup(client *APIClient, config *TestConfig) {
	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Restoring dataset after %s\n", CurrentSpecReport().LeafNodeText)

		if err := client.Restore(ctx); err != nil {
			GinkgoWriter.Printf("Warning: failed to restore dataset: %v\n", err)
			return
		}

		if err := client.WaitForService(ctx, config.RequestTimeout); err != nil {
			GinkgoWriter.Printf("Warning: service did not come back after restore: %v\n", err)
		}
	})
}
