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
	"errors"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"
)

// ExpectThings asserts the number of things in a response.
func ExpectThings(things []Thing, count int) {
	GinkgoHelper()

	Expect(things).To(HaveLen(count), "Response should contain %d things, got iids %v", count, Iids(things))
}

// MustFind returns the thing with the given iid, failing the spec if absent.
func MustFind(things []Thing, iid string) Thing {
	GinkgoHelper()

	thing := FindThing(things, iid)
	Expect(thing).NotTo(BeNil(), "Response should contain thing %s", iid)

	return thing
}

// VerifyThing checks the identity triple every thing carries.
func VerifyThing(thing Thing, kind ClassKind, revision int64) {
	GinkgoHelper()

	Expect(ValidIid(thing.Iid())).To(BeTrue(), "Thing iid %q should be a UUID", thing.Iid())
	Expect(thing.ClassKind()).To(Equal(kind), "Thing %s class kind", thing.Iid())
	Expect(thing.RevisionNumber()).To(Equal(revision), "Thing %s revision number", thing.Iid())
}

func VerifyString(thing Thing, name, expected string) {
	GinkgoHelper()

	value, err := thing.String(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(value).To(Equal(expected), "Thing %s property %s", thing.Iid(), name)
}

// VerifyNull checks the property is present and null.
func VerifyNull(thing Thing, name string) {
	GinkgoHelper()

	value, err := thing.NullableString(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(value).To(BeNil(), "Thing %s property %s should be null", thing.Iid(), name)
}

func VerifyInt(thing Thing, name string, expected int64) {
	GinkgoHelper()

	value, err := thing.Int(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(value).To(Equal(expected), "Thing %s property %s", thing.Iid(), name)
}

func VerifyBool(thing Thing, name string, expected bool) {
	GinkgoHelper()

	value, err := thing.Bool(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(value).To(Equal(expected), "Thing %s property %s", thing.Iid(), name)
}

// VerifyIids checks an unordered reference collection holds exactly the
// expected iids.  Failures name what is missing and what is unexpected.
func VerifyIids(thing Thing, name string, expected ...string) {
	GinkgoHelper()

	actual, err := thing.Strings(name)
	Expect(err).NotTo(HaveOccurred())

	actualSet := set.New[string](actual...)
	expectedSet := set.New[string](expected...)

	missing := slices.Sorted(expectedSet.Difference(actualSet).All())
	unexpected := slices.Sorted(actualSet.Difference(expectedSet).All())

	Expect(missing).To(BeEmpty(), "Thing %s property %s is missing iids", thing.Iid(), name)
	Expect(unexpected).To(BeEmpty(), "Thing %s property %s has unexpected iids", thing.Iid(), name)
	Expect(actual).To(HaveLen(len(expected)), "Thing %s property %s has duplicate iids", thing.Iid(), name)
}

// VerifyOrderedItems checks an ordered collection key by key.
func VerifyOrderedItems(thing Thing, name string, expected ...OrderedItem) {
	GinkgoHelper()

	actual, err := thing.OrderedItems(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(actual).To(HaveLen(len(expected)), "Thing %s property %s length", thing.Iid(), name)

	for i := range expected {
		Expect(actual[i].Key).To(Equal(expected[i].Key), "Thing %s property %s item %d key", thing.Iid(), name, i)
		Expect(actual[i].Value).To(BeEquivalentTo(expected[i].Value), "Thing %s property %s item %d value", thing.Iid(), name, i)
	}
}

// VerifyOrderedValues checks only the order of values, ignoring the keys
// the server chose.
func VerifyOrderedValues(thing Thing, name string, expected ...any) {
	GinkgoHelper()

	actual, err := thing.OrderedValues(name)
	Expect(err).NotTo(HaveOccurred())
	Expect(actual).To(HaveExactElements(expected...), "Thing %s property %s", thing.Iid(), name)
}

// VerifyStrings checks a list of plain strings in order, e.g. the
// permissible classes of a category.
func VerifyStrings(thing Thing, name string, expected ...string) {
	GinkgoHelper()

	actual, err := thing.Strings(name)
	Expect(err).NotTo(HaveOccurred())

	if len(expected) == 0 {
		Expect(actual).To(BeEmpty(), "Thing %s property %s", thing.Iid(), name)
		return
	}

	Expect(actual).To(Equal(expected), "Thing %s property %s", thing.Iid(), name)
}

// VerifyClassKinds checks how many things of each kind a response holds.
func VerifyClassKinds(things []Thing, expected map[ClassKind]int) {
	GinkgoHelper()

	total := 0

	for kind, count := range expected {
		Expect(FilterByClassKind(things, kind)).To(HaveLen(count), "Response should hold %d %s", count, kind)

		total += count
	}

	Expect(things).To(HaveLen(total), "Response should hold only the expected kinds")
}

// ExpectHTTPError asserts a request was rejected with the given status and,
// when non-empty, a message containing substring.
func ExpectHTTPError(err error, statusCode int, substring string) {
	GinkgoHelper()

	Expect(err).To(HaveOccurred(), "Request should be rejected with HTTP %d", statusCode)

	var httpErr *HTTPError

	Expect(errors.As(err, &httpErr)).To(BeTrue(), "Error should be an HTTP error: %v", err)
	Expect(httpErr.StatusCode).To(Equal(statusCode), "Unexpected status: %s", httpErr.Message)

	if substring != "" {
		Expect(httpErr.Message).To(ContainSubstring(substring))
	}

	GinkgoWriter.Printf("Expected HTTP %d error: %s\n", statusCode, httpErr.Message)
}
