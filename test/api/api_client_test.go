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
package api_test

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cdp-integration/webservice-tests/test/api"
	"github.com/cdp-integration/webservice-tests/test/api/fake"
)

// bufferLogger captures client diagnostics.
type bufferLogger struct {
	bytes.Buffer
}

func (l *bufferLogger) Printf(format string, args ...any) {
	fmt.Fprintf(&l.Buffer, format, args...)
}

var _ = Describe("API Client", func() {
	Context("When reading things", func() {
		Describe("Given the seeded dataset", func() {
			It("should return the site directories shallowly", func(ctx SpecContext) {
				client, _ := newFakeClient()

				things, err := client.Get(ctx, client.Endpoints().SiteDirectories())
				Expect(err).NotTo(HaveOccurred())
				Expect(things).To(HaveLen(1))
				Expect(things[0].Iid()).To(Equal(api.SiteDirectoryIid))
				Expect(things[0].ClassKind()).To(Equal(api.ClassKindSiteDirectory))
				Expect(things[0].RevisionNumber()).To(BeEquivalentTo(api.SiteDirectoryRevision))
			})

			It("should return everything contained with extent=deep", func(ctx SpecContext) {
				client, _ := newFakeClient()

				things, err := client.Get(ctx, api.WithQuery(client.Endpoints().SiteDirectory(api.SiteDirectoryIid), api.Deep()))
				Expect(err).NotTo(HaveOccurred())
				Expect(things).To(HaveLen(15))
				Expect(api.FilterByClassKind(things, api.ClassKindPerson)).To(HaveLen(2))
			})

			It("should return the containment chain with includeAllContainers", func(ctx SpecContext) {
				client, _ := newFakeClient()

				path := client.Endpoints().Iteration(api.EngineeringModelIid, api.IterationIid, api.PropertyOption, api.OptionIid)

				things, err := client.Get(ctx, api.WithQuery(path, api.IncludeAllContainers()))
				Expect(err).NotTo(HaveOccurred())
				Expect(api.Iids(things)).To(Equal([]string{api.EngineeringModelIid, api.IterationIid, api.OptionIid}))
			})

			It("should send basic authentication and a trace context", func(ctx SpecContext) {
				client, server := newFakeClient()

				_, err := client.Get(ctx, client.Endpoints().SiteDirectories())
				Expect(err).NotTo(HaveOccurred())

				request, ok := server.LastRequest()
				Expect(ok).To(BeTrue())

				credentials := base64.StdEncoding.EncodeToString([]byte(fake.DefaultUsername + ":" + fake.DefaultPassword))
				Expect(request.Header.Get("Authorization")).To(Equal("Basic " + credentials))
				Expect(request.Header.Get("Traceparent")).To(MatchRegexp(`^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`))
				Expect(request.Header.Get(api.HeaderAcceptCDP)).To(BeEmpty())
			})
		})

		Describe("Given a protocol version", func() {
			It("should only see properties of that version", func(ctx SpecContext) {
				client, server := newFakeClient()

				path := client.Endpoints().Iteration(api.EngineeringModelIid, api.IterationIid, api.PropertyElement, api.SatelliteDefinitionIid)

				things, err := client.GetWithVersion(ctx, path, "1.2.0")
				Expect(err).NotTo(HaveOccurred())
				Expect(things).To(HaveLen(1))
				Expect(things[0].Has(api.PropertyThingPreference)).To(BeTrue())
				Expect(things[0].Has(api.PropertyActor)).To(BeFalse())

				request, _ := server.LastRequest()
				Expect(request.Header.Get(api.HeaderAcceptCDP)).To(Equal("1.2.0"))
			})
		})

		Describe("Given an empty response body", func() {
			It("should return nil things", func(ctx SpecContext) {
				httphelpers.WithServer(httphelpers.HandlerWithStatus(http.StatusOK), func(server *httptest.Server) {
					client := api.NewAPIClientWithConfig(&api.TestConfig{Hostname: server.URL, RequestTimeout: time.Second})

					things, err := client.Get(ctx, "/SiteDirectory")
					Expect(err).NotTo(HaveOccurred())
					Expect(things).To(BeNil())
				})
			})
		})

		Describe("Given a malformed response body", func() {
			It("should propagate the parse failure", func(ctx SpecContext) {
				handler := httphelpers.HandlerWithResponse(http.StatusOK, nil, []byte(`{"iid":`))

				httphelpers.WithServer(handler, func(server *httptest.Server) {
					client := api.NewAPIClientWithConfig(&api.TestConfig{Hostname: server.URL, RequestTimeout: time.Second})

					_, err := client.Get(ctx, "/SiteDirectory")
					Expect(err).To(HaveOccurred())
					Expect(api.StatusCode(err)).To(BeZero())
				})
			})
		})
	})

	Context("When a request is rejected", func() {
		Describe("Given wrong credentials", func() {
			It("should return an HTTP error carrying the status", func(ctx SpecContext) {
				client, _ := newFakeClient()
				client.SetCredentials(fake.DefaultUsername, "wrong")

				_, err := client.Get(ctx, client.Endpoints().SiteDirectories())
				api.ExpectHTTPError(err, http.StatusUnauthorized, "Unauthorized")
			})
		})

		Describe("Given a thing that does not exist", func() {
			It("should return not found", func(ctx SpecContext) {
				client, _ := newFakeClient()

				_, err := client.Get(ctx, client.Endpoints().Person(api.SiteDirectoryIid, api.NewIid()))
				Expect(api.IsStatus(err, http.StatusNotFound)).To(BeTrue(), "%v", err)
			})
		})

		Describe("Given a logger", func() {
			It("should log the trace ID and a curl reproduction without the password", func(ctx SpecContext) {
				logger := &bufferLogger{}
				client, _ := newFakeClient(api.WithLogger(logger))
				client.SetCredentials(fake.ViewerUsername, fake.ViewerPassword)

				_, err := client.Post(ctx, client.Endpoints().SiteDirectory(api.SiteDirectoryIid), api.NewChangeRequest())

				var httpErr *api.HTTPError
				Expect(errors.As(err, &httpErr)).To(BeTrue())
				Expect(httpErr.StatusCode).To(Equal(http.StatusForbidden))

				output := logger.String()
				Expect(output).To(ContainSubstring("TRACE CONTEXT: Use trace ID '" + httpErr.TraceID + "'"))
				Expect(output).To(ContainSubstring("REPRODUCE: curl -sS -X POST -u viewer"))
				Expect(output).To(ContainSubstring("--data-binary"))
				Expect(output).NotTo(ContainSubstring(fake.ViewerUsername + ":" + fake.ViewerPassword))
			})
		})
	})

	Context("When changing things", func() {
		Describe("Given a change request creating an option", func() {
			It("should return the changed things at the next revision", func(ctx SpecContext) {
				client, server := newFakeClient()

				option := api.NewThing(api.ClassKindOption).
					WithName("Option 2").
					WithShortName("OPT_2").
					WithIids(api.PropertyCategory).
					WithIids(api.PropertyNestedElement)

				request := api.NewChangeRequest().
					Create(option).
					Update(api.Reference(api.ClassKindIteration, api.IterationIid).
						WithOrderedItems(api.PropertyOption, api.OrderedItem{Key: 2, Value: option.Iid()}))

				things, err := client.Post(ctx, client.Endpoints().Iteration(api.EngineeringModelIid, api.IterationIid), request)
				Expect(err).NotTo(HaveOccurred())
				Expect(api.Iids(things)).To(ConsistOf(api.EngineeringModelIid, api.IterationIid, option.Iid()))

				for _, thing := range things {
					Expect(thing.RevisionNumber()).To(BeEquivalentTo(api.EngineeringModelRevision + 1))
				}

				api.VerifyOrderedValues(api.MustFind(things, api.IterationIid), api.PropertyOption, api.OptionIid, option.Iid())
				Expect(server.Thing(option.Iid())).NotTo(BeNil())
			})
		})

		Describe("Given a file upload", func() {
			It("should send the manifest and the file in one multipart body", func(ctx SpecContext) {
				client, server := newFakeClient()

				path := filepath.Join(GinkgoT().TempDir(), "budget.txt")
				Expect(os.WriteFile(path, []byte("Mass budget, issue 2\n"), 0o600)).To(Succeed())

				hash, err := api.FileContentHash(path)
				Expect(err).NotTo(HaveOccurred())

				revision := api.NewThing(api.ClassKindFileRevision).
					WithName("budget").
					With(api.PropertyContentHash, hash).
					With(api.PropertyCreator, api.ParticipantIid).
					With(api.PropertyContainingFolder, nil).
					WithIids(api.PropertyFileType)

				file := api.NewThing(api.ClassKindFile).
					With(api.PropertyOwner, api.DomainIid).
					With(api.PropertyLockedBy, nil).
					WithIids(api.PropertyCategory).
					WithIids(api.PropertyFileRevision, revision.Iid())

				request := api.NewChangeRequest().
					Create(file, revision).
					Update(api.Reference(api.ClassKindCommonFileStore, api.CommonFileStoreIid).WithIids(api.PropertyFile, file.Iid()))

				things, err := client.PostFile(ctx, client.Endpoints().EngineeringModel(api.EngineeringModelIid), request, path)
				Expect(err).NotTo(HaveOccurred())
				Expect(things).To(HaveLen(4))

				data, ok := server.File(hash)
				Expect(ok).To(BeTrue())
				Expect(string(data)).To(Equal("Mass budget, issue 2\n"))

				last, _ := server.LastRequest()
				Expect(last.Header.Get("Content-Type")).To(HavePrefix("multipart/form-data; boundary="))
			})
		})

		Describe("Given a restore", func() {
			It("should return the dataset to its seeded state", func(ctx SpecContext) {
				client, _ := newFakeClient()

				update := api.Reference(api.ClassKindOption, api.OptionIid).WithName("Renamed")

				_, err := client.Post(ctx, client.Endpoints().Iteration(api.EngineeringModelIid, api.IterationIid), api.NewChangeRequest().Update(update))
				Expect(err).NotTo(HaveOccurred())

				Expect(client.Restore(ctx)).To(Succeed())
				Expect(client.WaitForService(ctx, 10*time.Second)).To(Succeed())

				things, err := client.Get(ctx, client.Endpoints().Iteration(api.EngineeringModelIid, api.IterationIid, api.PropertyOption, api.OptionIid))
				Expect(err).NotTo(HaveOccurred())
				api.VerifyString(api.MustFind(things, api.OptionIid), api.PropertyName, "Option 1")
			})
		})
	})

	Context("When exporting a model", func() {
		It("should return an archive holding the model", func(ctx SpecContext) {
			client, _ := newFakeClient()

			data, err := client.ExportModel(ctx, []string{api.ModelSetupIid})
			Expect(err).NotTo(HaveOccurred())

			archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
			Expect(err).NotTo(HaveOccurred())

			var names []string
			for _, file := range archive.File {
				names = append(names, file.Name)
			}

			Expect(names).To(ContainElements(
				"Header.json",
				"SiteDirectory.json",
				fmt.Sprintf("EngineeringModels/%s/%s.json", api.EngineeringModelIid, api.EngineeringModelIid),
			))
		})

		It("should reject an unknown model setup", func(ctx SpecContext) {
			client, _ := newFakeClient()

			_, err := client.ExportModel(ctx, []string{api.NewIid()})
			api.ExpectHTTPError(err, http.StatusBadRequest, "unknown engineering model setup")
		})
	})

	Context("When validating responses", func() {
		Describe("Given a response missing a class kind", func() {
			It("should report a contract violation", func(ctx SpecContext) {
				validator, err := api.NewResponseValidator()
				Expect(err).NotTo(HaveOccurred())

				headers := http.Header{"Content-Type": []string{"application/json"}}
				body := []byte(`[{"iid":"` + api.SiteDirectoryIid + `","revisionNumber":1}]`)

				handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithResponse(http.StatusOK, headers, body))

				httphelpers.WithServer(handler, func(server *httptest.Server) {
					client := api.NewAPIClientWithConfig(&api.TestConfig{Hostname: server.URL, RequestTimeout: time.Second},
						api.WithResponseValidator(validator), api.WithLogger(&bufferLogger{}))

					_, err := client.Get(ctx, "/SiteDirectory/"+api.SiteDirectoryIid)
					Expect(err).To(MatchError(api.ErrContractViolation))
				})

				Expect(requests).To(HaveLen(1))
			})
		})

		Describe("Given the fake service", func() {
			It("should accept every response", func(ctx SpecContext) {
				validator, err := api.NewResponseValidator()
				Expect(err).NotTo(HaveOccurred())

				client, _ := newFakeClient(api.WithResponseValidator(validator))

				_, err = client.Get(ctx, api.WithQuery(client.Endpoints().EngineeringModel(api.EngineeringModelIid), api.Deep()))
				Expect(err).NotTo(HaveOccurred())

				_, err = client.Get(ctx, client.Endpoints().SiteReferenceDataLibrary(api.SiteDirectoryIid, api.SiteReferenceDataLibraryIid, api.PropertyUnit))
				Expect(err).NotTo(HaveOccurred())

				Expect(client.Restore(ctx)).To(Succeed())
			})
		})
	})

	Context("When building paths", func() {
		It("should alternate properties and iids", func() {
			endpoints := api.NewEndpoints()

			Expect(endpoints.SiteReferenceDataLibrary(api.SiteDirectoryIid, api.SiteReferenceDataLibraryIid, api.PropertyUnit, api.SimpleUnitIid)).
				To(Equal(strings.Join([]string{"/SiteDirectory", api.SiteDirectoryIid, "siteReferenceDataLibrary", api.SiteReferenceDataLibraryIid, "unit", api.SimpleUnitIid}, "/")))
		})
	})
})
