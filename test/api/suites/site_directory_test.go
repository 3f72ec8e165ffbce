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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cdp-integration/webservice-tests/test/api"
)

var _ = Describe("Site Directory", func() {
	Context("When retrieving the site directory", func() {
		Describe("Given the seeded dataset", func() {
			It("should return the site directory and its collections", func() {
				things, err := client.Get(ctx, client.Endpoints().SiteDirectories())
				Expect(err).NotTo(HaveOccurred(), "Should retrieve the site directory")
				api.ExpectThings(things, 1)

				sd := api.MustFind(things, api.SiteDirectoryIid)
				api.VerifyThing(sd, api.ClassKindSiteDirectory, api.SiteDirectoryRevision)
				api.VerifyString(sd, api.PropertyName, "Test Site Directory")
				api.VerifyString(sd, api.PropertyShortName, "TEST-SiteDir")
				api.VerifyIids(sd, api.PropertyPerson, api.AdminPersonIid, api.ViewerPersonIid)
				api.VerifyIids(sd, api.PropertyDomain, api.DomainIid, api.SubscriberDomainIid)
				api.VerifyIids(sd, api.PropertySiteReferenceDataLibrary, api.SiteReferenceDataLibraryIid)
				api.VerifyIids(sd, api.PropertyModel, api.ModelSetupIid)
				api.VerifyIids(sd, api.PropertyOrganization)
				api.VerifyIids(sd, api.PropertyPersonRole)
				api.VerifyIids(sd, api.PropertyParticipantRole)
				api.VerifyIids(sd, api.PropertyDomainGroup)
				api.VerifyIids(sd, api.PropertyLogEntry)
				api.VerifyNull(sd, api.PropertyDefaultPersonRole)
				api.VerifyNull(sd, api.PropertyDefaultParticipantRole)
			})

			It("should return everything it contains with extent=deep", func() {
				things, err := client.Get(ctx, api.WithQuery(client.Endpoints().SiteDirectory(api.SiteDirectoryIid), api.Deep()))
				Expect(err).NotTo(HaveOccurred(), "Should retrieve the site directory deeply")

				api.VerifyClassKinds(things, map[api.ClassKind]int{
					api.ClassKindSiteDirectory:             1,
					api.ClassKindPerson:                    2,
					api.ClassKindDomainOfExpertise:         2,
					api.ClassKindSiteReferenceDataLibrary:  1,
					api.ClassKindCategory:                  1,
					api.ClassKindSimpleUnit:                1,
					api.ClassKindRatioScale:                1,
					api.ClassKindSimpleQuantityKind:        1,
					api.ClassKindBooleanParameterType:      1,
					api.ClassKindEngineeringModelSetup:     1,
					api.ClassKindParticipant:               1,
					api.ClassKindModelReferenceDataLibrary: 1,
					api.ClassKindIterationSetup:            1,
				})
			})

			It("should return nothing changed since the current revision", func() {
				path := client.Endpoints().SiteDirectory(api.SiteDirectoryIid) + "?extent=deep&revisionNumber=2"

				things, err := client.Get(ctx, path)
				Expect(err).NotTo(HaveOccurred(), "Should retrieve changes since revision 2")
				api.ExpectThings(things, 0)
			})
		})
	})

	Context("When retrieving persons", func() {
		Describe("Given the person collection", func() {
			It("should return both seeded persons", func() {
				things, err := client.Get(ctx, client.Endpoints().Persons(api.SiteDirectoryIid))
				Expect(err).NotTo(HaveOccurred(), "Should retrieve persons")
				api.ExpectThings(things, 2)

				admin := api.MustFind(things, api.AdminPersonIid)
				api.VerifyThing(admin, api.ClassKindPerson, 1)
				api.VerifyString(admin, api.PropertyShortName, "admin")
				api.VerifyString(admin, api.PropertyGivenName, "John")
				api.VerifyString(admin, api.PropertySurname, "Doe")
				api.VerifyBool(admin, api.PropertyIsActive, true)
				api.VerifyBool(admin, api.PropertyIsDeprecated, false)
				api.VerifyString(admin, api.PropertyDefaultDomain, api.DomainIid)
				api.VerifyNull(admin, api.PropertyOrganization)
				api.VerifyNull(admin, api.PropertyRole)
				api.VerifyIids(admin, api.PropertyEmailAddress)
				api.VerifyIids(admin, api.PropertyTelephoneNumber)
				api.VerifyIids(admin, api.PropertyUserPreference)

				viewer := api.MustFind(things, api.ViewerPersonIid)
				api.VerifyThing(viewer, api.ClassKindPerson, 1)
				api.VerifyString(viewer, api.PropertyShortName, "viewer")
				api.VerifyString(viewer, api.PropertyGivenName, "Jane")
				api.VerifyString(viewer, api.PropertySurname, "Roe")
				api.VerifyNull(viewer, api.PropertyDefaultDomain)
			})
		})

		Describe("Given a single person with includeAllContainers", func() {
			It("should return the site directory before the person", func() {
				path := api.WithQuery(client.Endpoints().Person(api.SiteDirectoryIid, api.AdminPersonIid), api.IncludeAllContainers())

				things, err := client.Get(ctx, path)
				Expect(err).NotTo(HaveOccurred(), "Should retrieve the person with containers")
				Expect(api.Iids(things)).To(Equal([]string{api.SiteDirectoryIid, api.AdminPersonIid}))
			})
		})

		Describe("Given a person that does not exist", func() {
			It("should return not found", func() {
				_, err := client.Get(ctx, client.Endpoints().Person(api.SiteDirectoryIid, api.NewIid()))
				api.ExpectHTTPError(err, http.StatusNotFound, "")
			})
		})
	})

	Context("When changing the site directory", Serial, func() {
		BeforeEach(func() {
			api.RestoreOnCleanup(client, config)
		})

		Describe("Given a new domain of expertise", func() {
			It("should add the domain and bump the site directory revision", func() {
				domainIid := api.NewIid()
				shortName := api.GenerateShortName("DOM")

				body := api.MustLoadFixture("domain_create.json", "NEW_DOMAIN_IID", domainIid, "NEW_SHORT_NAME", shortName)

				things, err := client.Post(ctx, client.Endpoints().SiteDirectory(api.SiteDirectoryIid), body)
				Expect(err).NotTo(HaveOccurred(), "Should create the domain")
				api.ExpectThings(things, 2)

				sd := api.MustFind(things, api.SiteDirectoryIid)
				api.VerifyThing(sd, api.ClassKindSiteDirectory, api.SiteDirectoryRevision+1)
				api.VerifyIids(sd, api.PropertyDomain, api.DomainIid, api.SubscriberDomainIid, domainIid)

				domain := api.MustFind(things, domainIid)
				api.VerifyThing(domain, api.ClassKindDomainOfExpertise, api.SiteDirectoryRevision+1)
				api.VerifyString(domain, api.PropertyName, "Thermal")
				api.VerifyString(domain, api.PropertyShortName, shortName)
				api.VerifyBool(domain, api.PropertyIsDeprecated, false)
			})
		})

		Describe("Given a change to a person", func() {
			It("should return the updated person only", func() {
				request := api.NewChangeRequest().
					Update(api.Reference(api.ClassKindPerson, api.ViewerPersonIid).With(api.PropertySurname, "Roe-Smith"))

				things, err := client.Post(ctx, client.Endpoints().SiteDirectory(api.SiteDirectoryIid), request)
				Expect(err).NotTo(HaveOccurred(), "Should update the person")
				api.ExpectThings(things, 2)

				viewer := api.MustFind(things, api.ViewerPersonIid)
				api.VerifyThing(viewer, api.ClassKindPerson, api.SiteDirectoryRevision+1)
				api.VerifyString(viewer, api.PropertySurname, "Roe-Smith")
				api.VerifyString(viewer, api.PropertyGivenName, "Jane")
			})
		})

		Describe("Given a domain whose iid is already in use", func() {
			It("should reject the change request", func() {
				body := api.MustLoadFixture("domain_create.json", "NEW_DOMAIN_IID", api.DomainIid, "NEW_SHORT_NAME", "TST")

				_, err := client.Post(ctx, client.Endpoints().SiteDirectory(api.SiteDirectoryIid), body)
				api.ExpectHTTPError(err, http.StatusBadRequest, "")
			})
		})
	})
})
