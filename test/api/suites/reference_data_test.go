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

var _ = Describe("Site Reference Data Library", func() {
	Context("When retrieving reference data libraries", func() {
		Describe("Given the library collection", func() {
			It("should return the seeded library", func() {
				things, err := client.Get(ctx, client.Endpoints().SiteReferenceDataLibraries(api.SiteDirectoryIid))
				Expect(err).NotTo(HaveOccurred(), "Should retrieve reference data libraries")
				api.ExpectThings(things, 1)

				rdl := api.MustFind(things, api.SiteReferenceDataLibraryIid)
				api.VerifyThing(rdl, api.ClassKindSiteReferenceDataLibrary, 2)
				api.VerifyString(rdl, api.PropertyName, "Test Reference Data Library")
				api.VerifyString(rdl, api.PropertyShortName, "TestRDL")
				api.VerifyNull(rdl, api.PropertyRequiredRdl)
				api.VerifyBool(rdl, api.PropertyIsDeprecated, false)
				api.VerifyIids(rdl, api.PropertyDefinedCategory, api.CategoryIid)
				api.VerifyIids(rdl, api.PropertyUnit, api.SimpleUnitIid)
				api.VerifyIids(rdl, api.PropertyScale, api.RatioScaleIid)
				api.VerifyIids(rdl, api.PropertyParameterType, api.SimpleQuantityKindIid, api.BooleanParameterTypeIid)
				api.VerifyIids(rdl, api.PropertyUnitPrefix)
				api.VerifyIids(rdl, api.PropertyFileType)
			})
		})

		Describe("Given extent=deep", func() {
			It("should return the library and all of its content", func() {
				things, err := client.Get(ctx, api.WithQuery(client.Endpoints().SiteReferenceDataLibrary(api.SiteDirectoryIid, api.SiteReferenceDataLibraryIid), api.Deep()))
				Expect(err).NotTo(HaveOccurred(), "Should retrieve the library deeply")

				api.VerifyClassKinds(things, map[api.ClassKind]int{
					api.ClassKindSiteReferenceDataLibrary: 1,
					api.ClassKindCategory:                 1,
					api.ClassKindSimpleUnit:               1,
					api.ClassKindRatioScale:               1,
					api.ClassKindSimpleQuantityKind:       1,
					api.ClassKindBooleanParameterType:     1,
				})
			})
		})
	})
})

var _ = Describe("Category", func() {
	Context("When retrieving a category", func() {
		It("should return its permissible classes", func() {
			path := client.Endpoints().SiteReferenceDataLibrary(api.SiteDirectoryIid, api.SiteReferenceDataLibraryIid, api.PropertyDefinedCategory, api.CategoryIid)

			things, err := client.Get(ctx, path)
			Expect(err).NotTo(HaveOccurred(), "Should retrieve the category")
			api.ExpectThings(things, 1)

			category := api.MustFind(things, api.CategoryIid)
			api.VerifyThing(category, api.ClassKindCategory, 1)
			api.VerifyString(category, api.PropertyName, "Test Category")
			api.VerifyString(category, api.PropertyShortName, "TestCategory")
			api.VerifyBool(category, api.PropertyIsAbstract, false)
			api.VerifyStrings(category, api.PropertyPermissibleClass, string(api.ClassKindElementDefinition), string(api.ClassKindRequirement))
			api.VerifyIids(category, api.PropertySuperCategory)
		})
	})

	Context("When creating a category", Serial, func() {
		BeforeEach(func() {
			api.RestoreOnCleanup(client, config)
		})

		Describe("Given a valid category", func() {
			It("should add it to the library", func() {
				categoryIid := api.NewIid()
				shortName := api.GenerateShortName("CAT")

				body := api.MustLoadFixture("category_create.json", "NEW_CATEGORY_IID", categoryIid, "NEW_SHORT_NAME", shortName)

				things, err := client.Post(ctx, client.Endpoints().SiteDirectory(api.SiteDirectoryIid), body)
				Expect(err).NotTo(HaveOccurred(), "Should create the category")

				api.VerifyClassKinds(things, map[api.ClassKind]int{
					api.ClassKindSiteDirectory:            1,
					api.ClassKindSiteReferenceDataLibrary: 1,
					api.ClassKindCategory:                 1,
				})

				rdl := api.MustFind(things, api.SiteReferenceDataLibraryIid)
				api.VerifyThing(rdl, api.ClassKindSiteReferenceDataLibrary, api.SiteDirectoryRevision+1)
				api.VerifyIids(rdl, api.PropertyDefinedCategory, api.CategoryIid, categoryIid)

				category := api.MustFind(things, categoryIid)
				api.VerifyThing(category, api.ClassKindCategory, api.SiteDirectoryRevision+1)
				api.VerifyString(category, api.PropertyShortName, shortName)
				api.VerifyStrings(category, api.PropertyPermissibleClass, string(api.ClassKindElementDefinition))
			})
		})

		Describe("Given a category that nothing contains", func() {
			It("should reject the change request", func() {
				orphan := api.NewThing(api.ClassKindCategory).
					WithName("Orphan").
					WithShortName(api.GenerateShortName("ORPHAN")).
					With(api.PropertyPermissibleClass, []string{}).
					WithIids(api.PropertySuperCategory)

				_, err := client.Post(ctx, client.Endpoints().SiteDirectory(api.SiteDirectoryIid), api.NewChangeRequest().Create(orphan))
				api.ExpectHTTPError(err, http.StatusBadRequest, "")
			})
		})
	})
})

var _ = Describe("Measurement Units and Scales", func() {
	Context("When retrieving a simple unit", func() {
		It("should return the seeded unit", func() {
			path := client.Endpoints().SiteReferenceDataLibrary(api.SiteDirectoryIid, api.SiteReferenceDataLibraryIid, api.PropertyUnit, api.SimpleUnitIid)

			things, err := client.Get(ctx, path)
			Expect(err).NotTo(HaveOccurred(), "Should retrieve the unit")
			api.ExpectThings(things, 1)

			unit := api.MustFind(things, api.SimpleUnitIid)
			api.VerifyThing(unit, api.ClassKindSimpleUnit, 1)
			api.VerifyString(unit, api.PropertyName, "metre")
			api.VerifyString(unit, api.PropertyShortName, "m")
			api.VerifyBool(unit, api.PropertyIsDeprecated, false)
		})
	})

	Context("When retrieving a ratio scale", func() {
		It("should return the scale and its unit", func() {
			path := client.Endpoints().SiteReferenceDataLibrary(api.SiteDirectoryIid, api.SiteReferenceDataLibraryIid, api.PropertyScale, api.RatioScaleIid)

			things, err := client.Get(ctx, path)
			Expect(err).NotTo(HaveOccurred(), "Should retrieve the scale")
			api.ExpectThings(things, 1)

			scale := api.MustFind(things, api.RatioScaleIid)
			api.VerifyThing(scale, api.ClassKindRatioScale, 1)
			api.VerifyString(scale, api.PropertyName, "metre scale")
			api.VerifyString(scale, api.PropertyShortName, "m_scale")
			api.VerifyString(scale, api.PropertyUnit, api.SimpleUnitIid)
			api.VerifyString(scale, api.PropertyNumberSet, "REAL_NUMBER_SET")
			api.VerifyBool(scale, api.PropertyIsMinimumInclusive, true)
			api.VerifyBool(scale, api.PropertyIsMaximumInclusive, true)
			api.VerifyString(scale, api.PropertyMinimumPermissibleValue, "0")
			api.VerifyString(scale, api.PropertyMaximumPermissibleValue, "")
			api.VerifyIids(scale, api.PropertyValueDefinition)
			api.VerifyIids(scale, api.PropertyMappingToReferenceScale)
		})
	})
})

var _ = Describe("Parameter Types", func() {
	Context("When retrieving the parameter type collection", func() {
		It("should return the quantity kind and the boolean type", func() {
			path := client.Endpoints().SiteReferenceDataLibrary(api.SiteDirectoryIid, api.SiteReferenceDataLibraryIid, api.PropertyParameterType)

			things, err := client.Get(ctx, path)
			Expect(err).NotTo(HaveOccurred(), "Should retrieve parameter types")
			api.ExpectThings(things, 2)

			length := api.MustFind(things, api.SimpleQuantityKindIid)
			api.VerifyThing(length, api.ClassKindSimpleQuantityKind, 1)
			api.VerifyString(length, api.PropertyName, "length")
			api.VerifyString(length, api.PropertySymbol, "l")
			api.VerifyString(length, api.PropertyQuantityDimensionSymbol, "L")
			api.VerifyString(length, api.PropertyDefaultScale, api.RatioScaleIid)
			api.VerifyIids(length, api.PropertyPossibleScale, api.RatioScaleIid)
			api.VerifyIids(length, api.PropertyCategory)

			boolean := api.MustFind(things, api.BooleanParameterTypeIid)
			api.VerifyThing(boolean, api.ClassKindBooleanParameterType, 1)
			api.VerifyString(boolean, api.PropertyName, "boolean")
			api.VerifyString(boolean, api.PropertyShortName, "bool")
			api.VerifyString(boolean, api.PropertySymbol, "b")
		})
	})
})
