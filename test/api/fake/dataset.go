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
	"github.com/cdp-integration/webservice-tests/test/api"
)

const createdOn = "2016-09-01T09:43:46.000Z"

func refs(iids ...string) []string {
	if iids == nil {
		return []string{}
	}

	return iids
}

func ordered(iids ...string) []api.OrderedItem {
	items := make([]api.OrderedItem, len(iids))
	for i, iid := range iids {
		items[i] = api.OrderedItem{Key: int64(i + 1), Value: iid}
	}

	return items
}

func thing(kind api.ClassKind, iid string, revision int64, properties map[string]any) api.Thing {
	t := api.Thing{
		api.PropertyIid:            iid,
		api.PropertyClassKind:      string(kind),
		api.PropertyRevisionNumber: revision,
	}

	for k, v := range properties {
		t[k] = v
	}

	return t
}

// Dataset returns the seeded dataset the fake restores to.
//
//nolint:maintidx // it is a literal table
func Dataset() []api.Thing {
	return []api.Thing{
		thing(api.ClassKindSiteDirectory, api.SiteDirectoryIid, api.SiteDirectoryRevision, map[string]any{
			api.PropertyName:                     "Test Site Directory",
			api.PropertyShortName:                "TEST-SiteDir",
			api.PropertyCreatedOn:                createdOn,
			api.PropertyLastModifiedOn:           createdOn,
			api.PropertyPerson:                   refs(api.AdminPersonIid, api.ViewerPersonIid),
			api.PropertyDomain:                   refs(api.DomainIid, api.SubscriberDomainIid),
			api.PropertySiteReferenceDataLibrary: refs(api.SiteReferenceDataLibraryIid),
			api.PropertyModel:                    refs(api.ModelSetupIid),
			api.PropertyOrganization:             refs(),
			api.PropertyPersonRole:               refs(),
			api.PropertyParticipantRole:          refs(),
			api.PropertyDomainGroup:              refs(),
			api.PropertyLogEntry:                 refs(),
			api.PropertyDefaultPersonRole:        nil,
			api.PropertyDefaultParticipantRole:   nil,
		}),
		thing(api.ClassKindPerson, api.AdminPersonIid, 1, map[string]any{
			api.PropertyShortName:       "admin",
			api.PropertyGivenName:       "John",
			api.PropertySurname:         "Doe",
			api.PropertyIsActive:        true,
			api.PropertyIsDeprecated:    false,
			api.PropertyOrganization:    nil,
			api.PropertyRole:            nil,
			api.PropertyDefaultDomain:   api.DomainIid,
			api.PropertyEmailAddress:    refs(),
			api.PropertyTelephoneNumber: refs(),
			api.PropertyUserPreference:  refs(),
		}),
		thing(api.ClassKindPerson, api.ViewerPersonIid, 1, map[string]any{
			api.PropertyShortName:       "viewer",
			api.PropertyGivenName:       "Jane",
			api.PropertySurname:         "Roe",
			api.PropertyIsActive:        true,
			api.PropertyIsDeprecated:    false,
			api.PropertyOrganization:    nil,
			api.PropertyRole:            nil,
			api.PropertyDefaultDomain:   nil,
			api.PropertyEmailAddress:    refs(),
			api.PropertyTelephoneNumber: refs(),
			api.PropertyUserPreference:  refs(),
		}),
		thing(api.ClassKindDomainOfExpertise, api.DomainIid, 1, map[string]any{
			api.PropertyName:         "Test Domain",
			api.PropertyShortName:    "TST",
			api.PropertyCategory:     refs(),
			api.PropertyIsDeprecated: false,
			api.PropertyAlias:        refs(),
			api.PropertyDefinition:   refs(),
			api.PropertyHyperLink:    refs(),
		}),
		thing(api.ClassKindDomainOfExpertise, api.SubscriberDomainIid, 1, map[string]any{
			api.PropertyName:         "Subscriber Domain",
			api.PropertyShortName:    "SUB",
			api.PropertyCategory:     refs(),
			api.PropertyIsDeprecated: false,
			api.PropertyAlias:        refs(),
			api.PropertyDefinition:   refs(),
			api.PropertyHyperLink:    refs(),
		}),
		thing(api.ClassKindSiteReferenceDataLibrary, api.SiteReferenceDataLibraryIid, 2, map[string]any{
			api.PropertyName:            "Test Reference Data Library",
			api.PropertyShortName:       "TestRDL",
			api.PropertyRequiredRdl:     nil,
			api.PropertyIsDeprecated:    false,
			api.PropertyDefinedCategory: refs(api.CategoryIid),
			api.PropertyUnit:            refs(api.SimpleUnitIid),
			api.PropertyScale:           refs(api.RatioScaleIid),
			api.PropertyParameterType:   refs(api.SimpleQuantityKindIid, api.BooleanParameterTypeIid),
			api.PropertyUnitPrefix:      refs(),
			api.PropertyFileType:        refs(),
		}),
		thing(api.ClassKindCategory, api.CategoryIid, 1, map[string]any{
			api.PropertyName:             "Test Category",
			api.PropertyShortName:        "TestCategory",
			api.PropertyIsAbstract:       false,
			api.PropertyIsDeprecated:     false,
			api.PropertyPermissibleClass: []string{string(api.ClassKindElementDefinition), string(api.ClassKindRequirement)},
			api.PropertySuperCategory:    refs(),
		}),
		thing(api.ClassKindSimpleUnit, api.SimpleUnitIid, 1, map[string]any{
			api.PropertyName:         "metre",
			api.PropertyShortName:    "m",
			api.PropertyIsDeprecated: false,
		}),
		thing(api.ClassKindRatioScale, api.RatioScaleIid, 1, map[string]any{
			api.PropertyName:                    "metre scale",
			api.PropertyShortName:               "m_scale",
			api.PropertyUnit:                    api.SimpleUnitIid,
			api.PropertyNumberSet:               "REAL_NUMBER_SET",
			api.PropertyIsMinimumInclusive:      true,
			api.PropertyIsMaximumInclusive:      true,
			api.PropertyMinimumPermissibleValue: "0",
			api.PropertyMaximumPermissibleValue: "",
			api.PropertyIsDeprecated:            false,
			api.PropertyValueDefinition:         refs(),
			api.PropertyMappingToReferenceScale: refs(),
		}),
		thing(api.ClassKindSimpleQuantityKind, api.SimpleQuantityKindIid, 1, map[string]any{
			api.PropertyName:                    "length",
			api.PropertyShortName:               "l",
			api.PropertySymbol:                  "l",
			api.PropertyQuantityDimensionSymbol: "L",
			api.PropertyDefaultScale:            api.RatioScaleIid,
			api.PropertyPossibleScale:           refs(api.RatioScaleIid),
			api.PropertyIsDeprecated:            false,
			api.PropertyCategory:                refs(),
		}),
		thing(api.ClassKindBooleanParameterType, api.BooleanParameterTypeIid, 1, map[string]any{
			api.PropertyName:         "boolean",
			api.PropertyShortName:    "bool",
			api.PropertySymbol:       "b",
			api.PropertyIsDeprecated: false,
			api.PropertyCategory:     refs(),
		}),
		thing(api.ClassKindEngineeringModelSetup, api.ModelSetupIid, 1, map[string]any{
			api.PropertyName:                "Test Engineering Model",
			api.PropertyShortName:           "TestModel",
			api.PropertyEngineeringModelIid: api.EngineeringModelIid,
			api.PropertyKind:                "STUDY_MODEL",
			api.PropertyStudyPhase:          "PREPARATION_PHASE",
			api.PropertyActiveDomain:        refs(api.DomainIid, api.SubscriberDomainIid),
			api.PropertyParticipant:         refs(api.ParticipantIid),
			api.PropertyRequiredRdl:         refs(api.ModelReferenceDataLibIid),
			api.PropertyIterationSetup:      refs(api.IterationSetupIid),
		}),
		thing(api.ClassKindModelReferenceDataLibrary, api.ModelReferenceDataLibIid, 1, map[string]any{
			api.PropertyName:            "Test Model Reference Data Library",
			api.PropertyShortName:       "TestModelRDL",
			api.PropertyRequiredRdl:     api.SiteReferenceDataLibraryIid,
			api.PropertyDefinedCategory: refs(),
			api.PropertyParameterType:   refs(),
		}),
		thing(api.ClassKindIterationSetup, api.IterationSetupIid, 1, map[string]any{
			api.PropertyIterationIid:    api.IterationIid,
			api.PropertyIterationNumber: 1,
			api.PropertyDescription:     "Iteration 1",
			api.PropertyFrozenOn:        nil,
			api.PropertyIsDeleted:       false,
			api.PropertyCreatedOn:       createdOn,
		}),
		thing(api.ClassKindParticipant, api.ParticipantIid, 1, map[string]any{
			api.PropertyPerson:         api.AdminPersonIid,
			api.PropertyRole:           nil,
			api.PropertyDomain:         refs(api.DomainIid),
			api.PropertySelectedDomain: api.DomainIid,
			api.PropertyIsActive:       true,
		}),
		thing(api.ClassKindEngineeringModel, api.EngineeringModelIid, api.EngineeringModelRevision, map[string]any{
			api.PropertyEngineeringModelSetup: api.ModelSetupIid,
			api.PropertyIteration:             refs(api.IterationIid),
			api.PropertyCommonFileStore:       refs(api.CommonFileStoreIid),
			api.PropertyLogEntry:              refs(),
			api.PropertyLastModifiedOn:        createdOn,
		}),
		thing(api.ClassKindIteration, api.IterationIid, 3, map[string]any{
			api.PropertyIterationSetup:            api.IterationSetupIid,
			api.PropertyOption:                    ordered(api.OptionIid),
			api.PropertyDefaultOption:             api.OptionIid,
			api.PropertyElement:                   refs(api.SatelliteDefinitionIid, api.BatteryDefinitionIid),
			api.PropertyTopElement:                api.SatelliteDefinitionIid,
			api.PropertyRequirementsSpecification: refs(api.RequirementsSpecificationIid),
			api.PropertyPublication:               refs(),
			api.PropertyPossibleFiniteStateList:   refs(),
			api.PropertyActualFiniteStateList:     refs(),
			api.PropertyRelationship:              refs(),
			api.PropertyRuleVerificationList:      refs(),
			api.PropertyExternalIdentifierMap:     refs(),
			api.PropertyDomainFileStore:           refs(),
			api.PropertySourceIterationIid:        nil,
		}),
		thing(api.ClassKindOption, api.OptionIid, 2, map[string]any{
			api.PropertyName:          "Option 1",
			api.PropertyShortName:     "OPT_1",
			api.PropertyCategory:      refs(),
			api.PropertyNestedElement: refs(),
			api.PropertyAlias:         refs(),
			api.PropertyDefinition:    refs(),
			api.PropertyHyperLink:     refs(),
		}),
		thing(api.ClassKindElementDefinition, api.SatelliteDefinitionIid, 3, map[string]any{
			api.PropertyName:              "Satellite",
			api.PropertyShortName:         "SAT",
			api.PropertyOwner:             api.DomainIid,
			api.PropertyCategory:          refs(api.CategoryIid),
			api.PropertyParameter:         refs(),
			api.PropertyParameterGroup:    refs(),
			api.PropertyContainedElement:  refs(api.BatteryUsageIid),
			api.PropertyReferencedElement: refs(),
			api.PropertyThingPreference:   "satellite",
			api.PropertyActor:             api.AdminPersonIid,
		}),
		thing(api.ClassKindElementDefinition, api.BatteryDefinitionIid, 3, map[string]any{
			api.PropertyName:              "Battery",
			api.PropertyShortName:         "BAT",
			api.PropertyOwner:             api.DomainIid,
			api.PropertyCategory:          refs(),
			api.PropertyParameter:         refs(api.ParameterIid),
			api.PropertyParameterGroup:    refs(),
			api.PropertyContainedElement:  refs(),
			api.PropertyReferencedElement: refs(),
		}),
		thing(api.ClassKindElementUsage, api.BatteryUsageIid, 2, map[string]any{
			api.PropertyName:              "Battery",
			api.PropertyShortName:         "battery_1",
			api.PropertyOwner:             api.DomainIid,
			api.PropertyElementDefinition: api.BatteryDefinitionIid,
			api.PropertyParameterOverride: refs(api.ParameterOverrideIid),
			api.PropertyExcludeOption:     refs(),
			api.PropertyCategory:          refs(),
			api.PropertyInterfaceEnd:      "NONE",
		}),
		thing(api.ClassKindParameter, api.ParameterIid, 3, map[string]any{
			api.PropertyParameterType:                 api.SimpleQuantityKindIid,
			api.PropertyScale:                         api.RatioScaleIid,
			api.PropertyOwner:                         api.DomainIid,
			api.PropertyIsOptionDependent:             false,
			api.PropertyStateDependence:               nil,
			api.PropertyGroup:                         nil,
			api.PropertyRequestedBy:                   nil,
			api.PropertyAllowDifferentOwnerOfOverride: false,
			api.PropertyExpectsOverride:               false,
			api.PropertyValueSet:                      refs(api.ParameterValueSetIid),
			api.PropertyParameterSubscription:         refs(api.ParameterSubscriptionIid),
		}),
		thing(api.ClassKindParameterValueSet, api.ParameterValueSetIid, 3, map[string]any{
			api.PropertyManual:       `["10"]`,
			api.PropertyComputed:     `["-"]`,
			api.PropertyReference:    `["-"]`,
			api.PropertyFormula:      `["-"]`,
			api.PropertyPublished:    `["-"]`,
			api.PropertyValueSwitch:  "MANUAL",
			api.PropertyActualOption: nil,
			api.PropertyActualState:  nil,
		}),
		thing(api.ClassKindParameterSubscription, api.ParameterSubscriptionIid, 2, map[string]any{
			api.PropertyOwner:    api.SubscriberDomainIid,
			api.PropertyValueSet: refs(api.ParameterSubscriptionValueSetIid),
		}),
		thing(api.ClassKindParameterSubscriptionValueSet, api.ParameterSubscriptionValueSetIid, 2, map[string]any{
			api.PropertyManual:             `["-"]`,
			api.PropertyValueSwitch:        "COMPUTED",
			api.PropertySubscribedValueSet: api.ParameterValueSetIid,
		}),
		thing(api.ClassKindParameterOverride, api.ParameterOverrideIid, 2, map[string]any{
			api.PropertyParameter:             api.ParameterIid,
			api.PropertyOwner:                 api.DomainIid,
			api.PropertyValueSet:              refs(api.ParameterOverrideValueSetIid),
			api.PropertyParameterSubscription: refs(),
		}),
		thing(api.ClassKindParameterOverrideValueSet, api.ParameterOverrideValueSetIid, 2, map[string]any{
			api.PropertyManual:            `["12"]`,
			api.PropertyComputed:          `["-"]`,
			api.PropertyReference:         `["-"]`,
			api.PropertyFormula:           `["-"]`,
			api.PropertyPublished:         `["-"]`,
			api.PropertyValueSwitch:       "MANUAL",
			api.PropertyParameterValueSet: api.ParameterValueSetIid,
		}),
		thing(api.ClassKindRequirementsSpecification, api.RequirementsSpecificationIid, 2, map[string]any{
			api.PropertyName:         "Requirements",
			api.PropertyShortName:    "REQS",
			api.PropertyOwner:        api.DomainIid,
			api.PropertyRequirement:  refs(api.RequirementIid),
			api.PropertyGroup:        refs(),
			api.PropertyCategory:     refs(),
			api.PropertyIsDeprecated: false,
		}),
		thing(api.ClassKindRequirement, api.RequirementIid, 2, map[string]any{
			api.PropertyName:                 "Mass budget",
			api.PropertyShortName:            "REQ-001",
			api.PropertyOwner:                api.DomainIid,
			api.PropertyCategory:             refs(api.CategoryIid),
			api.PropertyGroup:                nil,
			api.PropertyParametricConstraint: refs(),
			api.PropertyDefinition:           refs(),
			api.PropertyIsDeprecated:         false,
		}),
		thing(api.ClassKindCommonFileStore, api.CommonFileStoreIid, 2, map[string]any{
			api.PropertyName:      "Common File Store",
			api.PropertyOwner:     api.DomainIid,
			api.PropertyCreatedOn: createdOn,
			api.PropertyFolder:    refs(api.FolderIid),
			api.PropertyFile:      refs(api.FileIid),
		}),
		thing(api.ClassKindFolder, api.FolderIid, 2, map[string]any{
			api.PropertyName:             "Documents",
			api.PropertyOwner:            api.DomainIid,
			api.PropertyCreator:          api.ParticipantIid,
			api.PropertyContainingFolder: nil,
			api.PropertyCreatedOn:        createdOn,
		}),
		thing(api.ClassKindFile, api.FileIid, 2, map[string]any{
			api.PropertyOwner:        api.DomainIid,
			api.PropertyLockedBy:     nil,
			api.PropertyCategory:     refs(),
			api.PropertyFileRevision: refs(api.FileRevisionIid),
		}),
		thing(api.ClassKindFileRevision, api.FileRevisionIid, 2, map[string]any{
			api.PropertyName:             "mass-budget",
			api.PropertyContentHash:      api.SeededFileContentHash,
			api.PropertyCreator:          api.ParticipantIid,
			api.PropertyContainingFolder: api.FolderIid,
			api.PropertyFileType:         refs(),
			api.PropertyCreatedOn:        createdOn,
		}),
	}
}

// SeededFiles returns the file content held by the seeded file revisions,
// keyed by content hash.
func SeededFiles() map[string][]byte {
	return map[string][]byte{
		api.SeededFileContentHash: []byte(api.SeededFileContent),
	}
}
