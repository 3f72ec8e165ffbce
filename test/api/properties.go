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

package api

// JSON property names used by the data transfer objects.
const (
	PropertyIid                           = "iid"
	PropertyClassKind                     = "classKind"
	PropertyRevisionNumber                = "revisionNumber"
	PropertyExcludedDomain                = "excludedDomain"
	PropertyExcludedPerson                = "excludedPerson"
	PropertyModifiedOn                    = "modifiedOn"
	PropertyThingPreference               = "thingPreference"
	PropertyActor                         = "actor"
	PropertyName                          = "name"
	PropertyShortName                     = "shortName"
	PropertyAlias                         = "alias"
	PropertyDefinition                    = "definition"
	PropertyHyperLink                     = "hyperLink"
	PropertyCategory                      = "category"
	PropertyOwner                         = "owner"
	PropertyCreatedOn                     = "createdOn"
	PropertyLastModifiedOn                = "lastModifiedOn"
	PropertyIsDeprecated                  = "isDeprecated"
	PropertyIsActive                      = "isActive"
	PropertyIsAbstract                    = "isAbstract"
	PropertyIsDefault                     = "isDefault"
	PropertyContainer                     = "container"
	PropertyDefaultPerson                 = "defaultPerson"
	PropertyDefaultParticipantRole        = "defaultParticipantRole"
	PropertyDefaultPersonRole             = "defaultPersonRole"
	PropertyDomain                        = "domain"
	PropertyDomainGroup                   = "domainGroup"
	PropertyGivenName                     = "givenName"
	PropertySurname                       = "surname"
	PropertyOrganization                  = "organization"
	PropertyPassword                      = "password"
	PropertyRole                          = "role"
	PropertyPerson                        = "person"
	PropertyPersonRole                    = "personRole"
	PropertyParticipantRole               = "participantRole"
	PropertyParticipant                   = "participant"
	PropertyModel                         = "model"
	PropertyEngineeringModelIid           = "engineeringModelIid"
	PropertyEngineeringModelSetup         = "engineeringModelSetup"
	PropertyIterationSetup                = "iterationSetup"
	PropertyIterationIid                  = "iterationIid"
	PropertyIterationNumber               = "iterationNumber"
	PropertyFrozenOn                      = "frozenOn"
	PropertyStudyPhase                    = "studyPhase"
	PropertyKind                          = "kind"
	PropertyActiveDomain                  = "activeDomain"
	PropertyRequiredRdl                   = "requiredRdl"
	PropertySiteReferenceDataLibrary      = "siteReferenceDataLibrary"
	PropertyModelReferenceDataLibrary     = "modelReferenceDataLibrary"
	PropertyDefinedCategory               = "definedCategory"
	PropertyPermissibleClass              = "permissibleClass"
	PropertySuperCategory                 = "superCategory"
	PropertyUnit                          = "unit"
	PropertyScale                         = "scale"
	PropertyUnitPrefix                    = "unitPrefix"
	PropertyParameterType                 = "parameterType"
	PropertyDefaultScale                  = "defaultScale"
	PropertyPossibleScale                 = "possibleScale"
	PropertyQuantityDimensionSymbol       = "quantityDimensionSymbol"
	PropertySymbol                        = "symbol"
	PropertyNumberSet                     = "numberSet"
	PropertyIsMinimumInclusive            = "isMinimumInclusive"
	PropertyIsMaximumInclusive            = "isMaximumInclusive"
	PropertyMinimumPermissibleValue       = "minimumPermissibleValue"
	PropertyMaximumPermissibleValue       = "maximumPermissibleValue"
	PropertyValueDefinition               = "valueDefinition"
	PropertyMappingToReferenceScale       = "mappingToReferenceScale"
	PropertyIteration                     = "iteration"
	PropertyOption                        = "option"
	PropertyDefaultOption                 = "defaultOption"
	PropertyTopElement                    = "topElement"
	PropertyElement                       = "element"
	PropertyContainedElement              = "containedElement"
	PropertyElementDefinition             = "elementDefinition"
	PropertyElementUsage                  = "elementUsage"
	PropertyExcludeOption                 = "excludeOption"
	PropertyInterfaceEnd                  = "interfaceEnd"
	PropertyParameter                     = "parameter"
	PropertyParameterOverride             = "parameterOverride"
	PropertyParameterSubscription         = "parameterSubscription"
	PropertyParameterGroup                = "parameterGroup"
	PropertyGroup                         = "group"
	PropertyIsOptionDependent             = "isOptionDependent"
	PropertyStateDependence               = "stateDependence"
	PropertyRequestedBy                   = "requestedBy"
	PropertyAllowDifferentOwnerOfOverride = "allowDifferentOwnerOfOverride"
	PropertyExpectsOverride               = "expectsOverride"
	PropertyValueSet                      = "valueSet"
	PropertyManual                        = "manual"
	PropertyComputed                      = "computed"
	PropertyReference                     = "reference"
	PropertyFormula                       = "formula"
	PropertyPublished                     = "published"
	PropertyValueSwitch                   = "valueSwitch"
	PropertyActualOption                  = "actualOption"
	PropertyActualState                   = "actualState"
	PropertySubscribedValueSet            = "subscribedValueSet"
	PropertyRequirementsSpecification     = "requirementsSpecification"
	PropertyRequirement                   = "requirement"
	PropertyParametricConstraint          = "parametricConstraint"
	PropertyParameterValue                = "parameterValue"
	PropertyCommonFileStore               = "commonFileStore"
	PropertyDomainFileStore               = "domainFileStore"
	PropertyFolder                        = "folder"
	PropertyFile                          = "file"
	PropertyFileRevision                  = "fileRevision"
	PropertyFileType                      = "fileType"
	PropertyContainingFolder              = "containingFolder"
	PropertyContentHash                   = "contentHash"
	PropertyCreator                       = "creator"
	PropertyLockedBy                      = "lockedBy"
	PropertyPublication                   = "publication"
	PropertyPossibleFiniteStateList       = "possibleFiniteStateList"
	PropertyActualFiniteStateList         = "actualFiniteStateList"
	PropertyRelationship                  = "relationship"
	PropertyRuleVerificationList          = "ruleVerificationList"
	PropertyExternalIdentifierMap         = "externalIdentifierMap"
	PropertySourceIterationIid            = "sourceIterationIid"
	PropertyLogEntry                      = "logEntry"
	PropertyExtension                     = "extension"
	PropertyNote                          = "note"
	PropertyContent                       = "content"
	PropertyLanguageCode                  = "languageCode"
	PropertyDefaultDomain                 = "defaultDomain"
	PropertyEmailAddress                  = "emailAddress"
	PropertyTelephoneNumber               = "telephoneNumber"
	PropertyUserPreference                = "userPreference"
	PropertyParameterValueSet             = "parameterValueSet"
	PropertyDescription                   = "description"
	PropertyIsDeleted                     = "isDeleted"
	PropertySelectedDomain                = "selectedDomain"
	PropertyNestedElement                 = "nestedElement"
	PropertyReferencedElement             = "referencedElement"
)

// Ordered-item JSON keys.
const (
	OrderedItemKey   = "k"
	OrderedItemValue = "v"
)

// Change request keys understood by the POST endpoints.
const (
	ChangeRequestDelete = "_delete"
	ChangeRequestCreate = "_create"
	ChangeRequestUpdate = "_update"
	ChangeRequestCopy   = "_copy"
)

// ClassKind names the concrete type of a thing.
type ClassKind string

// Class kinds exercised by the suites.
const (
	ClassKindSiteDirectory                 ClassKind = "SiteDirectory"
	ClassKindPerson                        ClassKind = "Person"
	ClassKindPersonRole                    ClassKind = "PersonRole"
	ClassKindParticipantRole               ClassKind = "ParticipantRole"
	ClassKindParticipant                   ClassKind = "Participant"
	ClassKindDomainOfExpertise             ClassKind = "DomainOfExpertise"
	ClassKindOrganization                  ClassKind = "Organization"
	ClassKindEngineeringModelSetup         ClassKind = "EngineeringModelSetup"
	ClassKindIterationSetup                ClassKind = "IterationSetup"
	ClassKindSiteReferenceDataLibrary      ClassKind = "SiteReferenceDataLibrary"
	ClassKindModelReferenceDataLibrary     ClassKind = "ModelReferenceDataLibrary"
	ClassKindCategory                      ClassKind = "Category"
	ClassKindSimpleUnit                    ClassKind = "SimpleUnit"
	ClassKindDerivedUnit                   ClassKind = "DerivedUnit"
	ClassKindRatioScale                    ClassKind = "RatioScale"
	ClassKindOrdinalScale                  ClassKind = "OrdinalScale"
	ClassKindSimpleQuantityKind            ClassKind = "SimpleQuantityKind"
	ClassKindBooleanParameterType          ClassKind = "BooleanParameterType"
	ClassKindTextParameterType             ClassKind = "TextParameterType"
	ClassKindFileType                      ClassKind = "FileType"
	ClassKindEngineeringModel              ClassKind = "EngineeringModel"
	ClassKindIteration                     ClassKind = "Iteration"
	ClassKindOption                        ClassKind = "Option"
	ClassKindElementDefinition             ClassKind = "ElementDefinition"
	ClassKindElementUsage                  ClassKind = "ElementUsage"
	ClassKindParameter                     ClassKind = "Parameter"
	ClassKindParameterValueSet             ClassKind = "ParameterValueSet"
	ClassKindParameterOverride             ClassKind = "ParameterOverride"
	ClassKindParameterOverrideValueSet     ClassKind = "ParameterOverrideValueSet"
	ClassKindParameterSubscription         ClassKind = "ParameterSubscription"
	ClassKindParameterSubscriptionValueSet ClassKind = "ParameterSubscriptionValueSet"
	ClassKindRequirementsSpecification     ClassKind = "RequirementsSpecification"
	ClassKindRequirement                   ClassKind = "Requirement"
	ClassKindRequirementsGroup             ClassKind = "RequirementsGroup"
	ClassKindCommonFileStore               ClassKind = "CommonFileStore"
	ClassKindDomainFileStore               ClassKind = "DomainFileStore"
	ClassKindFolder                        ClassKind = "Folder"
	ClassKindFile                          ClassKind = "File"
	ClassKindFileRevision                  ClassKind = "FileRevision"
	ClassKindDefinition                    ClassKind = "Definition"
)

// Extent values for the extent query parameter.
const (
	ExtentShallow = "shallow"
	ExtentDeep    = "deep"
)
