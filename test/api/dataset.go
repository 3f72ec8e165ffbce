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

// Iids of the seeded test dataset that /Data/Restore returns the server to.
const (
	SiteDirectoryIid            = "f13de6f8-b03a-46e7-a492-53b2f260f294"
	AdminPersonIid              = "77791b12-4c2c-4499-93fa-869df3692d22"
	ViewerPersonIid             = "aec8eb0a-69e2-4a21-9a6e-811db6b1471e"
	DomainIid                   = "0e92edde-fdff-41db-9b1d-f2e484f12535"
	SubscriberDomainIid         = "eb759723-14b9-49f4-8611-544d037bb764"
	SiteReferenceDataLibraryIid = "c454c687-ba3e-44c4-86bc-44544b2c7880"
	CategoryIid                 = "107fc408-7e6d-4f1a-895a-1b6a6025ac20"
	SimpleUnitIid               = "56842970-3915-4369-8712-61cfd8273ef9"
	RatioScaleIid               = "53e82aeb-c42c-475c-b6bf-a102af883471"
	SimpleQuantityKindIid       = "a21c15c4-3e1e-46b5-b109-5063dec1e254"
	BooleanParameterTypeIid     = "35a9cf05-4eba-4cda-b60c-7cfeaac8f892"
	ModelSetupIid               = "116f6253-89bb-47d4-aa24-d11d197e43c9"
	ModelReferenceDataLibIid    = "3483f2b5-ea29-45cc-8a46-f5f598558fc3"
	IterationSetupIid           = "86163b0e-8341-4316-94fc-93ed60ad0dcf"
	ParticipantIid              = "284334dd-e8e5-42d6-bc8a-715c507a7f02"

	EngineeringModelIid              = "9ec982e4-ef72-4953-aa85-b158a95d8d56"
	IterationIid                     = "e163c5ad-f32b-4387-b805-f4b34600bc2c"
	OptionIid                        = "bebcc9f4-ff20-4569-94a0-aa98ef9cd6b5"
	SatelliteDefinitionIid           = "f73860b2-12f0-43e4-b8b2-c81862c0a159"
	BatteryDefinitionIid             = "fd0a9f85-20d4-4dba-a4b3-98210d5f64c2"
	BatteryUsageIid                  = "75399754-ee45-4bca-b033-63e2019870d1"
	ParameterIid                     = "6c5aff74-f983-4aa8-a9d6-293b3429307c"
	ParameterValueSetIid             = "af5c88c6-301f-497b-81f7-53748c3900ed"
	ParameterOverrideIid             = "93f767ed-4d22-45f6-ae97-d1dab0d36e1c"
	ParameterOverrideValueSetIid     = "63048116-4666-48a3-b18e-90c631b1ac23"
	ParameterSubscriptionIid         = "f1f076c4-5307-42cd-90db-16f3f11e9e4c"
	ParameterSubscriptionValueSetIid = "6256bb1a-3c86-4e0d-88a1-a90f8ffe3cbf"
	RequirementsSpecificationIid     = "8d0734f4-ca4b-4611-9187-f6970e2b02bc"
	RequirementIid                   = "614e2a69-d602-46be-9311-2fb4d3273e87"
	CommonFileStoreIid               = "8e5ca9cc-3115-4ee0-a1b2-6e2a4d7a30e0"
	FolderIid                        = "67cdb7de-7721-40a0-9ca2-10a5cf7742fc"
	FileIid                          = "95bf0f17-1273-4338-98ae-839016242775"
	FileRevisionIid                  = "d791136b-3bab-497d-9f2e-fbb105667af1"
)

// Seeded revision numbers of the two top containers.
const (
	SiteDirectoryRevision    = 2
	EngineeringModelRevision = 3
)

// SeededFileContent is the content of the seeded file revision.
const SeededFileContent = "Mass budget, issue 1\n"

// SeededFileContentHash is ContentHash(SeededFileContent).
const SeededFileContentHash = "C8F121C188C2C0EA1CB2CAC42EF57A4CA0DA7138"
