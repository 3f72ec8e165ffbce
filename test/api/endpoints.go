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

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"

	"k8s.io/utils/ptr"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// pathParameter styles a single path segment the same way generated clients do.
func pathParameter(name, value string) string {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return url.PathEscape(value)
	}

	return styled
}

// join appends alternating container property / iid segments to a root,
// e.g. join("/SiteDirectory", sdIid, "person", personIid).
func join(root string, segments ...string) string {
	var b strings.Builder

	b.WriteString(root)

	for i, segment := range segments {
		b.WriteByte('/')

		// Odd positions name a containment property and are never escaped.
		if i%2 == 1 {
			b.WriteString(segment)
			continue
		}

		b.WriteString(pathParameter("iid", segment))
	}

	return b.String()
}

// Site directory endpoints.
func (e *Endpoints) SiteDirectories() string {
	return "/SiteDirectory"
}

// SiteDirectory addresses the site directory, or something contained by it
// when further property/iid segments are given.
func (e *Endpoints) SiteDirectory(siteDirectoryIid string, segments ...string) string {
	return join("/SiteDirectory", append([]string{siteDirectoryIid}, segments...)...)
}

func (e *Endpoints) Persons(siteDirectoryIid string) string {
	return e.SiteDirectory(siteDirectoryIid) + "/" + PropertyPerson
}

func (e *Endpoints) Person(siteDirectoryIid, personIid string) string {
	return e.SiteDirectory(siteDirectoryIid, PropertyPerson, personIid)
}

func (e *Endpoints) Domains(siteDirectoryIid string) string {
	return e.SiteDirectory(siteDirectoryIid) + "/" + PropertyDomain
}

func (e *Endpoints) Domain(siteDirectoryIid, domainIid string) string {
	return e.SiteDirectory(siteDirectoryIid, PropertyDomain, domainIid)
}

func (e *Endpoints) SiteReferenceDataLibraries(siteDirectoryIid string) string {
	return e.SiteDirectory(siteDirectoryIid) + "/" + PropertySiteReferenceDataLibrary
}

func (e *Endpoints) SiteReferenceDataLibrary(siteDirectoryIid, rdlIid string, segments ...string) string {
	return e.SiteDirectory(siteDirectoryIid, append([]string{PropertySiteReferenceDataLibrary, rdlIid}, segments...)...)
}

func (e *Endpoints) ModelSetups(siteDirectoryIid string) string {
	return e.SiteDirectory(siteDirectoryIid) + "/" + PropertyModel
}

func (e *Endpoints) ModelSetup(siteDirectoryIid, setupIid string, segments ...string) string {
	return e.SiteDirectory(siteDirectoryIid, append([]string{PropertyModel, setupIid}, segments...)...)
}

// Engineering model endpoints.
func (e *Endpoints) EngineeringModel(modelIid string, segments ...string) string {
	return join("/EngineeringModel", append([]string{modelIid}, segments...)...)
}

func (e *Endpoints) Iterations(modelIid string) string {
	return e.EngineeringModel(modelIid) + "/" + PropertyIteration
}

// Iteration addresses an iteration, or something contained by it when further
// property/iid segments are given.
func (e *Endpoints) Iteration(modelIid, iterationIid string, segments ...string) string {
	return e.EngineeringModel(modelIid, append([]string{PropertyIteration, iterationIid}, segments...)...)
}

// IterationCollection lists all things held in a containment property of an iteration.
func (e *Endpoints) IterationCollection(modelIid, iterationIid, property string) string {
	return e.Iteration(modelIid, iterationIid) + "/" + property
}

// Administrative endpoints.
func (e *Endpoints) Restore() string {
	return "/Data/Restore"
}

func (e *Endpoints) Export() string {
	return "/export"
}

// Query holds the query parameters understood by the GET endpoints.  Unset
// fields are omitted so the server applies its own defaults.
type Query struct {
	Extent               string
	IncludeReferenceData *bool
	IncludeAllContainers *bool
	IncludeFileData      *bool
	RevisionNumber       *int
	CherryPick           bool
	ClassKinds           []ClassKind
	Categories           []string
}

// Encode renders the query in a stable order.  List values use the server's
// bracketed form, e.g. classkind=[Requirement,Folder].
func (q Query) Encode() string {
	var parts []string

	if q.Extent != "" {
		parts = append(parts, "extent="+url.QueryEscape(q.Extent))
	}

	if q.IncludeReferenceData != nil {
		parts = append(parts, "includeReferenceData="+strconv.FormatBool(*q.IncludeReferenceData))
	}

	if q.IncludeAllContainers != nil {
		parts = append(parts, "includeAllContainers="+strconv.FormatBool(*q.IncludeAllContainers))
	}

	if q.IncludeFileData != nil {
		parts = append(parts, "includeFileData="+strconv.FormatBool(*q.IncludeFileData))
	}

	if q.RevisionNumber != nil {
		parts = append(parts, "revisionNumber="+strconv.Itoa(*q.RevisionNumber))
	}

	if q.CherryPick {
		parts = append(parts, "cherryPick=true")
	}

	if len(q.ClassKinds) > 0 {
		kinds := make([]string, len(q.ClassKinds))
		for i := range q.ClassKinds {
			kinds[i] = url.QueryEscape(string(q.ClassKinds[i]))
		}

		parts = append(parts, "classkind=["+strings.Join(kinds, ",")+"]")
	}

	if len(q.Categories) > 0 {
		categories := make([]string, len(q.Categories))
		for i := range q.Categories {
			categories[i] = url.QueryEscape(q.Categories[i])
		}

		parts = append(parts, "category=["+strings.Join(categories, ",")+"]")
	}

	return strings.Join(parts, "&")
}

// WithQuery appends the encoded query to a path, if there is one.
func WithQuery(path string, q Query) string {
	encoded := q.Encode()
	if encoded == "" {
		return path
	}

	return path + "?" + encoded
}

// IncludeAllContainers returns a query that asks for the full containment chain.
func IncludeAllContainers() Query {
	return Query{IncludeAllContainers: ptr.To(true)}
}

// Deep returns a query for the thing and everything it contains.
func Deep() Query {
	return Query{Extent: ExtentDeep}
}

// AtRevision returns a query for only the things changed after the given
// revision.
func AtRevision(revision int) Query {
	return Query{RevisionNumber: ptr.To(revision)}
}

// CherryPick returns a query selecting things by class kind and category
// anywhere below the addressed container.
func CherryPick(kinds []ClassKind, categories ...string) Query {
	return Query{
		Extent:     ExtentDeep,
		CherryPick: true,
		ClassKinds: kinds,
		Categories: categories,
	}
}

// WithReferenceData returns a copy of the query that also includes the
// required reference data libraries.
func (q Query) WithReferenceData() Query {
	q.IncludeReferenceData = ptr.To(true)
	return q
}

// WithAllContainers returns a copy of the query that also includes containers.
func (q Query) WithAllContainers() Query {
	q.IncludeAllContainers = ptr.To(true)
	return q
}

// WithRevision returns a copy of the query restricted to changes made after
// the given revision.
func (q Query) WithRevision(revision int) Query {
	q.RevisionNumber = ptr.To(revision)
	return q
}
