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
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/cdp-integration/webservice-tests/test/api"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// containment lists, per class kind, the properties that own their members.
// Everything else holding iids is a plain reference.
//
//nolint:gochecknoglobals
var containment = map[api.ClassKind][]string{
	api.ClassKindSiteDirectory: {
		api.PropertyPerson, api.PropertyDomain, api.PropertySiteReferenceDataLibrary, api.PropertyModel,
		api.PropertyOrganization, api.PropertyPersonRole, api.PropertyParticipantRole, api.PropertyDomainGroup, api.PropertyLogEntry,
	},
	api.ClassKindPerson:            {api.PropertyEmailAddress, api.PropertyTelephoneNumber, api.PropertyUserPreference},
	api.ClassKindDomainOfExpertise: {api.PropertyAlias, api.PropertyDefinition, api.PropertyHyperLink},
	api.ClassKindSiteReferenceDataLibrary: {
		api.PropertyDefinedCategory, api.PropertyUnit, api.PropertyScale, api.PropertyParameterType, api.PropertyUnitPrefix, api.PropertyFileType,
	},
	api.ClassKindModelReferenceDataLibrary: {
		api.PropertyDefinedCategory, api.PropertyUnit, api.PropertyScale, api.PropertyParameterType, api.PropertyUnitPrefix, api.PropertyFileType,
	},
	api.ClassKindRatioScale:            {api.PropertyValueDefinition, api.PropertyMappingToReferenceScale},
	api.ClassKindEngineeringModelSetup: {api.PropertyParticipant, api.PropertyRequiredRdl, api.PropertyIterationSetup},
	api.ClassKindEngineeringModel:      {api.PropertyIteration, api.PropertyCommonFileStore, api.PropertyLogEntry},
	api.ClassKindIteration: {
		api.PropertyOption, api.PropertyElement, api.PropertyRequirementsSpecification, api.PropertyPublication,
		api.PropertyPossibleFiniteStateList, api.PropertyActualFiniteStateList, api.PropertyRelationship,
		api.PropertyRuleVerificationList, api.PropertyExternalIdentifierMap, api.PropertyDomainFileStore,
	},
	api.ClassKindOption:                    {api.PropertyAlias, api.PropertyDefinition, api.PropertyHyperLink},
	api.ClassKindElementDefinition:         {api.PropertyParameter, api.PropertyParameterGroup, api.PropertyContainedElement},
	api.ClassKindElementUsage:              {api.PropertyParameterOverride},
	api.ClassKindParameter:                 {api.PropertyValueSet, api.PropertyParameterSubscription},
	api.ClassKindParameterOverride:         {api.PropertyValueSet, api.PropertyParameterSubscription},
	api.ClassKindParameterSubscription:     {api.PropertyValueSet},
	api.ClassKindRequirementsSpecification: {api.PropertyRequirement, api.PropertyGroup},
	api.ClassKindRequirement:               {api.PropertyParametricConstraint, api.PropertyDefinition},
	api.ClassKindCommonFileStore:           {api.PropertyFolder, api.PropertyFile},
	api.ClassKindDomainFileStore:           {api.PropertyFolder, api.PropertyFile},
	api.ClassKindFile:                      {api.PropertyFileRevision},
}

// isContainment reports whether a property of a thing owns its members.
func isContainment(thing api.Thing, property string) bool {
	if !slices.Contains(containment[thing.ClassKind()], property) {
		return false
	}

	_, ok := thing[property].([]any)

	return ok
}

// memberIids returns the iids held by a list property, plain or ordered.
func memberIids(thing api.Thing, property string) []string {
	items, ok := thing[property].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))

	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case map[string]any:
			if s, ok := v[api.OrderedItemValue].(string); ok {
				out = append(out, s)
			}
		}
	}

	return out
}

// isIdentity reports whether a property is part of a thing's identity rather
// than its content.
func isIdentity(property string) bool {
	return property == api.PropertyIid || property == api.PropertyClassKind || property == api.PropertyRevisionNumber
}

// store is the dataset proper.  It is not safe for concurrent use, the
// server serializes access.
type store struct {
	things  map[string]api.Thing
	parents map[string]string
	files   map[string][]byte
}

// normalize gives things the shape a JSON decoder produces, so the store
// only ever deals with []any, map[string]any and float64.
func normalize(things []api.Thing) ([]api.Thing, error) {
	data, err := json.Marshal(things)
	if err != nil {
		return nil, fmt.Errorf("marshaling dataset: %w", err)
	}

	var out []api.Thing
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling dataset: %w", err)
	}

	return out, nil
}

func newStore(seed []api.Thing, files map[string][]byte) (*store, error) {
	things, err := normalize(seed)
	if err != nil {
		return nil, err
	}

	s := &store{
		things:  make(map[string]api.Thing, len(things)),
		parents: map[string]string{},
		files:   maps.Clone(files),
	}

	if s.files == nil {
		s.files = map[string][]byte{}
	}

	for _, thing := range things {
		if !api.ValidIid(thing.Iid()) || thing.ClassKind() == "" {
			return nil, fmt.Errorf("%w: dataset thing %v has no identity", ErrBadRequest, thing)
		}

		s.things[thing.Iid()] = thing
	}

	for _, thing := range things {
		for _, child := range s.children(thing) {
			s.parents[child] = thing.Iid()
		}
	}

	return s, nil
}

// clone returns a deep copy, change requests are applied to a clone and
// swapped in on success.
func (s *store) clone() (*store, error) {
	things, err := normalize(slices.Collect(maps.Values(s.things)))
	if err != nil {
		return nil, err
	}

	out := &store{
		things:  make(map[string]api.Thing, len(things)),
		parents: maps.Clone(s.parents),
		files:   maps.Clone(s.files),
	}

	for _, thing := range things {
		out.things[thing.Iid()] = thing
	}

	return out, nil
}

// children returns the iids a thing directly contains, in property order.
func (s *store) children(thing api.Thing) []string {
	var out []string

	for _, property := range containment[thing.ClassKind()] {
		if isContainment(thing, property) {
			out = append(out, memberIids(thing, property)...)
		}
	}

	return out
}

// descendants returns everything below a thing, depth first.
func (s *store) descendants(thing api.Thing) []api.Thing {
	var out []api.Thing

	for _, iid := range s.children(thing) {
		child, ok := s.things[iid]
		if !ok {
			continue
		}

		out = append(out, child)
		out = append(out, s.descendants(child)...)
	}

	return out
}

// containers returns the containment chain above a thing, top first.
func (s *store) containers(iid string) []api.Thing {
	var out []api.Thing

	for parent, ok := s.parents[iid]; ok; parent, ok = s.parents[parent] {
		out = append([]api.Thing{s.things[parent]}, out...)
	}

	return out
}

// isAncestor reports whether candidate is on the containment chain above iid.
func (s *store) isAncestor(candidate, iid string) bool {
	seen := map[string]bool{}

	for parent, ok := s.parents[iid]; ok && !seen[parent]; parent, ok = s.parents[parent] {
		if parent == candidate {
			return true
		}

		seen[parent] = true
	}

	return false
}

// topOf returns the top container of a thing, or the thing itself.
func (s *store) topOf(iid string) string {
	for {
		parent, ok := s.parents[iid]
		if !ok {
			return iid
		}

		iid = parent
	}
}

func (s *store) tops(kind api.ClassKind) []api.Thing {
	var out []api.Thing

	for iid, thing := range s.things {
		if _, ok := s.parents[iid]; !ok && thing.ClassKind() == kind {
			out = append(out, thing)
		}
	}

	slices.SortFunc(out, func(a, b api.Thing) int {
		return strings.Compare(a.Iid(), b.Iid())
	})

	return out
}

// target is what a request path addresses: a thing, or one of its
// containment collections.
type target struct {
	thing      api.Thing
	collection string
}

func (t target) top(s *store) api.Thing {
	return s.things[s.topOf(t.thing.Iid())]
}

// resolve walks a path of the form Kind/iid[/property/iid]*[/property].
func (s *store) resolve(segments []string) (target, error) {
	if len(segments) < 2 {
		return target{}, fmt.Errorf("%w: incomplete path", ErrBadRequest)
	}

	current, ok := s.things[segments[1]]
	if !ok || string(current.ClassKind()) != segments[0] || s.parents[segments[1]] != "" {
		return target{}, fmt.Errorf("%w: %s %s", ErrNotFound, segments[0], segments[1])
	}

	for i := 2; i < len(segments); i += 2 {
		property := segments[i]

		if !isContainment(current, property) {
			return target{}, fmt.Errorf("%w: %s has no collection %s", ErrNotFound, current.ClassKind(), property)
		}

		if i+1 == len(segments) {
			return target{thing: current, collection: property}, nil
		}

		iid := segments[i+1]

		if !slices.Contains(memberIids(current, property), iid) {
			return target{}, fmt.Errorf("%w: %s %s does not contain %s", ErrNotFound, current.ClassKind(), current.Iid(), iid)
		}

		current = s.things[iid]
	}

	return target{thing: current}, nil
}

// query holds the GET options the fake understands.
type query struct {
	deep                 bool
	includeAllContainers bool
	includeReferenceData bool
	cherryPick           bool
	classKinds           []string
	categories           []string
	revision             *int64
}

// collector accumulates things once each, in insertion order.
type collector struct {
	seen map[string]bool
	out  []api.Thing
}

func (c *collector) add(things ...api.Thing) {
	if c.seen == nil {
		c.seen = map[string]bool{}
	}

	for _, thing := range things {
		if thing == nil || c.seen[thing.Iid()] {
			continue
		}

		c.seen[thing.Iid()] = true
		c.out = append(c.out, thing)
	}
}

func (s *store) get(t target, q query) []api.Thing {
	base := []api.Thing{t.thing}

	if t.collection != "" {
		base = nil

		for _, iid := range memberIids(t.thing, t.collection) {
			if member, ok := s.things[iid]; ok {
				base = append(base, member)
			}
		}
	}

	return s.collect(t, base, q)
}

func (s *store) collect(t target, base []api.Thing, q query) []api.Thing {
	var c collector

	if q.includeAllContainers && t.thing != nil {
		c.add(s.containers(t.thing.Iid())...)

		if t.collection != "" {
			c.add(t.thing)
		}
	}

	switch {
	case q.cherryPick:
		for _, thing := range base {
			candidates := append([]api.Thing{thing}, s.descendants(thing)...)

			for _, candidate := range candidates {
				if matchesCherryPick(candidate, q) {
					c.add(candidate)
				}
			}
		}
	default:
		for _, thing := range base {
			c.add(thing)

			if q.deep {
				c.add(s.descendants(thing)...)
			}
		}
	}

	if q.includeReferenceData && t.thing != nil {
		c.add(s.referenceData(t.top(s))...)
	}

	if q.revision == nil {
		return c.out
	}

	var out []api.Thing

	for _, thing := range c.out {
		if thing.RevisionNumber() > *q.revision {
			out = append(out, thing)
		}
	}

	return out
}

func matchesCherryPick(thing api.Thing, q query) bool {
	if len(q.classKinds) > 0 && !slices.Contains(q.classKinds, string(thing.ClassKind())) {
		return false
	}

	if len(q.categories) == 0 {
		return true
	}

	for _, category := range memberIids(thing, api.PropertyCategory) {
		if slices.Contains(q.categories, category) {
			return true
		}
	}

	return false
}

// referenceData returns the reference data libraries an engineering model
// requires, following the chain of required libraries.
func (s *store) referenceData(top api.Thing) []api.Thing {
	if top.ClassKind() != api.ClassKindEngineeringModel {
		return nil
	}

	setupIid, _ := top[api.PropertyEngineeringModelSetup].(string)

	setup, ok := s.things[setupIid]
	if !ok {
		return nil
	}

	var out []api.Thing

	seen := map[string]bool{}

	for _, iid := range memberIids(setup, api.PropertyRequiredRdl) {
		for rdl, ok := s.things[iid]; ok && !seen[rdl.Iid()]; {
			seen[rdl.Iid()] = true

			out = append(out, rdl)
			out = append(out, s.descendants(rdl)...)

			next, _ := rdl[api.PropertyRequiredRdl].(string)
			rdl, ok = s.things[next]
		}
	}

	return out
}

// changeRequest is the body of a POST.
type changeRequest struct {
	Delete []api.Thing `json:"_delete"`
	Create []api.Thing `json:"_create"`
	Update []api.Thing `json:"_update"`
}

// apply runs a change request against the top container of t, with
// uploads keyed by content hash.  It returns the changed things, top
// container first.
//
//nolint:cyclop,gocognit
func (s *store) apply(t target, request changeRequest, uploads map[string][]byte) ([]api.Thing, error) {
	top := t.top(s)
	topIid := top.Iid()
	revision := top.RevisionNumber() + 1

	var changed []string

	markChanged := func(iid string) {
		if !slices.Contains(changed, iid) {
			changed = append(changed, iid)
		}
	}

	for _, partial := range request.Delete {
		existing, ok := s.things[partial.Iid()]
		if !ok || s.topOf(partial.Iid()) != topIid {
			return nil, fmt.Errorf("%w: thing %s to delete does not exist", ErrBadRequest, partial.Iid())
		}

		members := slices.DeleteFunc(slices.Collect(maps.Keys(partial)), isIdentity)
		if len(members) == 0 {
			if partial.Iid() == topIid {
				return nil, fmt.Errorf("%w: the top container %s cannot be deleted", ErrBadRequest, topIid)
			}

			parent := s.parents[partial.Iid()]
			s.remove(partial.Iid())
			markChanged(parent)

			continue
		}

		for _, property := range members {
			if err := s.removeMembers(existing, property, partial[property]); err != nil {
				return nil, err
			}
		}

		markChanged(existing.Iid())
	}

	var created []string

	for _, thing := range request.Create {
		if !api.ValidIid(thing.Iid()) || thing.ClassKind() == "" {
			return nil, fmt.Errorf("%w: created things need an iid and a classKind", ErrBadRequest)
		}

		if _, ok := s.things[thing.Iid()]; ok {
			return nil, fmt.Errorf("%w: thing %s already exists", ErrBadRequest, thing.Iid())
		}

		if thing.ClassKind() == api.ClassKindFileRevision {
			if err := s.attachContent(thing, uploads); err != nil {
				return nil, err
			}
		}

		s.things[thing.Iid()] = maps.Clone(thing)
		created = append(created, thing.Iid())
		markChanged(thing.Iid())
	}

	for _, iid := range created {
		if err := s.adopt(s.things[iid]); err != nil {
			return nil, err
		}
	}

	for _, partial := range request.Update {
		existing, ok := s.things[partial.Iid()]
		if !ok {
			return nil, fmt.Errorf("%w: thing %s to update does not exist", ErrBadRequest, partial.Iid())
		}

		for property, value := range partial {
			if isIdentity(property) {
				continue
			}

			if err := s.update(existing, property, value); err != nil {
				return nil, err
			}
		}

		markChanged(existing.Iid())
	}

	for _, iid := range created {
		if _, ok := s.parents[iid]; !ok {
			return nil, fmt.Errorf("%w: thing %s is not contained by anything", ErrBadRequest, iid)
		}

		if s.topOf(iid) != topIid {
			return nil, fmt.Errorf("%w: thing %s is outside %s", ErrBadRequest, iid, topIid)
		}
	}

	var c collector

	top[api.PropertyRevisionNumber] = float64(revision)
	c.add(top)

	for _, iid := range changed {
		thing, ok := s.things[iid]
		if !ok {
			continue
		}

		if s.topOf(iid) != topIid {
			return nil, fmt.Errorf("%w: thing %s is outside %s", ErrBadRequest, iid, topIid)
		}

		thing[api.PropertyRevisionNumber] = float64(revision)
		c.add(thing)
	}

	return c.out, nil
}

// remove deletes a thing and everything it contains.
func (s *store) remove(iid string) {
	thing, ok := s.things[iid]
	if !ok {
		return
	}

	for _, child := range s.children(thing) {
		s.remove(child)
	}

	if parent, ok := s.parents[iid]; ok {
		if container, ok := s.things[parent]; ok {
			for _, property := range containment[container.ClassKind()] {
				filterMembers(container, property, func(member string) bool { return member == iid })
			}
		}
	}

	delete(s.things, iid)
	delete(s.parents, iid)
}

// removeMembers drops the listed members from a collection, deleting them
// when the collection owns them.
func (s *store) removeMembers(thing api.Thing, property string, value any) error {
	partial := api.Thing{property: value}

	remove := memberIids(partial, property)
	if remove == nil {
		return fmt.Errorf("%w: %s of %s is not a collection", ErrBadRequest, property, thing.Iid())
	}

	if isContainment(thing, property) {
		for _, iid := range remove {
			if s.parents[iid] != thing.Iid() {
				return fmt.Errorf("%w: %s of %s does not contain %s", ErrBadRequest, property, thing.Iid(), iid)
			}

			s.remove(iid)
		}

		return nil
	}

	filterMembers(thing, property, func(member string) bool { return slices.Contains(remove, member) })

	return nil
}

func filterMembers(thing api.Thing, property string, drop func(string) bool) {
	items, ok := thing[property].([]any)
	if !ok {
		return
	}

	thing[property] = slices.DeleteFunc(slices.Clone(items), func(item any) bool {
		switch v := item.(type) {
		case string:
			return drop(v)
		case map[string]any:
			s, _ := v[api.OrderedItemValue].(string)
			return drop(s)
		}

		return false
	})
}

// update applies one property of a partial thing.  Collections are merged,
// ordered items replace those with the same key, scalars are overwritten.
func (s *store) update(thing api.Thing, property string, value any) error {
	items, ok := value.([]any)
	if !ok {
		thing[property] = value
		return nil
	}

	existing, _ := thing[property].([]any)
	merged := slices.Clone(existing)

	for _, item := range items {
		index := slices.IndexFunc(merged, func(candidate any) bool {
			return sameMember(candidate, item)
		})

		if index >= 0 {
			merged[index] = item
			continue
		}

		merged = append(merged, item)
	}

	if merged == nil {
		merged = []any{}
	}

	thing[property] = merged

	return s.adopt(thing)
}

// adopt records a thing as the container of the members of its
// containment collections.
func (s *store) adopt(thing api.Thing) error {
	for _, property := range containment[thing.ClassKind()] {
		if !isContainment(thing, property) {
			continue
		}

		for _, iid := range memberIids(thing, property) {
			if _, ok := s.things[iid]; !ok {
				return fmt.Errorf("%w: %s of %s refers to unknown thing %s", ErrBadRequest, property, thing.Iid(), iid)
			}

			if iid == thing.Iid() || s.isAncestor(iid, thing.Iid()) {
				return fmt.Errorf("%w: thing %s cannot contain itself or its container %s", ErrBadRequest, thing.Iid(), iid)
			}

			if parent, ok := s.parents[iid]; ok && parent != thing.Iid() {
				return fmt.Errorf("%w: thing %s is already contained by %s", ErrBadRequest, iid, parent)
			}

			s.parents[iid] = thing.Iid()
		}
	}

	return nil
}

// sameMember compares collection members, ordered items by key.
func sameMember(a, b any) bool {
	am, aOrdered := a.(map[string]any)
	bm, bOrdered := b.(map[string]any)

	if aOrdered && bOrdered {
		return am[api.OrderedItemKey] == bm[api.OrderedItemKey]
	}

	return a == b
}

// attachContent checks a new file revision's content was uploaded, or is
// already known, and records it.
func (s *store) attachContent(revision api.Thing, uploads map[string][]byte) error {
	hash, err := revision.String(api.PropertyContentHash)
	if err != nil {
		return fmt.Errorf("%w: file revision %s: %w", ErrBadRequest, revision.Iid(), err)
	}

	if data, ok := uploads[hash]; ok {
		if api.ContentHash(data) != hash {
			return fmt.Errorf("%w: content of file revision %s does not match hash %s", ErrBadRequest, revision.Iid(), hash)
		}

		s.files[hash] = data

		return nil
	}

	if _, ok := s.files[hash]; !ok {
		return fmt.Errorf("%w: no content uploaded for file revision %s", ErrBadRequest, revision.Iid())
	}

	return nil
}
