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
	"encoding/json"
)

// ThingBuilder builds the partial things carried in a change request.
type ThingBuilder struct {
	thing Thing
}

// NewThing starts a thing of the given kind with a fresh iid.
func NewThing(kind ClassKind) *ThingBuilder {
	return &ThingBuilder{
		thing: Thing{
			PropertyIid:       NewIid(),
			PropertyClassKind: string(kind),
		},
	}
}

// Reference is the minimal {iid, classKind} form used to address an existing
// thing, e.g. the container of something being created.
func Reference(kind ClassKind, iid string) *ThingBuilder {
	return NewThing(kind).WithIid(iid)
}

func (b *ThingBuilder) WithIid(iid string) *ThingBuilder {
	b.thing[PropertyIid] = iid
	return b
}

// With sets an arbitrary property.
func (b *ThingBuilder) With(name string, value any) *ThingBuilder {
	b.thing[name] = value
	return b
}

func (b *ThingBuilder) WithShortName(shortName string) *ThingBuilder {
	return b.With(PropertyShortName, shortName)
}

func (b *ThingBuilder) WithName(name string) *ThingBuilder {
	return b.With(PropertyName, name)
}

// WithIids sets a reference collection, an empty list clears it.
func (b *ThingBuilder) WithIids(name string, iids ...string) *ThingBuilder {
	if iids == nil {
		iids = []string{}
	}

	return b.With(name, iids)
}

// WithOrderedItems sets an ordered collection.
func (b *ThingBuilder) WithOrderedItems(name string, items ...OrderedItem) *ThingBuilder {
	if items == nil {
		items = []OrderedItem{}
	}

	return b.With(name, items)
}

// Iid returns the iid of the thing under construction.
func (b *ThingBuilder) Iid() string {
	return b.thing.Iid()
}

func (b *ThingBuilder) Build() Thing {
	out := make(Thing, len(b.thing))
	for k, v := range b.thing {
		out[k] = v
	}

	return out
}

// MarshalJSON renders an ordered item in its wire form.
func (o OrderedItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		OrderedItemKey:   o.Key,
		OrderedItemValue: o.Value,
	})
}

// ChangeRequestBuilder assembles the body of a POST.  The server applies
// deletes, then creates, then updates, all in one transaction.
type ChangeRequestBuilder struct {
	deletes []Thing
	creates []Thing
	updates []Thing
}

func NewChangeRequest() *ChangeRequestBuilder {
	return &ChangeRequestBuilder{}
}

// Delete removes things, or when a partial thing lists a collection, removes
// those members from it.
func (b *ChangeRequestBuilder) Delete(things ...*ThingBuilder) *ChangeRequestBuilder {
	b.deletes = appendBuilt(b.deletes, things)
	return b
}

func (b *ChangeRequestBuilder) Create(things ...*ThingBuilder) *ChangeRequestBuilder {
	b.creates = appendBuilt(b.creates, things)
	return b
}

// Update applies partial things.  Adding a new thing to a container is done
// by updating the container's collection with the new iid.
func (b *ChangeRequestBuilder) Update(things ...*ThingBuilder) *ChangeRequestBuilder {
	b.updates = appendBuilt(b.updates, things)
	return b
}

func appendBuilt(out []Thing, builders []*ThingBuilder) []Thing {
	for _, builder := range builders {
		out = append(out, builder.Build())
	}

	return out
}

// Build returns the change request with every section present.
func (b *ChangeRequestBuilder) Build() map[string][]Thing {
	return map[string][]Thing{
		ChangeRequestDelete: nonNil(b.deletes),
		ChangeRequestCreate: nonNil(b.creates),
		ChangeRequestUpdate: nonNil(b.updates),
	}
}

func (b *ChangeRequestBuilder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Build())
}

func nonNil(things []Thing) []Thing {
	if things == nil {
		return []Thing{}
	}

	return things
}
