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
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
)

var (
	ErrPropertyMissing = errors.New("property missing")
	ErrPropertyType    = errors.New("property has unexpected type")
)

// Thing is the opaque JSON serialization of a single server resource.
type Thing map[string]any

// OrderedItem is an element of an ordered collection, serialized as {"k": .., "v": ..}.
type OrderedItem struct {
	Key   int64
	Value any
}

// ParseThings decodes a response body holding a JSON array of things.
// An empty body yields nil.
func ParseThings(body []byte) ([]Thing, error) {
	if len(body) == 0 {
		return nil, nil
	}

	var things []Thing
	if err := json.Unmarshal(body, &things); err != nil {
		return nil, fmt.Errorf("unmarshaling things: %w", err)
	}

	return things, nil
}

func (t Thing) Iid() string {
	s, _ := t[PropertyIid].(string)
	return s
}

func (t Thing) ClassKind() ClassKind {
	s, _ := t[PropertyClassKind].(string)
	return ClassKind(s)
}

func (t Thing) RevisionNumber() int64 {
	n, _ := t.Int(PropertyRevisionNumber)
	return n
}

// Has reports whether the property is present, even if null.
func (t Thing) Has(name string) bool {
	_, ok := t[name]
	return ok
}

func (t Thing) String(name string) (string, error) {
	raw, ok := t[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrPropertyMissing, name)
	}

	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", ErrPropertyType, name, raw)
	}

	return s, nil
}

// NullableString returns nil for a JSON null.
func (t Thing) NullableString(name string) (*string, error) {
	raw, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPropertyMissing, name)
	}

	if raw == nil {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrPropertyType, name, raw)
	}

	return &s, nil
}

// Int returns an integral property.  JSON numbers decode as float64 so this
// rejects values with a fractional part.
func (t Thing) Int(name string) (int64, error) {
	raw, ok := t[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPropertyMissing, name)
	}

	switch v := raw.(type) {
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%w: %s is not integral (%v)", ErrPropertyType, name, v)
		}

		return int64(v), nil
	case json.Number:
		return v.Int64()
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrPropertyType, name, raw)
	}
}

func (t Thing) Bool(name string) (bool, error) {
	raw, ok := t[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrPropertyMissing, name)
	}

	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T", ErrPropertyType, name, raw)
	}

	return b, nil
}

// Strings returns an array-of-strings property, typically a list of iids.
func (t Thing) Strings(name string) ([]string, error) {
	raw, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPropertyMissing, name)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrPropertyType, name, raw)
	}

	out := make([]string, 0, len(items))

	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T", ErrPropertyType, name, i, item)
		}

		out = append(out, s)
	}

	return out, nil
}

// OrderedItems returns an ordered collection sorted by key.
func (t Thing) OrderedItems(name string) ([]OrderedItem, error) {
	raw, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPropertyMissing, name)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrPropertyType, name, raw)
	}

	out := make([]OrderedItem, 0, len(items))

	for i, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T", ErrPropertyType, name, i, item)
		}

		key, ok := object[OrderedItemKey].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] has no numeric key", ErrPropertyType, name, i)
		}

		out = append(out, OrderedItem{Key: int64(key), Value: object[OrderedItemValue]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})

	return out, nil
}

// OrderedValues returns the values of an ordered collection in key order.
func (t Thing) OrderedValues(name string) ([]any, error) {
	items, err := t.OrderedItems(name)
	if err != nil {
		return nil, err
	}

	out := make([]any, len(items))
	for i := range items {
		out[i] = items[i].Value
	}

	return out, nil
}

// FindThing returns the thing with the given iid, or nil.
func FindThing(things []Thing, iid string) Thing {
	i := slices.IndexFunc(things, func(t Thing) bool {
		return t.Iid() == iid
	})

	if i < 0 {
		return nil
	}

	return things[i]
}

// FilterByClassKind returns all things of the given class kind, preserving order.
func FilterByClassKind(things []Thing, kind ClassKind) []Thing {
	var out []Thing

	for _, thing := range things {
		if thing.ClassKind() == kind {
			out = append(out, thing)
		}
	}

	return out
}

// Iids returns the iids of things in order.
func Iids(things []Thing) []string {
	out := make([]string, len(things))
	for i := range things {
		out[i] = things[i].Iid()
	}

	return out
}

// ValidIid reports whether s is a well formed iid.
func ValidIid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// NewIid generates an iid for things created by a test.
func NewIid() string {
	return uuid.NewString()
}
