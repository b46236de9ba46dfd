//
//  Copyright 2024 The kodi-mock authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package kodimock

import (
	"sort"
	"sync"
)

// Overrides is a table of setting values taking precedence over the settings of an addon.
// Test harnesses fill it to inject values; addon accessors only read it.
// Overrides is safe for concurrent use.
type Overrides struct {
	mu       sync.RWMutex
	settings map[string]string
}

// NewOverrides returns an empty override table.
func NewOverrides() *Overrides {
	return &Overrides{settings: make(map[string]string)}
}

// Get returns the overridden value of a setting.
// A nil *Overrides has no values.
func (o *Overrides) Get(id string) (string, bool) {
	if o == nil {
		return "", false
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	value, ok := o.settings[id]

	return value, ok
}

// Set overrides the value of a setting.
func (o *Overrides) Set(id, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.settings == nil {
		o.settings = make(map[string]string)
	}

	o.settings[id] = value
}

// Delete removes the override of a setting.
func (o *Overrides) Delete(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.settings, id)
}

// Reset removes all overrides.
func (o *Overrides) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.settings = make(map[string]string)
}

// Len returns the number of overridden settings.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.settings)
}

// IDs returns the sorted ids of the overridden settings.
func (o *Overrides) IDs() []string {
	if o == nil {
		return nil
	}

	o.mu.RLock()

	ids := make([]string, 0, len(o.settings))
	for id := range o.settings {
		ids = append(ids, id)
	}

	o.mu.RUnlock()

	sort.Strings(ids)

	return ids
}
