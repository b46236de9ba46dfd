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

// Package support provides the environment consumed by the mock Kodi modules:
// active addon, addon registry, special roots and setting overrides.
// It can be built with options or loaded from a TOML file.
package support

import (
	"log/slog"
	"sort"

	"github.com/rrosajp/kodi-mock"
)

// PluginID returns the id of the active addon.
func (s *Support) PluginID() string {
	return s.pluginID
}

// SetPluginID sets the id of the active addon.
func (s *Support) SetPluginID(id string) {
	s.pluginID = id
}

// Addon returns the record of an installed addon.
func (s *Support) Addon(id string) (*kodimock.AddonData, bool) {
	data, ok := s.addons[id]

	return data, ok
}

// AddAddon adds or replaces an addon in the registry.
// The properties "id" and "profile" are set if missing.
func (s *Support) AddAddon(data *kodimock.AddonData) error {
	if data == nil || data.ID == "" {
		return ErrEmptyAddonID
	}

	if data.Info == nil {
		data.Info = make(map[string]string)
	}

	if _, ok := data.Info["id"]; !ok {
		data.Info["id"] = data.ID
	}

	if _, ok := data.Info["profile"]; !ok {
		data.Info["profile"] = kodimock.SpecialScheme + "profile/addon_data/" + data.ID + "/"
	}

	if data.Strings == nil {
		data.Strings = make(map[int]string)
	}

	if data.Settings == nil {
		data.Settings = make(map[string]string)
	}

	s.addons[data.ID] = data
	s.logger.Debug("addon registered", slog.String("addon", data.ID))

	return nil
}

// Addons returns the sorted ids of the installed addons.
func (s *Support) Addons() []string {
	ids := make([]string, 0, len(s.addons))
	for id := range s.addons {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// SpecialRoot returns the real directory of a special root name.
func (s *Support) SpecialRoot(name string) (string, bool) {
	if dir, ok := s.roots[name]; ok {
		return dir, true
	}

	dir, ok := s.defaults[name]

	return dir, ok
}

// SetRoot maps a special root name to a real directory.
func (s *Support) SetRoot(name, dir string) {
	s.roots[name] = dir
}

// Roots returns a copy of the special root table, default roots included.
func (s *Support) Roots() map[string]string {
	roots := make(map[string]string, len(s.defaults)+len(s.roots))

	for name, dir := range s.defaults {
		roots[name] = dir
	}

	for name, dir := range s.roots {
		roots[name] = dir
	}

	return roots
}

// RootNames returns the sorted names of the special roots.
func (s *Support) RootNames() []string {
	roots := s.Roots()

	names := make([]string, 0, len(roots))
	for name := range roots {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// BaseDir returns the sandbox directory of the default roots, if any.
func (s *Support) BaseDir() string {
	return s.baseDir
}

// Overrides returns the setting override table.
func (s *Support) Overrides() *kodimock.Overrides {
	return s.overrides
}
