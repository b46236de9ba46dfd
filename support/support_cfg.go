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

package support

import (
	"log/slog"

	"github.com/rrosajp/kodi-mock"
)

// New returns a new Support.
func New(opts ...Option) (*Support, error) {
	s := &Support{
		roots:     make(map[string]string),
		addons:    make(map[string]*kodimock.AddonData),
		overrides: kodimock.NewOverrides(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		err := opt(s)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Options

// WithPluginID returns an option function which sets the id of the active addon.
func WithPluginID(id string) Option {
	return func(s *Support) error {
		s.pluginID = id

		return nil
	}
}

// WithAddon returns an option function which adds an addon to the registry.
func WithAddon(data *kodimock.AddonData) Option {
	return func(s *Support) error {
		return s.AddAddon(data)
	}
}

// WithRoot returns an option function which maps a special root name to a real directory.
func WithRoot(name, dir string) Option {
	return func(s *Support) error {
		s.SetRoot(name, dir)

		return nil
	}
}

// WithRoots returns an option function which maps several special roots to real directories.
func WithRoots(roots map[string]string) Option {
	return func(s *Support) error {
		for name, dir := range roots {
			s.SetRoot(name, dir)
		}

		return nil
	}
}

// WithBaseDir returns an option function which installs the default roots of a sandbox directory
// (see DefaultRoots). Roots set explicitly take precedence over the default roots.
func WithBaseDir(dir string) Option {
	return func(s *Support) error {
		s.baseDir = dir
		s.defaults = DefaultRoots(dir)

		return nil
	}
}

// WithOverrides returns an option function which sets the setting override table.
func WithOverrides(overrides *kodimock.Overrides) Option {
	return func(s *Support) error {
		s.overrides = overrides

		return nil
	}
}

// WithLogger returns an option function which sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Support) error {
		s.logger = logger

		return nil
	}
}
