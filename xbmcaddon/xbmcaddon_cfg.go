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

package xbmcaddon

import (
	"log/slog"

	"github.com/rrosajp/kodi-mock"
)

// New returns the Addon accessor of an addon of env.
// Without WithID the currently active addon (env.PluginID()) is used.
// If the addon is not installed, the returned error is of type kodimock.UnknownAddonError.
func New(env kodimock.Environment, opts ...Option) (*Addon, error) {
	a := &Addon{logger: slog.Default()}

	for _, opt := range opts {
		opt(a)
	}

	id := a.id
	if id == "" {
		id = env.PluginID()
	}

	data, ok := env.Addon(id)
	if !ok || data == nil {
		return nil, kodimock.UnknownAddonError(id)
	}

	a.data = data
	a.logger = a.logger.With(slog.String("addon", id))

	return a, nil
}

// Options

// WithID returns an option function which selects the addon by its id instead of the active addon.
func WithID(id string) Option {
	return func(a *Addon) {
		a.id = id
	}
}

// WithOverrides returns an option function which sets the override table consulted before the addon settings.
func WithOverrides(overrides *kodimock.Overrides) Option {
	return func(a *Addon) {
		a.overrides = overrides
	}
}

// WithLogger returns an option function which sets the logger of the accessor.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Addon) {
		a.logger = logger
	}
}
