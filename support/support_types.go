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
	"errors"
	"log/slog"

	"github.com/rrosajp/kodi-mock"
)

// ErrEmptyAddonID is returned when an addon without id is added to the registry.
var ErrEmptyAddonID = errors.New("support: empty addon id")

// Support implements kodimock.Environment: it holds the active addon id,
// the registry of installed addons, the special roots and the setting overrides.
// Support is not safe for concurrent modification.
type Support struct {
	pluginID  string                         // pluginID is the id of the active addon.
	baseDir   string                         // baseDir is the sandbox directory of the default roots.
	defaults  map[string]string              // defaults are the default roots of baseDir.
	roots     map[string]string              // roots are the explicitly configured roots.
	addons    map[string]*kodimock.AddonData // addons is the registry of installed addons.
	overrides *kodimock.Overrides            // overrides are the setting overrides shared by the addon accessors.
	logger    *slog.Logger                   // logger receives debug messages.
}

// Option defines the option function used for initializing Support.
type Option func(*Support) error
