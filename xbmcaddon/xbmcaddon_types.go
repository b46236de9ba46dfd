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

// Addon gives access to the information, settings and localized strings of one addon.
// An Addon is not safe for concurrent use when settings are modified.
type Addon struct {
	data      *kodimock.AddonData // data is the addon record, owned by the registry.
	overrides *kodimock.Overrides // overrides take precedence over the settings of data.
	id        string              // id is the requested addon id, empty for the active addon.
	logger    *slog.Logger        // logger receives debug messages.
}

// Option defines the option function used for initializing Addon.
type Option func(*Addon)

// SettingKind is the type of value a setting holds.
type SettingKind uint8

const (
	KindString SettingKind = iota // KindString is a text setting.
	KindBool                      // KindBool is a boolean setting.
	KindInt                       // KindInt is an integer setting.
	KindNumber                    // KindNumber is a floating point setting.
)

func (k SettingKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// ParseSettingKind returns the SettingKind named s (string, bool, int or number).
func ParseSettingKind(s string) (SettingKind, bool) {
	for k := KindString; k <= KindNumber; k++ {
		if k.String() == s {
			return k, true
		}
	}

	return KindString, false
}

// SettingParseError is returned when a setting value can't be converted to the requested type.
type SettingParseError struct {
	ID    string      // ID is the setting id.
	Value string      // Value is the textual value of the setting.
	Kind  SettingKind // Kind is the requested type.
	Err   error       // Err is the error of the strconv package.
}

func (e *SettingParseError) Error() string {
	return "addon: setting '" + e.ID + "' value '" + e.Value + "' is not a valid " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *SettingParseError) Unwrap() error {
	return e.Err
}
