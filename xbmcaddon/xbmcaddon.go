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

// Package xbmcaddon mocks the Kodi xbmcaddon module: addon information,
// settings and localized strings.
package xbmcaddon

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/rrosajp/kodi-mock"
)

// ID returns the id of the addon.
func (a *Addon) ID() string {
	return a.data.ID
}

// GetAddonInfo returns the value of an addon property as a string.
// Usual properties are author, changelog, description, disclaimer, fanart, icon,
// id, name, path, profile, stars, summary, type and version.
// An unknown property gives an empty string.
func (a *Addon) GetAddonInfo(id string) string {
	value, ok := a.data.Info[id]
	if !ok && id == "id" {
		return a.data.ID
	}

	return value
}

// GetLocalizedString returns the localized string of an id.
// If the id is not defined, the returned error is of type kodimock.UnknownStringError.
func (a *Addon) GetLocalizedString(id int) (string, error) {
	s, ok := a.data.Strings[id]
	if !ok {
		return "", kodimock.UnknownStringError(id)
	}

	return s, nil
}

// GetSetting returns the value of a setting as a string.
// An overridden value takes precedence over the value stored by the addon.
// If the setting is not defined, the returned error is of type kodimock.UnknownSettingError.
func (a *Addon) GetSetting(id string) (string, error) {
	if value, ok := a.overrides.Get(id); ok {
		return value, nil
	}

	value, ok := a.data.Settings[id]
	if !ok {
		return "", kodimock.UnknownSettingError(id)
	}

	return value, nil
}

// GetSettingBool returns the value of a setting as a boolean.
// Only the values "true" and "1" are true.
func (a *Addon) GetSettingBool(id string) (bool, error) {
	value, err := a.GetSetting(id)
	if err != nil {
		return false, err
	}

	return value == "true" || value == "1", nil
}

// GetSettingInt returns the value of a setting as an integer.
// The value is a decimal integer, optionally signed, surrounded by spaces
// and with single underscores between digits (1_000).
// Values outside the range of int fail with strconv.ErrRange.
// If the value is not an integer, the returned error is of type *SettingParseError.
func (a *Addon) GetSettingInt(id string) (int, error) {
	value, err := a.GetSetting(id)
	if err != nil {
		return 0, err
	}

	i, err := parseInt(value)
	if err != nil {
		return 0, &SettingParseError{ID: id, Value: value, Kind: KindInt, Err: err}
	}

	return i, nil
}

// GetSettingNumber returns the value of a setting as a floating point number.
// The value is a decimal number (1.5, -2e10, inf, nan) surrounded by spaces,
// with single underscores between digits. Hexadecimal numbers are refused.
// If the value is not a number, the returned error is of type *SettingParseError.
func (a *Addon) GetSettingNumber(id string) (float64, error) {
	value, err := a.GetSetting(id)
	if err != nil {
		return 0, err
	}

	f, err := parseNumber(value)
	if err != nil {
		return 0, &SettingParseError{ID: id, Value: value, Kind: KindNumber, Err: err}
	}

	return f, nil
}

// GetSettingString returns the value of a setting as a string.
func (a *Addon) GetSettingString(id string) (string, error) {
	return a.GetSetting(id)
}

// OpenSettings opens the settings dialog of the addon.
// There is no user interface outside Kodi, it does nothing.
func (*Addon) OpenSettings() {}

// SetSetting sets the value of a setting in the addon settings.
// The override table is never modified.
func (a *Addon) SetSetting(id, value string) bool {
	if a.data.Settings == nil {
		a.data.Settings = make(map[string]string)
	}

	a.data.Settings[id] = value

	return true
}

// SetSettingBool sets a boolean setting, stored as "true" or "false".
func (a *Addon) SetSettingBool(id string, value bool) bool {
	return a.SetSetting(id, strconv.FormatBool(value))
}

// SetSettingInt sets an integer setting.
func (a *Addon) SetSettingInt(id string, value int) bool {
	return a.SetSetting(id, strconv.Itoa(value))
}

// SetSettingNumber sets a floating point setting.
func (a *Addon) SetSettingNumber(id string, value float64) bool {
	return a.SetSetting(id, FormatNumber(value))
}

// SetSettingString sets a string setting.
func (a *Addon) SetSettingString(id, value string) bool {
	return a.SetSetting(id, value)
}

// SetSettingValue sets a setting from a value of unknown type.
// It returns false without modifying the setting if the dynamic type of value does not match kind:
// bool for KindBool, any integer type for KindInt, float32 or float64 for KindNumber
// and string for KindString.
func (a *Addon) SetSettingValue(id string, kind SettingKind, value any) bool {
	text, ok := formatValue(kind, value)
	if !ok {
		a.logger.Debug("setting type mismatch",
			slog.String("setting", id), slog.String("kind", kind.String()), slog.Any("value", value))

		return false
	}

	return a.SetSetting(id, text)
}

// FormatNumber returns the textual form of a floating point setting.
// Integral values keep a decimal part ("5.0") and very small or large values use
// an exponent ("1e-05", "1e+16").
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// formatValue returns the textual form of a value if its type matches kind.
func formatValue(kind SettingKind, value any) (string, bool) {
	switch kind {
	case KindBool:
		if v, ok := value.(bool); ok {
			return strconv.FormatBool(v), true
		}
	case KindInt:
		switch v := value.(type) {
		case int:
			return strconv.FormatInt(int64(v), 10), true
		case int8:
			return strconv.FormatInt(int64(v), 10), true
		case int16:
			return strconv.FormatInt(int64(v), 10), true
		case int32:
			return strconv.FormatInt(int64(v), 10), true
		case int64:
			return strconv.FormatInt(v, 10), true
		case uint:
			return strconv.FormatUint(uint64(v), 10), true
		case uint8:
			return strconv.FormatUint(uint64(v), 10), true
		case uint16:
			return strconv.FormatUint(uint64(v), 10), true
		case uint32:
			return strconv.FormatUint(uint64(v), 10), true
		case uint64:
			return strconv.FormatUint(v, 10), true
		}
	case KindNumber:
		switch v := value.(type) {
		case float32:
			return FormatNumber(float64(v)), true
		case float64:
			return FormatNumber(v), true
		}
	case KindString:
		if v, ok := value.(string); ok {
			return v, true
		}
	}

	return "", false
}

// parseInt parses the text of an integer setting.
func parseInt(value string) (int, error) {
	const fn = "Atoi"

	s, ok := stripDigitSeparators(strings.TrimSpace(value))
	if !ok {
		return 0, &strconv.NumError{Func: fn, Num: value, Err: strconv.ErrSyntax}
	}

	return strconv.Atoi(s)
}

// parseNumber parses the text of a number setting.
func parseNumber(value string) (float64, error) {
	const fn = "ParseFloat"

	s, ok := stripDigitSeparators(strings.TrimSpace(value))
	if !ok {
		return 0, &strconv.NumError{Func: fn, Num: value, Err: strconv.ErrSyntax}
	}

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, &strconv.NumError{Func: fn, Num: value, Err: strconv.ErrSyntax}
	}

	return strconv.ParseFloat(s, 64)
}

// stripDigitSeparators removes the underscores of s.
// ok is false if an underscore is not between two digits.
func stripDigitSeparators(s string) (stripped string, ok bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}

		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}

	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
