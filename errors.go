//
//  Copyright 2020 The AVFS authors
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
	"errors"
	"io/fs"
	"strconv"
)

var (
	// ErrUnknownRoot is returned when a special path refers to a root name absent from the root table.
	ErrUnknownRoot = errors.New("not a valid root dir")

	// ErrInvalidSpecialPath is returned when a special path has no part after its root name.
	ErrInvalidSpecialPath = errors.New("invalid special path")
)

// UnknownAddonError is returned when an addon id is not present in the addon registry.
type UnknownAddonError string

func (e UnknownAddonError) Error() string {
	return "addon: unknown addon id '" + string(e) + "'"
}

// UnknownStringError is returned when a localization id is not defined by an addon.
type UnknownStringError int

func (e UnknownStringError) Error() string {
	return "addon: unknown localized string " + strconv.Itoa(int(e))
}

// UnknownSettingError is returned when a setting id is neither overridden nor defined by an addon.
type UnknownSettingError string

func (e UnknownSettingError) Error() string {
	return "addon: unknown setting '" + string(e) + "'"
}

// SpecialPathError records a special path that could not be translated to a real path.
type SpecialPathError struct {
	Path string // Path is the special path as presented to TranslatePath.
	Root string // Root is the root name extracted from Path.
	Err  error  // Err is ErrUnknownRoot or ErrInvalidSpecialPath.
}

func (e *SpecialPathError) Error() string {
	if e.Root == "" {
		return e.Path + ": " + e.Err.Error()
	}

	return e.Root + " is " + e.Err.Error() + " (" + e.Path + ")"
}

func (e *SpecialPathError) Unwrap() error {
	return e.Err
}

// Errno replaces syscall.Errno for emulated file systems.
// Values are the Linux error numbers.
type Errno uint64 //nolint:errname // the type name `Errno` should conform to the `XxxError` format.

func (en Errno) Error() string {
	s, ok := errText[en]
	if ok {
		return s
	}

	return "errno " + strconv.Itoa(int(en))
}

// Is reports whether the Errno matches one of the portable errors of the io/fs package.
func (en Errno) Is(target error) bool {
	switch target {
	case fs.ErrPermission:
		return en == ErrPermDenied || en == ErrOpNotPermitted
	case fs.ErrExist:
		return en == ErrFileExists || en == ErrDirNotEmpty
	case fs.ErrNotExist:
		return en == ErrNoSuchFileOrDir
	}

	return false
}

const (
	ErrBadFileDesc     = Errno(0x9)  // bad file descriptor.
	ErrBusy            = Errno(0x10) // device or resource busy.
	ErrCrossDevLink    = Errno(0x12) // invalid cross-device link.
	ErrDirNotEmpty     = Errno(0x27) // Directory not empty.
	ErrFileExists      = Errno(0x11) // File exists.
	ErrInvalidArgument = Errno(0x16) // invalid argument
	ErrIsADirectory    = Errno(0x15) // File Is a directory.
	ErrNoSuchFileOrDir = Errno(0x2)  // No such file or directory.
	ErrNotADirectory   = Errno(0x14) // Not a directory.
	ErrOpNotPermitted  = Errno(0x1)  // operation not permitted.
	ErrPermDenied      = Errno(0xd)  // Permission denied.
)

// errText translates an error number to text.
var errText = map[Errno]string{ //nolint:gochecknoglobals // errText is a read only lookup table.
	ErrBadFileDesc:     "bad file descriptor",
	ErrBusy:            "device or resource busy",
	ErrCrossDevLink:    "invalid cross-device link",
	ErrDirNotEmpty:     "directory not empty",
	ErrFileExists:      "file exists",
	ErrInvalidArgument: "invalid argument",
	ErrIsADirectory:    "is a directory",
	ErrNoSuchFileOrDir: "no such file or directory",
	ErrNotADirectory:   "not a directory",
	ErrOpNotPermitted:  "operation not permitted",
	ErrPermDenied:      "permission denied",
}
