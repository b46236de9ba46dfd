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
	"io/fs"
	"strings"
)

// IsSpecialPath returns true if path uses the special:// scheme.
func IsSpecialPath(path string) bool {
	return strings.HasPrefix(path, SpecialScheme)
}

// SplitSpecialPath splits a special path into its root name and the remaining part.
// special://masterprofile/addon_data/foo gives "masterprofile" and "addon_data/foo".
// ok is false if path is not a special path or has nothing after the root name.
func SplitSpecialPath(path string) (root, rest string, ok bool) {
	if !IsSpecialPath(path) {
		return "", "", false
	}

	root, rest, ok = strings.Cut(path[len(SpecialScheme):], "/")

	return root, rest, ok
}

// TranslateSpecialPath translates a special path to a real path using env for root names.
// The components of the remainder are appended to the real root with the separator sep,
// without cleaning: ".." elements are kept and an empty last component leaves a trailing separator.
// Paths not using the special scheme are returned unchanged.
// If there is an error, it will be of type *SpecialPathError.
func TranslateSpecialPath(env Environment, sep uint8, path string) (string, error) {
	if !IsSpecialPath(path) {
		return path, nil
	}

	root, rest, ok := SplitSpecialPath(path)
	if !ok {
		return "", &SpecialPathError{Path: path, Err: ErrInvalidSpecialPath}
	}

	realRoot, ok := env.SpecialRoot(root)
	if !ok {
		return "", &SpecialPathError{Path: path, Root: root, Err: ErrUnknownRoot}
	}

	buf := make([]byte, 0, len(realRoot)+len(rest)+1)
	buf = append(buf, realRoot...)

	for _, part := range strings.Split(rest, "/") {
		if len(buf) > 0 && buf[len(buf)-1] != sep {
			buf = append(buf, sep)
		}

		buf = append(buf, part...)
	}

	return string(buf), nil
}

// Unix file type bits of st_mode.
const (
	unixIFMT   = 0o170000
	unixIFSOCK = 0o140000
	unixIFLNK  = 0o120000
	unixIFREG  = 0o100000
	unixIFBLK  = 0o060000
	unixIFDIR  = 0o040000
	unixIFCHR  = 0o020000
	unixIFIFO  = 0o010000
	unixISUID  = 0o4000
	unixISGID  = 0o2000
	unixISVTX  = 0o1000
)

// UnixMode converts a fs.FileMode to the unix st_mode encoding.
func UnixMode(mode fs.FileMode) uint32 {
	m := uint32(mode.Perm())

	switch mode.Type() {
	case fs.ModeDir:
		m |= unixIFDIR
	case fs.ModeSymlink:
		m |= unixIFLNK
	case fs.ModeNamedPipe:
		m |= unixIFIFO
	case fs.ModeSocket:
		m |= unixIFSOCK
	case fs.ModeDevice:
		m |= unixIFBLK
	case fs.ModeDevice | fs.ModeCharDevice:
		m |= unixIFCHR
	default:
		m |= unixIFREG
	}

	if mode&fs.ModeSetuid != 0 {
		m |= unixISUID
	}

	if mode&fs.ModeSetgid != 0 {
		m |= unixISGID
	}

	if mode&fs.ModeSticky != 0 {
		m |= unixISVTX
	}

	return m
}

// IsUnixDir returns true if a unix st_mode describes a directory.
func IsUnixDir(mode uint32) bool {
	return mode&unixIFMT == unixIFDIR
}
