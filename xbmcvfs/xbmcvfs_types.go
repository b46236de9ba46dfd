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

package xbmcvfs

import (
	"errors"
	"log/slog"

	"github.com/rrosajp/kodi-mock"
)

// ErrSameFile is returned by Copy when the source and the destination are the same file.
var ErrSameFile = errors.New("source and destination are the same file")

// FS gives access to the Kodi virtual file system.
// Special paths are translated with the roots of an environment,
// files are accessed through a kodimock.VFS.
type FS struct {
	env    kodimock.Environment // env supplies the special roots.
	vfs    kodimock.VFS         // vfs is the file system used for all operations.
	logger *slog.Logger         // logger receives the reasons of failed boolean operations.
}

// Option defines the option function used for initializing FS.
type Option func(*FS)

// File is an open file of the virtual file system.
// It is owned by its creator and must be closed explicitly.
type File struct {
	file   kodimock.File // file is the open file of the VFS.
	vfs    kodimock.VFS  // vfs is the file system of the file.
	path   string        // path is the translated path used to open the file.
	logger *slog.Logger  // logger receives the reasons of failed writes.
	closed bool          // closed is true after Close.
}

// Stat is a snapshot of the metadata of a file taken when the Stat was created.
type Stat struct {
	st kodimock.SysStat
}

// InvalidModeError is returned by Open when the mode string is not valid.
type InvalidModeError string

func (e InvalidModeError) Error() string {
	return "xbmcvfs: invalid mode '" + string(e) + "'"
}
