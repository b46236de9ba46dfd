//
//  Copyright 2024 The AVFS authors
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

//go:build linux

package osfs

import (
	"io/fs"
	"log/slog"
	"time"

	"github.com/rrosajp/kodi-mock"
	"golang.org/x/sys/unix"
)

// SysStat returns the system metadata of the named file, following symbolic links.
// The metadata is captured by a single stat(2) system call.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) SysStat(name string) (*kodimock.SysStat, error) {
	const op = "stat"

	var st unix.Stat_t

	err := unix.Stat(name, &st)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	vfs.logger.Debug("stat", slog.String("path", name), slog.Uint64("ino", uint64(st.Ino)))

	return &kodimock.SysStat{
		Atime: time.Unix(st.Atim.Unix()),
		Ctime: time.Unix(st.Ctim.Unix()),
		Mtime: time.Unix(st.Mtim.Unix()),
		Dev:   uint64(st.Dev),   //nolint:unconvert // required for 32 bits systems.
		Ino:   uint64(st.Ino),   //nolint:unconvert // required for 32 bits systems.
		Nlink: uint64(st.Nlink), //nolint:unconvert // required for 32 bits systems.
		Size:  st.Size,
		Mode:  st.Mode,
		Uid:   st.Uid,
		Gid:   st.Gid,
	}, nil
}
