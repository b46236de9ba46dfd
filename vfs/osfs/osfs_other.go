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

//go:build !linux

package osfs

import (
	"log/slog"
	"os"

	"github.com/rrosajp/kodi-mock"
)

// SysStat returns the system metadata of the named file, following symbolic links.
// Outside Linux only the portable fields (size, mode and times) are filled,
// device, inode, link count and owner are zero.
// If there is an error, it will be of type *PathError.
func (vfs *OsFS) SysStat(name string) (*kodimock.SysStat, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}

	vfs.logger.Debug("stat", slog.String("path", name))

	mtime := info.ModTime()

	nlink := uint64(1)
	if info.IsDir() {
		nlink = 2
	}

	return &kodimock.SysStat{
		Atime: mtime,
		Ctime: mtime,
		Mtime: mtime,
		Nlink: nlink,
		Size:  info.Size(),
		Mode:  kodimock.UnixMode(info.Mode()),
	}, nil
}
