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
	"github.com/rrosajp/kodi-mock"
)

// Stat returns the metadata of a file or a directory.
// Execute (search) permission is required on all the directories leading to the file.
func (fsys *FS) Stat(path string) (*Stat, error) {
	name, err := fsys.TranslatePath(path)
	if err != nil {
		return nil, err
	}

	st, err := fsys.vfs.SysStat(name)
	if err != nil {
		return nil, err
	}

	return &Stat{st: *st}, nil
}

// StAtime returns the time of last access in seconds since the epoch.
func (s *Stat) StAtime() int64 {
	return s.st.Atime.Unix()
}

// StCtime returns the time of last status change in seconds since the epoch.
func (s *Stat) StCtime() int64 {
	return s.st.Ctime.Unix()
}

// StMtime returns the time of last modification in seconds since the epoch.
func (s *Stat) StMtime() int64 {
	return s.st.Mtime.Unix()
}

// StDev returns the ID of the device containing the file.
func (s *Stat) StDev() uint64 {
	return s.st.Dev
}

// StGid returns the group ID of the owner.
func (s *Stat) StGid() uint32 {
	return s.st.Gid
}

// StIno returns the inode number.
func (s *Stat) StIno() uint64 {
	return s.st.Ino
}

// StMode returns the file type and permissions (unix st_mode).
func (s *Stat) StMode() uint32 {
	return s.st.Mode
}

// StNlink returns the number of hard links.
func (s *Stat) StNlink() uint64 {
	return s.st.Nlink
}

// StSize returns the total size in bytes.
func (s *Stat) StSize() int64 {
	return s.st.Size
}

// StUid returns the user ID of the owner.
func (s *Stat) StUid() uint32 {
	return s.st.Uid
}

// IsDir returns true if the Stat describes a directory.
func (s *Stat) IsDir() bool {
	return kodimock.IsUnixDir(s.st.Mode)
}

// Sys returns a copy of the captured metadata.
func (s *Stat) Sys() kodimock.SysStat {
	return s.st
}
