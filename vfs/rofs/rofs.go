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

// Package rofs provides a read only file system on top of any other file system.
package rofs

import (
	"io/fs"
	"os"

	"github.com/rrosajp/kodi-mock"
)

// writeFlags are the opening flags refused by a read only file system.
const writeFlags = os.O_WRONLY | os.O_RDWR | os.O_APPEND | os.O_CREATE | os.O_TRUNC

// Create creates or truncates the named file.
// It always fails with a permission denied error.
func (vfs *RoFS) Create(name string) (kodimock.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: kodimock.ErrPermDenied}
}

// Join joins any number of path elements into a single path.
func (vfs *RoFS) Join(elem ...string) string {
	return vfs.baseFS.Join(elem...)
}

// Lstat returns a FileInfo describing the named file.
// If there is an error, it will be of type *PathError.
func (vfs *RoFS) Lstat(name string) (fs.FileInfo, error) {
	return vfs.baseFS.Lstat(name)
}

// Mkdir creates a new directory with the specified name and permission bits.
// It always fails with a permission denied error.
func (vfs *RoFS) Mkdir(name string, _ fs.FileMode) error {
	return &fs.PathError{Op: "mkdir", Path: name, Err: kodimock.ErrPermDenied}
}

// MkdirAll creates a directory named path, along with any necessary parents.
// It always fails with a permission denied error.
func (vfs *RoFS) MkdirAll(path string, _ fs.FileMode) error {
	return &fs.PathError{Op: "mkdir", Path: path, Err: kodimock.ErrPermDenied}
}

// Open opens the named file for reading.
// If there is an error, it will be of type *PathError.
func (vfs *RoFS) Open(name string) (kodimock.File, error) {
	return vfs.OpenFile(name, os.O_RDONLY, 0)
}

// OpenFile is the generalized open call.
// Only read only opening is permitted.
// If there is an error, it will be of type *PathError.
func (vfs *RoFS) OpenFile(name string, flag int, perm fs.FileMode) (kodimock.File, error) {
	if flag&writeFlags != 0 {
		return nil, &fs.PathError{Op: "open", Path: name, Err: kodimock.ErrPermDenied}
	}

	f, err := vfs.baseFS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	return &RoFile{baseFile: f}, nil
}

// PathSeparator return the OS-specific path separator.
func (vfs *RoFS) PathSeparator() uint8 {
	return vfs.baseFS.PathSeparator()
}

// ReadDir reads the named directory, returning all its directory entries sorted by filename.
func (vfs *RoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return vfs.baseFS.ReadDir(name)
}

// Remove removes the named file or (empty) directory.
// It always fails with a permission denied error.
func (vfs *RoFS) Remove(name string) error {
	return &fs.PathError{Op: "remove", Path: name, Err: kodimock.ErrPermDenied}
}

// Rename renames (moves) oldpath to newpath.
// It always fails with a permission denied error.
func (vfs *RoFS) Rename(oldpath, newpath string) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: kodimock.ErrPermDenied}
}

// SameFile reports whether fi1 and fi2 describe the same file.
func (vfs *RoFS) SameFile(fi1, fi2 fs.FileInfo) bool {
	return vfs.baseFS.SameFile(fi1, fi2)
}

// Stat returns a FileInfo describing the named file.
// If there is an error, it will be of type *PathError.
func (vfs *RoFS) Stat(name string) (fs.FileInfo, error) {
	return vfs.baseFS.Stat(name)
}

// SysStat returns the system metadata of the named file.
// If there is an error, it will be of type *PathError.
func (vfs *RoFS) SysStat(name string) (*kodimock.SysStat, error) {
	return vfs.baseFS.SysStat(name)
}
