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

// Package failfs implements a file system wrapper failing on demand.
// It is used to test how callers react to errors of the underlying file system.
package failfs

import (
	"io/fs"
	"os"

	"github.com/rrosajp/kodi-mock"
)

// Create creates or truncates the named file.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) Create(name string) (kodimock.File, error) {
	fp := FailParam{Op: "open", Path: name, Flag: os.O_RDWR | os.O_CREATE | os.O_TRUNC, Perm: kodimock.DefaultFilePerm}

	err := vfs.fail(kodimock.FnCreate, &fp)
	if err != nil {
		return nil, err
	}

	return vfs.wrapFile(vfs.baseFS.Create(name))
}

// Join joins any number of path elements into a single path.
func (vfs *FailFS) Join(elem ...string) string {
	return vfs.baseFS.Join(elem...)
}

// Lstat returns a FileInfo describing the named file.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) Lstat(name string) (fs.FileInfo, error) {
	fp := FailParam{Op: "lstat", Path: name}

	err := vfs.fail(kodimock.FnLstat, &fp)
	if err != nil {
		return nil, err
	}

	return vfs.baseFS.Lstat(name)
}

// Mkdir creates a new directory with the specified name and permission bits.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) Mkdir(name string, perm fs.FileMode) error {
	fp := FailParam{Op: "mkdir", Path: name, Perm: perm}

	err := vfs.fail(kodimock.FnMkdir, &fp)
	if err != nil {
		return err
	}

	return vfs.baseFS.Mkdir(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (vfs *FailFS) MkdirAll(path string, perm fs.FileMode) error {
	fp := FailParam{Op: "mkdir", Path: path, Perm: perm}

	err := vfs.fail(kodimock.FnMkdirAll, &fp)
	if err != nil {
		return err
	}

	return vfs.baseFS.MkdirAll(path, perm)
}

// Open opens the named file for reading.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) Open(name string) (kodimock.File, error) {
	return vfs.OpenFile(name, os.O_RDONLY, 0)
}

// OpenFile is the generalized open call.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) OpenFile(name string, flag int, perm fs.FileMode) (kodimock.File, error) {
	fp := FailParam{Op: "open", Path: name, Flag: flag, Perm: perm}

	err := vfs.fail(kodimock.FnOpenFile, &fp)
	if err != nil {
		return nil, err
	}

	return vfs.wrapFile(vfs.baseFS.OpenFile(name, flag, perm))
}

// PathSeparator return the OS-specific path separator.
func (vfs *FailFS) PathSeparator() uint8 {
	return vfs.baseFS.PathSeparator()
}

// ReadDir reads the named directory, returning all its directory entries sorted by filename.
func (vfs *FailFS) ReadDir(name string) ([]fs.DirEntry, error) {
	fp := FailParam{Op: "open", Path: name}

	err := vfs.fail(kodimock.FnReadDir, &fp)
	if err != nil {
		return nil, err
	}

	return vfs.baseFS.ReadDir(name)
}

// Remove removes the named file or (empty) directory.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) Remove(name string) error {
	fp := FailParam{Op: "remove", Path: name}

	err := vfs.fail(kodimock.FnRemove, &fp)
	if err != nil {
		return err
	}

	return vfs.baseFS.Remove(name)
}

// Rename renames (moves) oldpath to newpath.
// If there is an error, it will be of type *LinkError.
func (vfs *FailFS) Rename(oldpath, newpath string) error {
	fp := FailParam{Op: "rename", Path: oldpath, NewPath: newpath}

	err := vfs.fail(kodimock.FnRename, &fp)
	if err != nil {
		return err
	}

	return vfs.baseFS.Rename(oldpath, newpath)
}

// SameFile reports whether fi1 and fi2 describe the same file.
func (vfs *FailFS) SameFile(fi1, fi2 fs.FileInfo) bool {
	return vfs.baseFS.SameFile(fi1, fi2)
}

// Stat returns a FileInfo describing the named file.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) Stat(name string) (fs.FileInfo, error) {
	fp := FailParam{Op: "stat", Path: name}

	err := vfs.fail(kodimock.FnStat, &fp)
	if err != nil {
		return nil, err
	}

	return vfs.baseFS.Stat(name)
}

// SysStat returns the system metadata of the named file.
// If there is an error, it will be of type *PathError.
func (vfs *FailFS) SysStat(name string) (*kodimock.SysStat, error) {
	fp := FailParam{Op: "stat", Path: name}

	err := vfs.fail(kodimock.FnSysStat, &fp)
	if err != nil {
		return nil, err
	}

	return vfs.baseFS.SysStat(name)
}

// wrapFile wraps a file of the base file system.
func (vfs *FailFS) wrapFile(baseFile kodimock.File, err error) (kodimock.File, error) {
	if err != nil {
		return nil, err
	}

	return &FailFile{baseFile: baseFile, vfs: vfs}, nil
}
