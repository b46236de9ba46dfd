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

// Package xbmcvfs mocks the Kodi xbmcvfs module: access to files and folders
// through the virtual file system, special paths included.
//
// Functions with a boolean contract in Kodi return a kodimock.Result:
// failures are never returned as errors, the reason is kept in the Result and logged at debug level.
package xbmcvfs

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/rrosajp/kodi-mock"
)

// TranslatePath returns the real path of a special path (special://masterprofile/script_data).
// The result is not cleaned, special://profile/addon_data/ keeps its trailing separator.
// Other paths are returned unmodified.
// If the root name is unknown, the returned error is of type *kodimock.SpecialPathError.
func (fsys *FS) TranslatePath(path string) (string, error) {
	return kodimock.TranslateSpecialPath(fsys.env, fsys.vfs.PathSeparator(), path)
}

// Copy copies the content of a file to destination.
func (fsys *FS) Copy(source, destination string) kodimock.Result {
	const op = "copy"

	vfs := fsys.vfs

	src, err := fsys.TranslatePath(source)
	if err != nil {
		return fsys.fail(op, err)
	}

	dst, err := fsys.TranslatePath(destination)
	if err != nil {
		return fsys.fail(op, err)
	}

	srcInfo, err := vfs.Stat(src)
	if err != nil {
		return fsys.fail(op, err)
	}

	if srcInfo.IsDir() {
		return fsys.fail(op, &fs.PathError{Op: op, Path: src, Err: kodimock.ErrIsADirectory})
	}

	if dstInfo, err := vfs.Stat(dst); err == nil && vfs.SameFile(srcInfo, dstInfo) {
		return fsys.fail(op, &os.LinkError{Op: op, Old: src, New: dst, Err: ErrSameFile})
	}

	err = kodimock.CopyFile(vfs, vfs, dst, src)
	if err != nil {
		return fsys.fail(op, err)
	}

	return kodimock.Ok
}

// DeleteFile deletes a file. Directories are never deleted.
func (fsys *FS) DeleteFile(file string) kodimock.Result {
	const op = "remove"

	name, err := fsys.TranslatePath(file)
	if err != nil {
		return fsys.fail(op, err)
	}

	info, err := fsys.vfs.Lstat(name)
	if err != nil {
		return fsys.fail(op, err)
	}

	if info.IsDir() {
		return fsys.fail(op, &fs.PathError{Op: op, Path: name, Err: kodimock.ErrIsADirectory})
	}

	return fsys.result(op, fsys.vfs.Remove(name))
}

// Exists returns true if a file or a directory exists.
func (fsys *FS) Exists(path string) bool {
	name, err := fsys.TranslatePath(path)
	if err != nil {
		return false
	}

	_, err = fsys.vfs.Stat(name)

	return err == nil
}

// ListDir lists the content of a directory.
// Regular files (symbolic links being followed) are returned in files,
// everything else in dirs.
func (fsys *FS) ListDir(path string) (dirs, files []string, err error) {
	vfs := fsys.vfs

	name, err := fsys.TranslatePath(path)
	if err != nil {
		return nil, nil, err
	}

	entries, err := vfs.ReadDir(name)
	if err != nil {
		return nil, nil, err
	}

	dirs = make([]string, 0, len(entries))
	files = make([]string, 0, len(entries))

	for _, entry := range entries {
		info, err := vfs.Stat(vfs.Join(name, entry.Name()))
		if err == nil && info.Mode().IsRegular() {
			files = append(files, entry.Name())

			continue
		}

		dirs = append(dirs, entry.Name())
	}

	return dirs, files, nil
}

// Mkdir creates a directory.
func (fsys *FS) Mkdir(path string) kodimock.Result {
	const op = "mkdir"

	name, err := fsys.TranslatePath(path)
	if err != nil {
		return fsys.fail(op, err)
	}

	return fsys.result(op, fsys.vfs.Mkdir(name, kodimock.DefaultDirPerm))
}

// Mkdirs creates a directory and all its missing parents.
// It fails if the directory already exists.
func (fsys *FS) Mkdirs(path string) kodimock.Result {
	const op = "mkdir"

	name, err := fsys.TranslatePath(path)
	if err != nil {
		return fsys.fail(op, err)
	}

	if _, err = fsys.vfs.Lstat(name); err == nil {
		return fsys.fail(op, &fs.PathError{Op: op, Path: name, Err: kodimock.ErrFileExists})
	}

	return fsys.result(op, fsys.vfs.MkdirAll(name, kodimock.DefaultDirPerm))
}

// Rename renames a file or a directory.
// Moving files between different file systems is not possible on all platforms,
// Copy and DeleteFile can be used instead.
func (fsys *FS) Rename(file, newFile string) kodimock.Result {
	const op = "rename"

	oldName, err := fsys.TranslatePath(file)
	if err != nil {
		return fsys.fail(op, err)
	}

	newName, err := fsys.TranslatePath(newFile)
	if err != nil {
		return fsys.fail(op, err)
	}

	return fsys.result(op, fsys.vfs.Rename(oldName, newName))
}

// Rmdir removes an empty directory.
func (fsys *FS) Rmdir(path string) kodimock.Result {
	const op = "rmdir"

	name, err := fsys.TranslatePath(path)
	if err != nil {
		return fsys.fail(op, err)
	}

	info, err := fsys.vfs.Lstat(name)
	if err != nil {
		return fsys.fail(op, err)
	}

	if !info.IsDir() {
		return fsys.fail(op, &fs.PathError{Op: op, Path: name, Err: kodimock.ErrNotADirectory})
	}

	return fsys.result(op, fsys.vfs.Remove(name))
}

// result converts the error of an operation to a Result.
func (fsys *FS) result(op string, err error) kodimock.Result {
	if err != nil {
		return fsys.fail(op, err)
	}

	return kodimock.Ok
}

// fail logs the reason of a failed operation and returns a failed Result.
func (fsys *FS) fail(op string, err error) kodimock.Result {
	fsys.logger.Debug("xbmcvfs operation failed", slog.String("op", op), slog.Any("error", err))

	return kodimock.Fail(err)
}
