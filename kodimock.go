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

// Package kodimock defines the interfaces, data types and errors shared by the
// mock Kodi addon modules (xbmcaddon, xbmcvfs) and the file systems they run on.
package kodimock

import (
	"io"
	"io/fs"
	"time"
)

const (
	DefaultDirPerm  = fs.FileMode(0o777) // DefaultDirPerm is the default permission for directories.
	DefaultFilePerm = fs.FileMode(0o666) // DefaultFilePerm is the default permission for files.

	// SpecialScheme is the prefix of Kodi virtual paths (special://<root>/<rest>).
	SpecialScheme = "special://"
)

// AddonData is the record of an installed addon.
// It is owned by the addon registry, accessors keep a pointer to it.
type AddonData struct {
	// ID is the identifier of the addon as specified in addon.xml.
	ID string

	// Info contains the informational properties (author, version, path, ...).
	Info map[string]string

	// Strings maps localization ids to localized strings.
	Strings map[int]string

	// Settings maps setting ids to their textual values.
	Settings map[string]string
}

// NewAddonData returns an empty addon record with initialized maps.
func NewAddonData(id string) *AddonData {
	return &AddonData{
		ID:       id,
		Info:     make(map[string]string),
		Strings:  make(map[int]string),
		Settings: make(map[string]string),
	}
}

// Environment is the collaborator consumed by the addon and VFS accessors.
// It supplies what the host application would otherwise provide.
type Environment interface {
	// PluginID returns the identifier of the currently active addon.
	PluginID() string

	// Addon returns the record of an installed addon.
	Addon(id string) (*AddonData, bool)

	// SpecialRoot returns the real directory of a special root name (ie "masterprofile").
	SpecialRoot(name string) (string, bool)
}

// Namer is the interface that wraps the Name method.
type Namer interface {
	// Name returns the name of the file system.
	Name() string
}

// Typer is the interface that wraps the Type method.
type Typer interface {
	// Type returns the type of the file system.
	Type() string
}

// VFS is the virtual file system interface used by the xbmcvfs accessor.
// Errors follow the conventions of the os package: *fs.PathError or *os.LinkError.
type VFS interface {
	Namer
	Typer

	// Create creates or truncates the named file. If the file already exists,
	// it is truncated. If the file does not exist, it is created with mode 0666
	// (before umask). If successful, methods on the returned File can
	// be used for I/O; the associated file descriptor has mode O_RDWR.
	// If there is an error, it will be of type *PathError.
	Create(name string) (File, error)

	// Join joins any number of path elements into a single path, adding a
	// separator if necessary. Join calls Clean on the result; in particular,
	// all empty strings are ignored.
	Join(elem ...string) string

	// Lstat returns a FileInfo describing the named file.
	// If the file is a symbolic link, the returned FileInfo
	// describes the symbolic link. Lstat makes no attempt to follow the link.
	// If there is an error, it will be of type *PathError.
	Lstat(name string) (fs.FileInfo, error)

	// Mkdir creates a new directory with the specified name and permission
	// bits (before umask).
	// If there is an error, it will be of type *PathError.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory named path,
	// along with any necessary parents, and returns nil,
	// or else returns an error.
	// If path is already a directory, MkdirAll does nothing
	// and returns nil.
	MkdirAll(path string, perm fs.FileMode) error

	// Open opens the named file for reading.
	// If there is an error, it will be of type *PathError.
	Open(name string) (File, error)

	// OpenFile is the generalized open call; most users will use Open
	// or Create instead. It opens the named file with specified flag
	// (O_RDONLY etc.). If the file does not exist, and the O_CREATE flag
	// is passed, it is created with mode perm (before umask).
	// If there is an error, it will be of type *PathError.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// PathSeparator return the OS-specific path separator.
	PathSeparator() uint8

	// ReadDir reads the named directory,
	// returning all its directory entries sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Remove removes the named file or (empty) directory.
	// If there is an error, it will be of type *PathError.
	Remove(name string) error

	// Rename renames (moves) oldpath to newpath.
	// If newpath already exists and is not a directory, Rename replaces it.
	// If there is an error, it will be of type *LinkError.
	Rename(oldpath, newpath string) error

	// SameFile reports whether fi1 and fi2 describe the same file.
	SameFile(fi1, fi2 fs.FileInfo) bool

	// Stat returns a FileInfo describing the named file.
	// If there is an error, it will be of type *PathError.
	Stat(name string) (fs.FileInfo, error)

	// SysStat returns the system metadata of the named file, following symbolic links.
	// If there is an error, it will be of type *PathError.
	SysStat(name string) (*SysStat, error)
}

// File represents a file in the virtual file system.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name of the file as presented to Open.
	Name() string

	// Stat returns the FileInfo structure describing file.
	// If there is an error, it will be of type *PathError.
	Stat() (fs.FileInfo, error)

	// Sync commits the current contents of the file to stable storage.
	Sync() error
}

// SysStat is a snapshot of the system metadata of a file, as returned by stat(2).
type SysStat struct {
	Atime time.Time // Atime is the time of last access.
	Ctime time.Time // Ctime is the time of last status change.
	Mtime time.Time // Mtime is the time of last modification.
	Dev   uint64    // Dev is the ID of the device containing the file.
	Ino   uint64    // Ino is the inode number.
	Nlink uint64    // Nlink is the number of hard links.
	Size  int64     // Size is the total size in bytes.
	Mode  uint32    // Mode is the file type and mode in the unix st_mode encoding.
	Uid   uint32    // Uid is the user ID of the owner.
	Gid   uint32    // Gid is the group ID of the owner.
}
