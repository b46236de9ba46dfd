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

// Package memfs implements an in memory file system.
//
// It is used to run addon code against a hermetic file system in tests.
package memfs

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"time"

	"github.com/rrosajp/kodi-mock"
)

// Create creates or truncates the named file. If the file already exists,
// it is truncated. If the file does not exist, it is created with mode 0666.
// If successful, methods on the returned File can
// be used for I/O; the associated file descriptor has mode O_RDWR.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Create(name string) (kodimock.File, error) {
	return vfs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, kodimock.DefaultFilePerm)
}

// Join joins any number of path elements into a single path, adding a
// separator if necessary. Join calls Clean on the result; in particular,
// all empty strings are ignored.
func (*MemFS) Join(elem ...string) string {
	return path.Join(elem...)
}

// Lstat returns a FileInfo describing the named file.
// MemFS has no symbolic links, Lstat is the same as Stat.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Lstat(name string) (fs.FileInfo, error) {
	const op = "lstat"

	return vfs.stat(op, name)
}

// Mkdir creates a new directory with the specified name and permission
// bits.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Mkdir(name string, perm fs.FileMode) error {
	const op = "mkdir"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	parent, base, err := vfs.searchParent(name)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	if parent == nil {
		return &fs.PathError{Op: op, Path: name, Err: kodimock.ErrFileExists}
	}

	if _, ok := parent.children[base]; ok {
		return &fs.PathError{Op: op, Path: name, Err: kodimock.ErrFileExists}
	}

	vfs.newDir(parent, base, perm)

	return nil
}

// MkdirAll creates a directory named path,
// along with any necessary parents, and returns nil,
// or else returns an error.
// The permission bits perm are used for all
// directories that MkdirAll creates.
// If path is already a directory, MkdirAll does nothing
// and returns nil.
func (vfs *MemFS) MkdirAll(path string, perm fs.FileMode) error {
	const op = "mkdir"

	if path == "" {
		return &fs.PathError{Op: op, Path: path, Err: kodimock.ErrNoSuchFileOrDir}
	}

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	dn := vfs.rootNode
	curPath := ""

	for _, part := range splitPath(path) {
		curPath += "/" + part

		child, ok := dn.children[part]
		if !ok {
			dn = vfs.newDir(dn, part, perm)

			continue
		}

		cdn, ok := child.(*dirNode)
		if !ok {
			return &fs.PathError{Op: op, Path: curPath, Err: kodimock.ErrNotADirectory}
		}

		dn = cdn
	}

	return nil
}

// Open opens the named file for reading. If successful, methods on
// the returned file can be used for reading; the associated file
// descriptor has mode O_RDONLY.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Open(name string) (kodimock.File, error) {
	return vfs.OpenFile(name, os.O_RDONLY, 0)
}

// OpenFile is the generalized open call; most users will use Open
// or Create instead. It opens the named file with specified flag
// (O_RDONLY etc.). If the file does not exist, and the O_CREATE flag
// is passed, it is created with mode perm. If successful,
// methods on the returned File can be used for I/O.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) OpenFile(name string, flag int, perm fs.FileMode) (kodimock.File, error) {
	const op = "open"

	f := &MemFile{
		vfs:      vfs,
		name:     name,
		readable: flag&os.O_WRONLY == 0,
		writable: flag&(os.O_WRONLY|os.O_RDWR) != 0,
		append:   flag&os.O_APPEND != 0,
	}

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	parent, base, err := vfs.searchParent(name)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	var nd node = vfs.rootNode
	if parent != nil {
		child, ok := parent.children[base]
		if !ok {
			if flag&os.O_CREATE == 0 {
				return nil, &fs.PathError{Op: op, Path: name, Err: kodimock.ErrNoSuchFileOrDir}
			}

			f.nd = vfs.newFile(parent, base, perm)

			return f, nil
		}

		nd = child
	}

	if flag&(os.O_CREATE|os.O_EXCL) == os.O_CREATE|os.O_EXCL {
		return nil, &fs.PathError{Op: op, Path: name, Err: kodimock.ErrFileExists}
	}

	switch n := nd.(type) {
	case *dirNode:
		if f.writable {
			return nil, &fs.PathError{Op: op, Path: name, Err: kodimock.ErrIsADirectory}
		}
	case *fileNode:
		if f.writable && flag&os.O_TRUNC != 0 {
			n.data = nil
			n.touch(time.Now())
		}
	}

	f.nd = nd

	return f, nil
}

// PathSeparator return the OS-specific path separator.
func (*MemFS) PathSeparator() uint8 {
	return '/'
}

// ReadDir reads the named directory,
// returning all its directory entries sorted by filename.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) ReadDir(name string) ([]fs.DirEntry, error) {
	const op = "open"

	vfs.mu.RLock()
	defer vfs.mu.RUnlock()

	nd, err := vfs.searchNode(name)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	dn, ok := nd.(*dirNode)
	if !ok {
		return nil, &fs.PathError{Op: "readdirent", Path: name, Err: kodimock.ErrNotADirectory}
	}

	entries := make([]fs.DirEntry, 0, len(dn.children))
	for childName, child := range dn.children {
		entries = append(entries, fillStatFrom(child, childName))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return entries, nil
}

// Remove removes the named file or (empty) directory.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Remove(name string) error {
	const op = "remove"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	parent, base, err := vfs.searchParent(name)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: err}
	}

	if parent == nil {
		return &fs.PathError{Op: op, Path: name, Err: kodimock.ErrBusy}
	}

	child, ok := parent.children[base]
	if !ok {
		return &fs.PathError{Op: op, Path: name, Err: kodimock.ErrNoSuchFileOrDir}
	}

	if dn, ok := child.(*dirNode); ok && len(dn.children) != 0 {
		return &fs.PathError{Op: op, Path: name, Err: kodimock.ErrDirNotEmpty}
	}

	delete(parent.children, base)
	parent.touch(time.Now())

	return nil
}

// Rename renames (moves) oldpath to newpath.
// If newpath already exists and is not a directory, Rename replaces it.
// An existing empty directory can be replaced by a directory.
// If there is an error, it will be of type *LinkError.
func (vfs *MemFS) Rename(oldpath, newpath string) error {
	const op = "rename"

	vfs.mu.Lock()
	defer vfs.mu.Unlock()

	oldParent, oldBase, err := vfs.searchParent(oldpath)
	if err != nil {
		return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: err}
	}

	if oldParent == nil {
		return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: kodimock.ErrBusy}
	}

	src, ok := oldParent.children[oldBase]
	if !ok {
		return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: kodimock.ErrNoSuchFileOrDir}
	}

	newParent, newBase, err := vfs.searchParent(newpath)
	if err != nil {
		return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: err}
	}

	absOld, absNew := cleanPath(oldpath), cleanPath(newpath)
	if absOld == absNew {
		return nil
	}

	_, srcIsDir := src.(*dirNode)
	if newParent == nil || (srcIsDir && isInside(absNew, absOld)) {
		return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: kodimock.ErrInvalidArgument}
	}

	if dst, ok := newParent.children[newBase]; ok {
		dstDir, dstIsDir := dst.(*dirNode)

		switch {
		case dstIsDir && !srcIsDir:
			return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: kodimock.ErrIsADirectory}
		case !dstIsDir && srcIsDir:
			return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: kodimock.ErrNotADirectory}
		case dstIsDir && len(dstDir.children) != 0:
			return &os.LinkError{Op: op, Old: oldpath, New: newpath, Err: kodimock.ErrDirNotEmpty}
		}
	}

	now := time.Now()

	delete(oldParent.children, oldBase)
	oldParent.touch(now)

	newParent.children[newBase] = src
	newParent.touch(now)
	src.base().ctime = now

	return nil
}

// SameFile reports whether fi1 and fi2 describe the same file.
// SameFile only applies to results returned by this package's Stat.
// It returns false in other cases.
func (*MemFS) SameFile(fi1, fi2 fs.FileInfo) bool {
	fs1, ok1 := fi1.(*MemInfo)
	fs2, ok2 := fi2.(*MemInfo)

	if !ok1 || !ok2 || fs1 == nil || fs2 == nil {
		return false
	}

	return fs1.id == fs2.id
}

// Stat returns a FileInfo describing the named file.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) Stat(name string) (fs.FileInfo, error) {
	const op = "stat"

	return vfs.stat(op, name)
}

// SysStat returns the system metadata of the named file.
// If there is an error, it will be of type *PathError.
func (vfs *MemFS) SysStat(name string) (*kodimock.SysStat, error) {
	const op = "stat"

	vfs.mu.RLock()
	defer vfs.mu.RUnlock()

	nd, err := vfs.searchNode(name)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	bn := nd.base()
	nlink := uint64(1)

	if dn, ok := nd.(*dirNode); ok {
		nlink = dn.nlink()
	}

	return &kodimock.SysStat{
		Atime: bn.atime,
		Ctime: bn.ctime,
		Mtime: bn.mtime,
		Dev:   vfs.dev,
		Ino:   bn.id,
		Nlink: nlink,
		Size:  nd.size(),
		Mode:  kodimock.UnixMode(bn.mode),
		Uid:   vfs.uid,
		Gid:   vfs.gid,
	}, nil
}

func (vfs *MemFS) stat(op, name string) (fs.FileInfo, error) {
	vfs.mu.RLock()
	defer vfs.mu.RUnlock()

	nd, err := vfs.searchNode(name)
	if err != nil {
		return nil, &fs.PathError{Op: op, Path: name, Err: err}
	}

	return fillStatFrom(nd, baseName(name)), nil
}
