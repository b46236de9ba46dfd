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

package memfs

import (
	"io/fs"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rrosajp/kodi-mock"
)

// nextId returns the next unique id of a node.
func (vfs *MemFS) nextId() uint64 {
	return atomic.AddUint64(&vfs.lastId, 1)
}

// cleanPath returns the absolute clean form of name.
func cleanPath(name string) string {
	return path.Clean("/" + name)
}

// splitPath returns the elements of the absolute path of name.
// The root directory has no elements.
func splitPath(name string) []string {
	absPath := cleanPath(name)
	if absPath == "/" {
		return nil
	}

	return strings.Split(absPath[1:], "/")
}

// searchNode returns the node of a path.
// The caller must hold vfs.mu.
func (vfs *MemFS) searchNode(name string) (node, error) {
	if name == "" {
		return nil, kodimock.ErrNoSuchFileOrDir
	}

	var nd node = vfs.rootNode

	for _, part := range splitPath(name) {
		dn, ok := nd.(*dirNode)
		if !ok {
			return nil, kodimock.ErrNotADirectory
		}

		child, ok := dn.children[part]
		if !ok {
			return nil, kodimock.ErrNoSuchFileOrDir
		}

		nd = child
	}

	return nd, nil
}

// searchParent returns the parent directory of a path and the last element of the path.
// An empty last element designates the root directory.
// The caller must hold vfs.mu.
func (vfs *MemFS) searchParent(name string) (parent *dirNode, base string, err error) {
	if name == "" {
		return nil, "", kodimock.ErrNoSuchFileOrDir
	}

	parts := splitPath(name)
	if len(parts) == 0 {
		return nil, "", nil
	}

	nd, err := vfs.searchNode("/" + strings.Join(parts[:len(parts)-1], "/"))
	if err != nil {
		return nil, "", err
	}

	parent, ok := nd.(*dirNode)
	if !ok {
		return nil, "", kodimock.ErrNotADirectory
	}

	return parent, parts[len(parts)-1], nil
}

// newDir creates a new directory in parent.
func (vfs *MemFS) newDir(parent *dirNode, base string, perm fs.FileMode) *dirNode {
	now := time.Now()
	dn := &dirNode{
		children: make(children),
		baseNode: baseNode{
			id:    vfs.nextId(),
			mode:  fs.ModeDir | perm&fs.ModePerm,
			atime: now,
			mtime: now,
			ctime: now,
		},
	}

	parent.children[base] = dn
	parent.touch(now)

	return dn
}

// newFile creates a new empty file in parent.
func (vfs *MemFS) newFile(parent *dirNode, base string, perm fs.FileMode) *fileNode {
	now := time.Now()
	fn := &fileNode{
		baseNode: baseNode{
			id:    vfs.nextId(),
			mode:  perm & fs.ModePerm,
			atime: now,
			mtime: now,
			ctime: now,
		},
	}

	parent.children[base] = fn
	parent.touch(now)

	return fn
}

// isInside returns true if the clean absolute path p is dir or one of its descendants.
func isInside(p, dir string) bool {
	return p == dir || strings.HasPrefix(p, dir+"/")
}

// base returns the common attributes of a directory.
func (dn *dirNode) base() *baseNode {
	return &dn.baseNode
}

// size returns the size of a directory.
func (*dirNode) size() int64 {
	return 0
}

// nlink returns the number of links to a directory, "." and the ".." of each subdirectory.
func (dn *dirNode) nlink() uint64 {
	n := uint64(2)

	for _, child := range dn.children {
		if _, ok := child.(*dirNode); ok {
			n++
		}
	}

	return n
}

// base returns the common attributes of a file.
func (fn *fileNode) base() *baseNode {
	return &fn.baseNode
}

// size returns the size of a file.
func (fn *fileNode) size() int64 {
	return int64(len(fn.data))
}

// touch updates the modification and status change times.
func (bn *baseNode) touch(now time.Time) {
	bn.mtime = now
	bn.ctime = now
}

// fillStatFrom returns a *MemInfo (implementation of fs.FileInfo) from a node named name.
func fillStatFrom(nd node, name string) *MemInfo {
	bn := nd.base()

	return &MemInfo{
		name:  name,
		id:    bn.id,
		size:  nd.size(),
		mtime: bn.mtime,
		mode:  bn.mode,
	}
}

// baseName returns the name used in a FileInfo for a path.
func baseName(name string) string {
	return path.Base(cleanPath(name))
}
