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
	"sync"
	"time"
)

// MemFS implements a memory file system using the kodimock.VFS interface.
// Paths use the slash separator, relative paths are resolved from the root directory.
// Symbolic and hard links are not supported.
type MemFS struct {
	rootNode *dirNode     // rootNode represent the root directory of the file system.
	name     string       // name is the name of the file system.
	lastId   uint64       // lastId is the last unique id used to identify files uniquely.
	dev      uint64       // dev is the device number reported by SysStat.
	uid      uint32       // uid is the owner of the files created.
	gid      uint32       // gid is the group of the files created.
	mu       sync.RWMutex // mu guards the tree and the content of files.
}

// MemFile represents an open file descriptor.
type MemFile struct {
	nd       node       // nd is node of the file.
	vfs      *MemFS     // vfs is the memory file system of the file.
	name     string     // name is the name of the file.
	at       int64      // at is current position in the file used by Read and Write functions.
	mu       sync.Mutex // mu is the Mutex used to access content of MemFile.
	readable bool       // readable is true if the file was opened for reading.
	writable bool       // writable is true if the file was opened for writing.
	append   bool       // append is true if the file was opened with O_APPEND.
	closed   bool       // closed is true after Close.
}

// Option defines the option function used for initializing MemFS.
type Option func(*MemFS)

// node is the interface implemented by dirNode and fileNode.
type node interface {
	// base returns the common attributes of the node.
	base() *baseNode

	// size returns the size of the node.
	size() int64
}

// dirNode is the structure for a directory.
type dirNode struct {
	children children // children are the nodes present in the directory.
	baseNode          // baseNode is the common structure of directories and files.
}

// children are the children of a directory.
type children = map[string]node

// fileNode is the structure for a file.
type fileNode struct {
	data     []byte // data is the file content.
	baseNode        // baseNode is the common structure of directories and files.
}

// baseNode is the common structure of directories and files.
type baseNode struct {
	id    uint64      // id is a unique id to identify a file (used by SameFile and SysStat functions).
	mode  fs.FileMode // mode represents a file's mode and permission bits.
	atime time.Time   // atime is the last access time.
	mtime time.Time   // mtime is the modification time.
	ctime time.Time   // ctime is the last status change time.
}

// MemInfo is the implementation of fs.DirEntry (returned by ReadDir) and fs.FileInfo (returned by Stat and Lstat).
type MemInfo struct {
	name  string      // name is the name of the file.
	id    uint64      // id is a unique id to identify a file (used by SameFile function).
	size  int64       // size is the size of the file.
	mtime time.Time   // mtime is the modification time.
	mode  fs.FileMode // mode represents a file's mode and permission bits.
}
