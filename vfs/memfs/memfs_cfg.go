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
	"sync/atomic"
	"time"
)

// lastDev is the last device number given to a MemFS.
var lastDev uint64 //nolint:gochecknoglobals // lastDev is only accessed atomically.

// New returns a new memory file system (MemFS).
func New(opts ...Option) *MemFS {
	now := time.Now()

	vfs := &MemFS{
		dev: atomic.AddUint64(&lastDev, 1),
	}

	vfs.rootNode = &dirNode{
		children: make(children),
		baseNode: baseNode{
			id:    vfs.nextId(),
			mode:  fs.ModeDir | 0o755,
			atime: now,
			mtime: now,
			ctime: now,
		},
	}

	for _, opt := range opts {
		opt(vfs)
	}

	return vfs
}

// Name returns the name of the fileSystem.
func (vfs *MemFS) Name() string {
	return vfs.name
}

// Type returns the type of the fileSystem.
func (*MemFS) Type() string {
	return "MemFS"
}

// Options

// WithName returns an option function which sets the name of the file system.
func WithName(name string) Option {
	return func(vfs *MemFS) {
		vfs.name = name
	}
}

// WithOwner returns an option function which sets the user and group ids
// reported for every file of the file system.
func WithOwner(uid, gid uint32) Option {
	return func(vfs *MemFS) {
		vfs.uid = uid
		vfs.gid = gid
	}
}
