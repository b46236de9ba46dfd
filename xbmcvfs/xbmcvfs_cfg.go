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
	"log/slog"

	"github.com/rrosajp/kodi-mock"
	"github.com/rrosajp/kodi-mock/vfs/osfs"
)

// New returns a new FS translating special paths with the roots of env.
// Without WithVFS the host file system (osfs) is used.
func New(env kodimock.Environment, opts ...Option) *FS {
	fsys := &FS{
		env:    env,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(fsys)
	}

	if fsys.vfs == nil {
		fsys.vfs = osfs.New(osfs.WithLogger(fsys.logger))
	}

	return fsys
}

// VFS returns the file system used by fsys.
func (fsys *FS) VFS() kodimock.VFS {
	return fsys.vfs
}

// Options

// WithVFS returns an option function which sets the file system used for all operations.
func WithVFS(vfs kodimock.VFS) Option {
	return func(fsys *FS) {
		fsys.vfs = vfs
	}
}

// WithLogger returns an option function which sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(fsys *FS) {
		fsys.logger = logger
	}
}
