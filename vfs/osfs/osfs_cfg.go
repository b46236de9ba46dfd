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

package osfs

import "log/slog"

// OsFS implements a file system using functions from os and path/filepath packages.
type OsFS struct {
	name   string       // name is the name of the file system.
	logger *slog.Logger // logger receives debug messages.
}

// Option defines the option function used for initializing OsFS.
type Option func(*OsFS)

// New returns a new OsFS file system.
func New(opts ...Option) *OsFS {
	vfs := &OsFS{logger: slog.Default()}

	for _, opt := range opts {
		opt(vfs)
	}

	return vfs
}

// Name returns the name of the fileSystem.
func (vfs *OsFS) Name() string {
	return vfs.name
}

// Type returns the type of the fileSystem.
func (*OsFS) Type() string {
	return "OsFS"
}

// Options

// WithName returns an option function which sets the name of the file system.
func WithName(name string) Option {
	return func(vfs *OsFS) {
		vfs.name = name
	}
}

// WithLogger returns an option function which sets the logger of the file system.
func WithLogger(logger *slog.Logger) Option {
	return func(vfs *OsFS) {
		vfs.logger = logger
	}
}
