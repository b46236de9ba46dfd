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

package rofs

import "github.com/rrosajp/kodi-mock"

// New creates a new read only file system (RoFS) from a base file system.
func New(baseFS kodimock.VFS) *RoFS {
	return &RoFS{baseFS: baseFS}
}

// Name returns the name of the fileSystem.
func (vfs *RoFS) Name() string {
	return vfs.baseFS.Name()
}

// Type returns the type of the fileSystem.
func (*RoFS) Type() string {
	return "RoFS"
}
