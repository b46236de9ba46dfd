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

import (
	"io/fs"

	"github.com/rrosajp/kodi-mock"
)

// Close closes the RoFile, rendering it unusable for I/O.
func (f *RoFile) Close() error {
	if f == nil {
		return fs.ErrInvalid
	}

	return f.baseFile.Close()
}

// Name returns the name of the file as presented to Open.
func (f *RoFile) Name() string {
	if f == nil || f.baseFile == nil {
		return ""
	}

	return f.baseFile.Name()
}

// Read reads up to len(b) bytes from the RoFile.
// It returns the number of bytes read and any error encountered.
// At end of file, Read returns 0, io.EOF.
func (f *RoFile) Read(b []byte) (n int, err error) {
	if f == nil {
		return 0, fs.ErrInvalid
	}

	return f.baseFile.Read(b)
}

// Seek sets the offset for the next Read on file to offset, interpreted
// according to whence.
func (f *RoFile) Seek(offset int64, whence int) (ret int64, err error) {
	if f == nil {
		return 0, fs.ErrInvalid
	}

	return f.baseFile.Seek(offset, whence)
}

// Stat returns the FileInfo structure describing file.
// If there is an error, it will be of type *PathError.
func (f *RoFile) Stat() (fs.FileInfo, error) {
	if f == nil {
		return nil, fs.ErrInvalid
	}

	return f.baseFile.Stat()
}

// Sync commits the current contents of the file to stable storage.
func (f *RoFile) Sync() error {
	if f == nil {
		return fs.ErrInvalid
	}

	return f.baseFile.Sync()
}

// Write always fails, the file is opened read only.
func (f *RoFile) Write(_ []byte) (n int, err error) {
	if f == nil {
		return 0, fs.ErrInvalid
	}

	return 0, &fs.PathError{Op: "write", Path: f.Name(), Err: kodimock.ErrBadFileDesc}
}
