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

package failfs

import (
	"io/fs"

	"github.com/rrosajp/kodi-mock"
)

// Close closes the File, rendering it unusable for I/O.
func (f *FailFile) Close() error {
	if f == nil {
		return fs.ErrInvalid
	}

	fp := FailParam{Op: "close", Path: f.Name()}

	err := f.vfs.fail(kodimock.FnFileClose, &fp)
	if err != nil {
		return err
	}

	return f.baseFile.Close()
}

// Name returns the name of the file as presented to Open.
func (f *FailFile) Name() string {
	if f.baseFile == nil {
		return ""
	}

	return f.baseFile.Name()
}

// Read reads up to len(b) bytes from the FailFile.
// It returns the number of bytes read and any error encountered.
// At end of file, Read returns 0, io.EOF.
func (f *FailFile) Read(b []byte) (n int, err error) {
	if f == nil {
		return 0, fs.ErrInvalid
	}

	fp := FailParam{Op: "read", Path: f.Name()}

	err = f.vfs.fail(kodimock.FnFileRead, &fp)
	if err != nil {
		return 0, err
	}

	return f.baseFile.Read(b)
}

// Seek sets the offset for the next Read or Write on file to offset, interpreted
// according to whence: 0 means relative to the origin of the file, 1 means
// relative to the current offset, and 2 means relative to the end.
// It returns the new offset and an error, if any.
func (f *FailFile) Seek(offset int64, whence int) (ret int64, err error) {
	if f == nil {
		return 0, fs.ErrInvalid
	}

	fp := FailParam{Op: "seek", Path: f.Name(), Flag: whence}

	err = f.vfs.fail(kodimock.FnFileSeek, &fp)
	if err != nil {
		return 0, err
	}

	return f.baseFile.Seek(offset, whence)
}

// Stat returns the FileInfo structure describing file.
// If there is an error, it will be of type *PathError.
func (f *FailFile) Stat() (fs.FileInfo, error) {
	if f == nil {
		return nil, fs.ErrInvalid
	}

	fp := FailParam{Op: "stat", Path: f.Name()}

	err := f.vfs.fail(kodimock.FnFileStat, &fp)
	if err != nil {
		return nil, err
	}

	return f.baseFile.Stat()
}

// Sync commits the current contents of the file to stable storage.
func (f *FailFile) Sync() error {
	if f == nil {
		return fs.ErrInvalid
	}

	fp := FailParam{Op: "sync", Path: f.Name()}

	err := f.vfs.fail(kodimock.FnFileSync, &fp)
	if err != nil {
		return err
	}

	return f.baseFile.Sync()
}

// Write writes len(b) bytes to the File.
// It returns the number of bytes written and an error, if any.
// Write returns a non-nil error when n != len(b).
func (f *FailFile) Write(b []byte) (n int, err error) {
	if f == nil {
		return 0, fs.ErrInvalid
	}

	fp := FailParam{Op: "write", Path: f.Name()}

	err = f.vfs.fail(kodimock.FnFileWrite, &fp)
	if err != nil {
		return 0, err
	}

	return f.baseFile.Write(b)
}
