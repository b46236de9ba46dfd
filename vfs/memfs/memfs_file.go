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
	"io"
	"io/fs"
	"time"

	"github.com/rrosajp/kodi-mock"
)

// Close closes the File, rendering it unusable for I/O.
// Close will return an error if it has already been called.
func (f *MemFile) Close() error {
	const op = "close"

	if f == nil {
		return fs.ErrInvalid
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return &fs.PathError{Op: op, Path: f.name, Err: fs.ErrClosed}
	}

	f.closed = true

	return nil
}

// Name returns the name of the file as presented to Open.
func (f *MemFile) Name() string {
	return f.name
}

// Read reads up to len(b) bytes from the MemFile.
// It returns the number of bytes read and any error encountered.
// At end of file, Read returns 0, io.EOF.
func (f *MemFile) Read(b []byte) (n int, err error) {
	const op = "read"

	if f == nil {
		return 0, fs.ErrInvalid
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: fs.ErrClosed}
	}

	if !f.readable {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: kodimock.ErrBadFileDesc}
	}

	fn, ok := f.nd.(*fileNode)
	if !ok {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: kodimock.ErrIsADirectory}
	}

	f.vfs.mu.Lock()
	defer f.vfs.mu.Unlock()

	fn.atime = time.Now()

	if f.at >= int64(len(fn.data)) {
		if len(b) == 0 {
			return 0, nil
		}

		return 0, io.EOF
	}

	n = copy(b, fn.data[f.at:])
	f.at += int64(n)

	return n, nil
}

// Seek sets the offset for the next Read or Write on file to offset, interpreted
// according to whence: 0 means relative to the origin of the file, 1 means
// relative to the current offset, and 2 means relative to the end.
// It returns the new offset and an error, if any.
func (f *MemFile) Seek(offset int64, whence int) (ret int64, err error) {
	const op = "seek"

	if f == nil {
		return 0, fs.ErrInvalid
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: fs.ErrClosed}
	}

	f.vfs.mu.RLock()
	size := f.nd.size()
	f.vfs.mu.RUnlock()

	switch whence {
	case io.SeekStart:
		ret = offset
	case io.SeekCurrent:
		ret = f.at + offset
	case io.SeekEnd:
		ret = size + offset
	default:
		return 0, &fs.PathError{Op: op, Path: f.name, Err: kodimock.ErrInvalidArgument}
	}

	if ret < 0 {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: kodimock.ErrInvalidArgument}
	}

	f.at = ret

	return ret, nil
}

// Stat returns the FileInfo structure describing file.
// If there is an error, it will be of type *PathError.
func (f *MemFile) Stat() (fs.FileInfo, error) {
	const op = "stat"

	if f == nil {
		return nil, fs.ErrInvalid
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, &fs.PathError{Op: op, Path: f.name, Err: fs.ErrClosed}
	}

	f.vfs.mu.RLock()
	defer f.vfs.mu.RUnlock()

	return fillStatFrom(f.nd, baseName(f.name)), nil
}

// Sync commits the current contents of the file to stable storage.
// For a memory file system, it only checks that the file is open.
func (f *MemFile) Sync() error {
	const op = "sync"

	if f == nil {
		return fs.ErrInvalid
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return &fs.PathError{Op: op, Path: f.name, Err: fs.ErrClosed}
	}

	return nil
}

// Write writes len(b) bytes to the File.
// It returns the number of bytes written and an error, if any.
// Write returns a non-nil error when n != len(b).
func (f *MemFile) Write(b []byte) (n int, err error) {
	const op = "write"

	if f == nil {
		return 0, fs.ErrInvalid
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: fs.ErrClosed}
	}

	fn, ok := f.nd.(*fileNode)
	if !ok || !f.writable {
		return 0, &fs.PathError{Op: op, Path: f.name, Err: kodimock.ErrBadFileDesc}
	}

	f.vfs.mu.Lock()
	defer f.vfs.mu.Unlock()

	if f.append {
		f.at = int64(len(fn.data))
	}

	end := f.at + int64(len(b))
	if end > int64(len(fn.data)) {
		if end > int64(cap(fn.data)) {
			data := make([]byte, end, 2*end)
			copy(data, fn.data)
			fn.data = data
		} else {
			fn.data = fn.data[:end]
		}
	}

	n = copy(fn.data[f.at:], b)
	f.at += int64(n)
	fn.touch(time.Now())

	return n, nil
}

// IsDir is the abbreviation for Mode().IsDir().
func (info *MemInfo) IsDir() bool {
	return info.mode.IsDir()
}

// Type returns the type bits of the entry.
// The type bits are a subset of the usual FileMode bits, those returned by the FileMode.Type method.
func (info *MemInfo) Type() fs.FileMode {
	return info.mode.Type()
}

// Info returns the FileInfo for the file or subdirectory described by the entry.
func (info *MemInfo) Info() (fs.FileInfo, error) {
	return info, nil
}

// ModTime is the modification time.
func (info *MemInfo) ModTime() time.Time {
	return info.mtime
}

// Mode is the file mode bits.
func (info *MemInfo) Mode() fs.FileMode {
	return info.mode
}

// Name is the base name of the file.
func (info *MemInfo) Name() string {
	return info.name
}

// Size is the length in bytes for regular files.
func (info *MemInfo) Size() int64 {
	return info.size
}

// Sys is the underlying data source.
func (info *MemInfo) Sys() any {
	return info
}
