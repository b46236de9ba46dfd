//
//  Copyright 2020 The AVFS authors
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

package kodimock

import (
	"io"
	"sync"
)

var copyPool = newCopyPool() //nolint:gochecknoglobals // copyPool is the buffer pool used to copy files.

// newCopyPool initialize the copy buffer pool.
func newCopyPool() *sync.Pool {
	const bufSize = 32 * 1024

	pool := &sync.Pool{New: func() any {
		buf := make([]byte, bufSize)

		return &buf
	}}

	return pool
}

// CopyFile copies the content of a file between file systems and returns an error if any.
// The source is opened before the destination is created, so a missing source leaves
// the destination untouched. Permissions are not copied.
func CopyFile(dstFs, srcFs VFS, dstPath, srcPath string) (err error) {
	src, err := srcFs.Open(srcPath)
	if err != nil {
		return err
	}

	defer src.Close()

	dst, err := dstFs.Create(dstPath)
	if err != nil {
		return err
	}

	defer func() {
		cerr := dst.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = copyBufPool(dst, src)
	if err != nil {
		return err
	}

	return dst.Sync()
}

// ReadFile reads the named file and returns its contents.
func ReadFile(vfs VFS, name string) ([]byte, error) {
	f, err := vfs.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return io.ReadAll(f)
}

// WriteFile writes data to the named file, creating it if necessary.
// If the file does not exist, WriteFile creates it; otherwise WriteFile truncates it before writing.
func WriteFile(vfs VFS, name string, data []byte) error {
	f, err := vfs.Create(name)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}

// copyBufPool copies a source reader to a writer using a buffer from the buffer pool.
func copyBufPool(dst io.Writer, src io.Reader) (written int64, err error) {
	buf := copyPool.Get().(*[]byte) //nolint:errcheck,forcetypeassert // Get() always returns a pointer to a byte slice.
	defer copyPool.Put(buf)

	written, err = io.CopyBuffer(dst, src, *buf)

	return
}
