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
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/rrosajp/kodi-mock"
)

// Open opens a file.
// The mode follows the conventions of the Python open function:
// one of "r" (read, the default), "w" (truncate or create), "a" (append or create), "x" (create),
// optionally followed by "+" (read and write) and "b" or "t" (ignored).
// If the mode is not valid, the returned error is of type InvalidModeError.
// Opening a directory fails with kodimock.ErrIsADirectory.
func (fsys *FS) Open(filepath, mode string) (*File, error) {
	flag, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	name, err := fsys.TranslatePath(filepath)
	if err != nil {
		return nil, err
	}

	f, err := fsys.vfs.OpenFile(name, flag, kodimock.DefaultFilePerm)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	if info.IsDir() {
		_ = f.Close()

		return nil, &fs.PathError{Op: "open", Path: name, Err: kodimock.ErrIsADirectory}
	}

	return &File{
		file:   f,
		vfs:    fsys.vfs,
		path:   name,
		logger: fsys.logger,
	}, nil
}

// parseMode converts a Python open mode to os.OpenFile flags.
func parseMode(mode string) (int, error) {
	if mode == "" {
		return os.O_RDONLY, nil
	}

	var (
		access, flag int
		nbMain       int
		plus, kind   bool
	)

	for _, c := range mode {
		switch c {
		case 'r':
			nbMain++
			access = os.O_RDONLY
		case 'w':
			nbMain++
			access = os.O_WRONLY
			flag = os.O_CREATE | os.O_TRUNC
		case 'a':
			nbMain++
			access = os.O_WRONLY
			flag = os.O_CREATE | os.O_APPEND
		case 'x':
			nbMain++
			access = os.O_WRONLY
			flag = os.O_CREATE | os.O_EXCL
		case '+':
			if plus {
				return 0, InvalidModeError(mode)
			}

			plus = true
		case 'b', 't':
			if kind {
				return 0, InvalidModeError(mode)
			}

			kind = true
		default:
			return 0, InvalidModeError(mode)
		}
	}

	if nbMain != 1 {
		return 0, InvalidModeError(mode)
	}

	if plus {
		access = os.O_RDWR
	}

	return access | flag, nil
}

// Close closes the file. Closing an already closed file does nothing.
func (f *File) Close() error {
	if f.closed {
		return nil
	}

	f.closed = true

	return f.file.Close()
}

// Name returns the real path of the file.
func (f *File) Name() string {
	return f.path
}

// Read reads the file from the current position to its end.
//
// numBytes is ignored: the whole remaining content is always returned.
func (f *File) Read(numBytes int) (string, error) {
	b, err := f.ReadBytes(numBytes)

	return string(b), err
}

// ReadBytes reads the file from the current position to its end.
//
// numBytes is ignored: the whole remaining content is always returned.
func (f *File) ReadBytes(_ int) ([]byte, error) {
	const op = "read"

	if f.closed {
		return nil, &fs.PathError{Op: op, Path: f.path, Err: fs.ErrClosed}
	}

	return io.ReadAll(f.file)
}

// Seek sets the position in the file.
// whence is 0 for the beginning of the file, 1 for the current position and 2 for the end.
// It returns the new position.
func (f *File) Seek(seekBytes int64, whence int) (int64, error) {
	const op = "seek"

	if f.closed {
		return 0, &fs.PathError{Op: op, Path: f.path, Err: fs.ErrClosed}
	}

	if whence < io.SeekStart || whence > io.SeekEnd {
		return 0, &fs.PathError{Op: op, Path: f.path, Err: kodimock.ErrInvalidArgument}
	}

	return f.file.Seek(seekBytes, whence)
}

// Size returns the current size of the file.
// The path is stated again on each call.
func (f *File) Size() (int64, error) {
	info, err := f.vfs.Stat(f.path)
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}

// Write writes buffer to the file.
func (f *File) Write(buffer []byte) kodimock.Result {
	const op = "write"

	if f.closed {
		return f.fail(&fs.PathError{Op: op, Path: f.path, Err: fs.ErrClosed})
	}

	_, err := f.file.Write(buffer)
	if err != nil {
		return f.fail(err)
	}

	return kodimock.Ok
}

// WriteString writes s to the file.
func (f *File) WriteString(s string) kodimock.Result {
	return f.Write([]byte(s))
}

func (f *File) fail(err error) kodimock.Result {
	f.logger.Debug("xbmcvfs write failed", slog.String("path", f.path), slog.Any("error", err))

	return kodimock.Fail(err)
}

// String returns the real path and the state of the file.
func (f *File) String() string {
	if f.closed {
		return f.path + " (closed)"
	}

	return f.path
}
