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
	"os"

	"github.com/rrosajp/kodi-mock"
)

// OkFunc never fails.
func OkFunc(_ kodimock.VFS, _ kodimock.FnVFS, _ *FailParam) error {
	return nil
}

// ReadOnlyFunc fails for every function modifying the file system.
func ReadOnlyFunc(_ kodimock.VFS, fn kodimock.FnVFS, fp *FailParam) error {
	switch fn {
	case kodimock.FnOpenFile:
		if fp.Flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 {
			return &fs.PathError{Op: fp.Op, Path: fp.Path, Err: kodimock.ErrPermDenied}
		}

		return nil
	case kodimock.FnCreate, kodimock.FnFileWrite, kodimock.FnMkdir, kodimock.FnMkdirAll, kodimock.FnRemove:
		return &fs.PathError{Op: fp.Op, Path: fp.Path, Err: kodimock.ErrPermDenied}
	case kodimock.FnRename:
		return &os.LinkError{Op: fp.Op, Old: fp.Path, New: fp.NewPath, Err: kodimock.ErrPermDenied}
	default:
		return nil
	}
}

// CrossDeviceFunc fails renames like a rename between two mounted file systems.
func CrossDeviceFunc(_ kodimock.VFS, fn kodimock.FnVFS, fp *FailParam) error {
	if fn == kodimock.FnRename {
		return &os.LinkError{Op: fp.Op, Old: fp.Path, New: fp.NewPath, Err: kodimock.ErrCrossDevLink}
	}

	return nil
}

// FailOn returns a FailFunc failing the listed functions with err wrapped as the base file system would.
func FailOn(err error, fns ...kodimock.FnVFS) FailFunc {
	return func(_ kodimock.VFS, fn kodimock.FnVFS, fp *FailParam) error {
		for _, f := range fns {
			if f != fn {
				continue
			}

			if fn == kodimock.FnRename {
				return &os.LinkError{Op: fp.Op, Old: fp.Path, New: fp.NewPath, Err: err}
			}

			return &fs.PathError{Op: fp.Op, Path: fp.Path, Err: err}
		}

		return nil
	}
}
