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

package test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/rrosajp/kodi-mock"
)

// TestFileRead tests File.Read function.
func (sfs *SuiteFS) TestFileRead(t *testing.T, testDir string) {
	vfs := sfs.vfs
	content := []byte("AAABBBCCCDDD")
	path := sfs.CreateFile(t, vfs.Join(testDir, "file"), content)

	t.Run("ReadAll", func(t *testing.T) {
		f, err := vfs.Open(path)
		if err != nil {
			t.Fatalf("Open : want error to be nil, got %v", err)
		}

		defer f.Close()

		buf := make([]byte, 5)

		n, err := f.Read(buf)
		if err != nil || n != 5 || string(buf) != "AAABB" {
			t.Errorf("Read : want 5, AAABB, nil, got %d, %s, %v", n, buf[:n], err)
		}

		rest, err := io.ReadAll(f)
		if err != nil || string(rest) != "BCCCDDD" {
			t.Errorf("ReadAll : want BCCCDDD, nil, got %s, %v", rest, err)
		}

		n, err = f.Read(buf)
		if n != 0 || !errors.Is(err, io.EOF) {
			t.Errorf("Read : want 0, io.EOF, got %d, %v", n, err)
		}
	})

	t.Run("ReadWriteOnly", func(t *testing.T) {
		f, err := vfs.OpenFile(path, os.O_WRONLY, kodimock.DefaultFilePerm)
		if err != nil {
			t.Fatalf("OpenFile : want error to be nil, got %v", err)
		}

		defer f.Close()

		_, err = f.Read(make([]byte, 1))
		AssertPathError(t, err).Op("read").Path(path)
	})
}

// TestFileWrite tests File.Write function.
func (sfs *SuiteFS) TestFileWrite(t *testing.T, testDir string) {
	vfs := sfs.vfs

	t.Run("WriteRead", func(t *testing.T) {
		path := vfs.Join(testDir, "rw")

		f, err := vfs.OpenFile(path, os.O_RDWR|os.O_CREATE, kodimock.DefaultFilePerm)
		if err != nil {
			t.Fatalf("OpenFile : want error to be nil, got %v", err)
		}

		defer f.Close()

		for _, s := range []string{"Hello", ", ", "World"} {
			n, err := f.Write([]byte(s))
			if err != nil || n != len(s) {
				t.Errorf("Write : want %d, nil, got %d, %v", len(s), n, err)
			}
		}

		_, err = f.Seek(0, io.SeekStart)
		if err != nil {
			t.Fatalf("Seek : want error to be nil, got %v", err)
		}

		got, err := io.ReadAll(f)
		if err != nil || string(got) != "Hello, World" {
			t.Errorf("ReadAll : want Hello, World, nil, got %s, %v", got, err)
		}
	})

	t.Run("WriteAfterSeek", func(t *testing.T) {
		path := sfs.CreateFile(t, vfs.Join(testDir, "seek"), []byte("0123456789"))

		f, err := vfs.OpenFile(path, os.O_WRONLY, kodimock.DefaultFilePerm)
		if err != nil {
			t.Fatalf("OpenFile : want error to be nil, got %v", err)
		}

		_, err = f.Seek(8, io.SeekStart)
		if err != nil {
			t.Fatalf("Seek : want error to be nil, got %v", err)
		}

		_, err = f.Write([]byte("ABCD"))
		if err != nil {
			t.Errorf("Write : want error to be nil, got %v", err)
		}

		f.Close()

		if got := sfs.ReadFile(t, path); string(got) != "01234567ABCD" {
			t.Errorf("ReadFile : want 01234567ABCD, got %s", got)
		}
	})

	t.Run("WriteReadOnly", func(t *testing.T) {
		path := sfs.CreateFile(t, vfs.Join(testDir, "ro"), nil)

		f, err := vfs.Open(path)
		if err != nil {
			t.Fatalf("Open : want error to be nil, got %v", err)
		}

		defer f.Close()

		_, err = f.Write([]byte("x"))
		AssertPathError(t, err).Op("write").Path(path)
	})
}

// TestFileSeek tests File.Seek function.
func (sfs *SuiteFS) TestFileSeek(t *testing.T, testDir string) {
	vfs := sfs.vfs
	path := sfs.CreateFile(t, vfs.Join(testDir, "file"), []byte("0123456789"))

	f, err := vfs.Open(path)
	if err != nil {
		t.Fatalf("Open : want error to be nil, got %v", err)
	}

	defer f.Close()

	tests := []struct {
		offset int64
		whence int
		want   int64
	}{
		{offset: 0, whence: io.SeekEnd, want: 10},
		{offset: 3, whence: io.SeekStart, want: 3},
		{offset: 2, whence: io.SeekCurrent, want: 5},
		{offset: -1, whence: io.SeekEnd, want: 9},
		{offset: 20, whence: io.SeekStart, want: 20},
	}

	for _, test := range tests {
		pos, err := f.Seek(test.offset, test.whence)
		if err != nil || pos != test.want {
			t.Errorf("Seek(%d, %d) : want %d, nil, got %d, %v", test.offset, test.whence, test.want, pos, err)
		}
	}

	_, err = f.Seek(-1, io.SeekStart)
	AssertPathError(t, err).Op("seek").Path(path)

	_, err = f.Seek(0, 42)
	AssertPathError(t, err).Op("seek").Path(path)
}

// TestFileClose tests File.Close function.
func (sfs *SuiteFS) TestFileClose(t *testing.T, testDir string) {
	vfs := sfs.vfs
	path := sfs.CreateFile(t, vfs.Join(testDir, "file"), []byte("content"))

	f, err := vfs.Open(path)
	if err != nil {
		t.Fatalf("Open : want error to be nil, got %v", err)
	}

	err = f.Close()
	if err != nil {
		t.Errorf("Close : want error to be nil, got %v", err)
	}

	err = f.Close()
	AssertPathError(t, err).Op("close").Path(path).Is(fs.ErrClosed)

	_, err = f.Read(make([]byte, 1))
	AssertPathError(t, err).Op("read").Path(path).Is(fs.ErrClosed)

	_, err = f.Stat()
	AssertPathError(t, err).Path(path)
}
