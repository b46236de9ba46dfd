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
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/rrosajp/kodi-mock"
)

// TestCreate tests Create function.
func (sfs *SuiteFS) TestCreate(t *testing.T, testDir string) {
	vfs := sfs.vfs

	t.Run("CreateNew", func(t *testing.T) {
		path := vfs.Join(testDir, "new")

		f, err := vfs.Create(path)
		if err != nil {
			t.Fatalf("Create : want error to be nil, got %v", err)
		}

		if f.Name() != path {
			t.Errorf("Name : want name to be %s, got %s", path, f.Name())
		}

		_, err = f.Write([]byte("content"))
		if err != nil {
			t.Errorf("Write : want error to be nil, got %v", err)
		}

		err = f.Close()
		if err != nil {
			t.Errorf("Close : want error to be nil, got %v", err)
		}
	})

	t.Run("CreateTruncates", func(t *testing.T) {
		path := sfs.CreateFile(t, vfs.Join(testDir, "trunc"), []byte("some content"))

		f, err := vfs.Create(path)
		if err != nil {
			t.Fatalf("Create : want error to be nil, got %v", err)
		}

		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("Stat : want error to be nil, got %v", err)
		}

		if info.Size() != 0 {
			t.Errorf("Stat : want size to be 0, got %d", info.Size())
		}
	})

	t.Run("CreateMissingParent", func(t *testing.T) {
		path := vfs.Join(testDir, "missing", "file")

		_, err := vfs.Create(path)
		AssertPathError(t, err).Op("open").Path(path).Is(fs.ErrNotExist)
	})
}

// TestMkdir tests Mkdir function.
func (sfs *SuiteFS) TestMkdir(t *testing.T, testDir string) {
	vfs := sfs.vfs
	path := vfs.Join(testDir, "dir")

	err := vfs.Mkdir(path, kodimock.DefaultDirPerm)
	if err != nil {
		t.Fatalf("Mkdir : want error to be nil, got %v", err)
	}

	info, err := vfs.Stat(path)
	if err != nil {
		t.Fatalf("Stat : want error to be nil, got %v", err)
	}

	if !info.IsDir() {
		t.Errorf("Stat : want %s to be a directory", path)
	}

	err = vfs.Mkdir(path, kodimock.DefaultDirPerm)
	AssertPathError(t, err).Op("mkdir").Path(path).Is(fs.ErrExist)

	missing := vfs.Join(testDir, "missing", "dir")

	err = vfs.Mkdir(missing, kodimock.DefaultDirPerm)
	AssertPathError(t, err).Op("mkdir").Path(missing).Is(fs.ErrNotExist)
}

// TestMkdirAll tests MkdirAll function.
func (sfs *SuiteFS) TestMkdirAll(t *testing.T, testDir string) {
	vfs := sfs.vfs
	path := vfs.Join(testDir, "a", "b", "c")

	for i := 0; i < 2; i++ {
		err := vfs.MkdirAll(path, kodimock.DefaultDirPerm)
		if err != nil {
			t.Fatalf("MkdirAll %d : want error to be nil, got %v", i, err)
		}
	}

	for _, dir := range []string{vfs.Join(testDir, "a"), vfs.Join(testDir, "a", "b"), path} {
		info, err := vfs.Stat(dir)
		if err != nil {
			t.Errorf("Stat %s : want error to be nil, got %v", dir, err)

			continue
		}

		if !info.IsDir() {
			t.Errorf("Stat %s : want a directory", dir)
		}
	}

	file := sfs.CreateFile(t, vfs.Join(testDir, "file"), nil)

	err := vfs.MkdirAll(vfs.Join(file, "sub"), kodimock.DefaultDirPerm)
	AssertPathError(t, err).Op("mkdir")
}

// TestOpenFile tests OpenFile function.
func (sfs *SuiteFS) TestOpenFile(t *testing.T, testDir string) {
	vfs := sfs.vfs
	existing := sfs.CreateFile(t, vfs.Join(testDir, "existing"), []byte("abc"))

	t.Run("OpenMissing", func(t *testing.T) {
		path := vfs.Join(testDir, "missing")

		_, err := vfs.Open(path)
		AssertPathError(t, err).Op("open").Path(path).Is(fs.ErrNotExist)
	})

	t.Run("OpenExclusive", func(t *testing.T) {
		_, err := vfs.OpenFile(existing, os.O_RDWR|os.O_CREATE|os.O_EXCL, kodimock.DefaultFilePerm)
		AssertPathError(t, err).Op("open").Path(existing).Is(fs.ErrExist)
	})

	t.Run("OpenAppend", func(t *testing.T) {
		f, err := vfs.OpenFile(existing, os.O_WRONLY|os.O_APPEND, kodimock.DefaultFilePerm)
		if err != nil {
			t.Fatalf("OpenFile : want error to be nil, got %v", err)
		}

		_, err = f.Write([]byte("def"))
		if err != nil {
			t.Errorf("Write : want error to be nil, got %v", err)
		}

		f.Close()

		content := sfs.ReadFile(t, existing)
		if string(content) != "abcdef" {
			t.Errorf("ReadFile : want content to be abcdef, got %s", content)
		}
	})

	t.Run("OpenDirForWrite", func(t *testing.T) {
		_, err := vfs.OpenFile(testDir, os.O_WRONLY, kodimock.DefaultFilePerm)
		AssertPathError(t, err).Op("open").Path(testDir)
	})

	t.Run("OpenDirForRead", func(t *testing.T) {
		f, err := vfs.Open(testDir)
		if err != nil {
			t.Fatalf("Open : want error to be nil, got %v", err)
		}

		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			t.Fatalf("Stat : want error to be nil, got %v", err)
		}

		if !info.IsDir() {
			t.Errorf("Stat : want %s to be a directory", testDir)
		}
	})
}

// TestReadDir tests ReadDir function.
func (sfs *SuiteFS) TestReadDir(t *testing.T, testDir string) {
	vfs := sfs.vfs

	sfs.CreateDir(t, vfs.Join(testDir, "b"))
	sfs.CreateFile(t, vfs.Join(testDir, "a"), []byte("a"))
	sfs.CreateFile(t, vfs.Join(testDir, "c"), nil)

	entries, err := vfs.ReadDir(testDir)
	if err != nil {
		t.Fatalf("ReadDir : want error to be nil, got %v", err)
	}

	wantNames := []string{"a", "b", "c"}
	wantDirs := []bool{false, true, false}

	if len(entries) != len(wantNames) {
		t.Fatalf("ReadDir : want %d entries, got %d", len(wantNames), len(entries))
	}

	for i, entry := range entries {
		if entry.Name() != wantNames[i] {
			t.Errorf("ReadDir : want entry %d to be %s, got %s", i, wantNames[i], entry.Name())
		}

		if entry.IsDir() != wantDirs[i] {
			t.Errorf("ReadDir %s : want IsDir to be %t, got %t", entry.Name(), wantDirs[i], entry.IsDir())
		}
	}

	missing := vfs.Join(testDir, "missing")

	_, err = vfs.ReadDir(missing)
	AssertPathError(t, err).Path(missing).Is(fs.ErrNotExist)
}

// TestRemove tests Remove function.
func (sfs *SuiteFS) TestRemove(t *testing.T, testDir string) {
	vfs := sfs.vfs

	file := sfs.CreateFile(t, vfs.Join(testDir, "file"), nil)
	dir := sfs.CreateDir(t, vfs.Join(testDir, "dir"))
	full := sfs.CreateDir(t, vfs.Join(testDir, "full"))
	sfs.CreateFile(t, vfs.Join(full, "child"), nil)

	for _, path := range []string{file, dir} {
		err := vfs.Remove(path)
		if err != nil {
			t.Errorf("Remove %s : want error to be nil, got %v", path, err)
		}

		_, err = vfs.Stat(path)
		AssertPathError(t, err).Is(fs.ErrNotExist)
	}

	err := vfs.Remove(full)
	AssertPathError(t, err).Op("remove").Path(full)

	err = vfs.Remove(file)
	AssertPathError(t, err).Op("remove").Path(file).Is(fs.ErrNotExist)
}

// TestRename tests Rename function.
func (sfs *SuiteFS) TestRename(t *testing.T, testDir string) {
	vfs := sfs.vfs

	t.Run("RenameFile", func(t *testing.T) {
		oldPath := sfs.CreateFile(t, vfs.Join(testDir, "old"), []byte("old"))
		newPath := vfs.Join(testDir, "new")

		err := vfs.Rename(oldPath, newPath)
		if err != nil {
			t.Fatalf("Rename : want error to be nil, got %v", err)
		}

		_, err = vfs.Stat(oldPath)
		AssertPathError(t, err).Is(fs.ErrNotExist)

		if content := sfs.ReadFile(t, newPath); string(content) != "old" {
			t.Errorf("ReadFile : want content to be old, got %s", content)
		}
	})

	t.Run("RenameReplace", func(t *testing.T) {
		src := sfs.CreateFile(t, vfs.Join(testDir, "src"), []byte("src"))
		dst := sfs.CreateFile(t, vfs.Join(testDir, "dst"), []byte("dst"))

		err := vfs.Rename(src, dst)
		if err != nil {
			t.Fatalf("Rename : want error to be nil, got %v", err)
		}

		if content := sfs.ReadFile(t, dst); string(content) != "src" {
			t.Errorf("ReadFile : want content to be src, got %s", content)
		}
	})

	t.Run("RenameDir", func(t *testing.T) {
		oldDir := sfs.CreateDir(t, vfs.Join(testDir, "olddir"))
		sfs.CreateFile(t, vfs.Join(oldDir, "child"), []byte("child"))

		newDir := vfs.Join(testDir, "newdir")

		err := vfs.Rename(oldDir, newDir)
		if err != nil {
			t.Fatalf("Rename : want error to be nil, got %v", err)
		}

		if content := sfs.ReadFile(t, vfs.Join(newDir, "child")); string(content) != "child" {
			t.Errorf("ReadFile : want content to be child, got %s", content)
		}
	})

	t.Run("RenameMissing", func(t *testing.T) {
		oldPath := vfs.Join(testDir, "missing")
		newPath := vfs.Join(testDir, "other")

		err := vfs.Rename(oldPath, newPath)
		AssertLinkError(t, err).Op("rename").OldNew(oldPath, newPath).Is(fs.ErrNotExist)
	})
}

// TestSameFile tests SameFile function.
func (sfs *SuiteFS) TestSameFile(t *testing.T, testDir string) {
	vfs := sfs.vfs

	file1 := sfs.CreateFile(t, vfs.Join(testDir, "file1"), nil)
	file2 := sfs.CreateFile(t, vfs.Join(testDir, "file2"), nil)

	info1, err := vfs.Stat(file1)
	if err != nil {
		t.Fatalf("Stat : want error to be nil, got %v", err)
	}

	info1b, err := vfs.Stat(file1)
	if err != nil {
		t.Fatalf("Stat : want error to be nil, got %v", err)
	}

	info2, err := vfs.Stat(file2)
	if err != nil {
		t.Fatalf("Stat : want error to be nil, got %v", err)
	}

	if !vfs.SameFile(info1, info1b) {
		t.Errorf("SameFile : want %s to be the same file as itself", file1)
	}

	if vfs.SameFile(info1, info2) {
		t.Errorf("SameFile : want %s and %s to be different files", file1, file2)
	}
}

// TestStat tests Stat and Lstat functions.
func (sfs *SuiteFS) TestStat(t *testing.T, testDir string) {
	vfs := sfs.vfs
	file := sfs.CreateFile(t, vfs.Join(testDir, "file"), []byte("12345"))

	stats := []struct {
		op   string
		stat func(name string) (fs.FileInfo, error)
	}{
		{op: "stat", stat: vfs.Stat},
		{op: "lstat", stat: vfs.Lstat},
	}

	for _, st := range stats {
		info, err := st.stat(file)
		if err != nil {
			t.Fatalf("%s : want error to be nil, got %v", st.op, err)
		}

		if info.Name() != "file" {
			t.Errorf("%s : want name to be file, got %s", st.op, info.Name())
		}

		if info.Size() != 5 {
			t.Errorf("%s : want size to be 5, got %d", st.op, info.Size())
		}

		if !info.Mode().IsRegular() {
			t.Errorf("%s : want mode to be regular, got %s", st.op, info.Mode())
		}

		if time.Since(info.ModTime()) > time.Hour {
			t.Errorf("%s : want a recent modification time, got %s", st.op, info.ModTime())
		}

		missing := vfs.Join(testDir, "missing")

		_, err = st.stat(missing)
		AssertPathError(t, err).Op(st.op).Path(missing).Is(fs.ErrNotExist)
	}
}

// TestSysStat tests SysStat function.
func (sfs *SuiteFS) TestSysStat(t *testing.T, testDir string) {
	vfs := sfs.vfs
	file := sfs.CreateFile(t, vfs.Join(testDir, "file"), []byte("123"))

	st, err := vfs.SysStat(file)
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	if st.Size != 3 {
		t.Errorf("SysStat : want size to be 3, got %d", st.Size)
	}

	if kodimock.IsUnixDir(st.Mode) {
		t.Errorf("SysStat : want %s not to be a directory, mode = %o", file, st.Mode)
	}

	if st.Nlink < 1 {
		t.Errorf("SysStat : want nlink to be >= 1, got %d", st.Nlink)
	}

	if st.Mtime.IsZero() || st.Atime.IsZero() || st.Ctime.IsZero() {
		t.Errorf("SysStat : want times to be set, got %v %v %v", st.Atime, st.Mtime, st.Ctime)
	}

	dirSt, err := vfs.SysStat(testDir)
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	if !kodimock.IsUnixDir(dirSt.Mode) {
		t.Errorf("SysStat : want %s to be a directory, mode = %o", testDir, dirSt.Mode)
	}

	if dirSt.Nlink < 2 {
		t.Errorf("SysStat : want directory nlink to be >= 2, got %d", dirSt.Nlink)
	}

	missing := vfs.Join(testDir, "missing")

	_, err = vfs.SysStat(missing)
	AssertPathError(t, err).Path(missing).Is(fs.ErrNotExist)
}

// TestCopyFile tests CopyFile function.
func (sfs *SuiteFS) TestCopyFile(t *testing.T, testDir string) {
	vfs := sfs.vfs
	content := make([]byte, 100*1024)

	for i := range content {
		content[i] = byte(i % 251)
	}

	src := sfs.CreateFile(t, vfs.Join(testDir, "src"), content)
	dst := vfs.Join(testDir, "dst")

	err := kodimock.CopyFile(vfs, vfs, dst, src)
	if err != nil {
		t.Fatalf("CopyFile : want error to be nil, got %v", err)
	}

	if got := sfs.ReadFile(t, dst); string(got) != string(content) {
		t.Errorf("CopyFile : want copied content of %d bytes, got %d bytes", len(content), len(got))
	}

	missing := vfs.Join(testDir, "missing")
	notCreated := vfs.Join(testDir, "notcreated")

	err = kodimock.CopyFile(vfs, vfs, notCreated, missing)
	AssertPathError(t, err).Is(fs.ErrNotExist)

	_, err = vfs.Stat(notCreated)
	AssertPathError(t, err).Is(fs.ErrNotExist)
}
