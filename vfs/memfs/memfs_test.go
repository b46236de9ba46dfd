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

package memfs_test

import (
	"io/fs"
	"os"
	"testing"

	"github.com/rrosajp/kodi-mock"
	"github.com/rrosajp/kodi-mock/test"
	"github.com/rrosajp/kodi-mock/vfs/memfs"
)

var (
	// memfs.MemFS struct implements kodimock.VFS interface.
	_ kodimock.VFS = &memfs.MemFS{}

	// memfs.MemFile struct implements kodimock.File interface.
	_ kodimock.File = &memfs.MemFile{}

	// memfs.MemInfo struct implements fs.DirEntry interface.
	_ fs.DirEntry = &memfs.MemInfo{}

	// memfs.MemInfo struct implements fs.FileInfo interface.
	_ fs.FileInfo = &memfs.MemInfo{}
)

func TestMemFS(t *testing.T) {
	vfs := memfs.New()

	sfs := test.NewSuiteFS(t, vfs)
	sfs.TestAll(t)
}

// TestMemFSOptionName tests MemFS initialization with or without option name (WithName()).
func TestMemFSOptionName(t *testing.T) {
	const wantName = "whatever"

	vfs := memfs.New()
	if vfs.Name() != "" {
		t.Errorf("New : want name to be '', got %s", vfs.Name())
	}

	vfs = memfs.New(memfs.WithName(wantName))

	name := vfs.Name()
	if name != wantName {
		t.Errorf("New : want name to be %s, got %s", wantName, vfs.Name())
	}

	if vfs.Type() != "MemFS" {
		t.Errorf("Type : want type to be MemFS, got %s", vfs.Type())
	}
}

func TestMemFSOptionOwner(t *testing.T) {
	vfs := memfs.New(memfs.WithOwner(1000, 100))

	st, err := vfs.SysStat("/")
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	if st.Uid != 1000 || st.Gid != 100 {
		t.Errorf("SysStat : want uid, gid to be 1000, 100, got %d, %d", st.Uid, st.Gid)
	}
}

func TestMemFSDevices(t *testing.T) {
	vfs1, vfs2 := memfs.New(), memfs.New()

	st1, err := vfs1.SysStat("/")
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	st2, err := vfs2.SysStat("/")
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	if st1.Dev == st2.Dev {
		t.Errorf("SysStat : want different devices for different file systems, got %d", st1.Dev)
	}
}

func TestMemFSRelativePaths(t *testing.T) {
	vfs := memfs.New()

	err := vfs.MkdirAll("a/b", kodimock.DefaultDirPerm)
	if err != nil {
		t.Fatalf("MkdirAll : want error to be nil, got %v", err)
	}

	info, err := vfs.Stat("/a/b")
	if err != nil || !info.IsDir() {
		t.Errorf("Stat : want /a/b to be a directory, got %v", err)
	}
}

func TestMemFSRoot(t *testing.T) {
	vfs := memfs.New()

	err := vfs.Remove("/")
	test.AssertPathError(t, err).Op("remove").Is(kodimock.ErrBusy)

	err = vfs.Mkdir("/", kodimock.DefaultDirPerm)
	test.AssertPathError(t, err).Op("mkdir").Is(fs.ErrExist)

	err = vfs.Rename("/", "/other")
	test.AssertLinkError(t, err).Op("rename").Is(kodimock.ErrBusy)

	_, err = vfs.Stat("")
	test.AssertPathError(t, err).Op("stat").Is(fs.ErrNotExist)
}

func TestMemFSRenameErrors(t *testing.T) {
	vfs := memfs.New()

	_ = vfs.MkdirAll("/dir/sub", kodimock.DefaultDirPerm)
	_ = vfs.MkdirAll("/full/child", kodimock.DefaultDirPerm)
	_ = kodimock.WriteFile(vfs, "/file", []byte("file"))

	tests := []struct {
		oldPath, newPath string
		wantErr          error
	}{
		{oldPath: "/dir", newPath: "/dir/sub/dir", wantErr: kodimock.ErrInvalidArgument},
		{oldPath: "/file", newPath: "/dir", wantErr: kodimock.ErrIsADirectory},
		{oldPath: "/dir", newPath: "/file", wantErr: kodimock.ErrNotADirectory},
		{oldPath: "/dir", newPath: "/full", wantErr: kodimock.ErrDirNotEmpty},
		{oldPath: "/file", newPath: "/file/x", wantErr: kodimock.ErrNotADirectory},
	}

	for _, tt := range tests {
		err := vfs.Rename(tt.oldPath, tt.newPath)
		test.AssertLinkError(t, err).Op("rename").OldNew(tt.oldPath, tt.newPath).Is(tt.wantErr)
	}

	err := vfs.Rename("/file", "/file")
	if err != nil {
		t.Errorf("Rename : want renaming a file to itself to succeed, got %v", err)
	}
}

func TestMemFSErrors(t *testing.T) {
	vfs := memfs.New()

	_ = vfs.MkdirAll("/dir/sub", kodimock.DefaultDirPerm)
	_ = kodimock.WriteFile(vfs, "/file", nil)

	err := vfs.Remove("/dir")
	test.AssertPathError(t, err).Op("remove").Is(kodimock.ErrDirNotEmpty)

	_, err = vfs.OpenFile("/dir", os.O_RDWR, kodimock.DefaultFilePerm)
	test.AssertPathError(t, err).Op("open").Is(kodimock.ErrIsADirectory)

	_, err = vfs.ReadDir("/file")
	test.AssertPathError(t, err).Is(kodimock.ErrNotADirectory)

	_, err = vfs.Stat("/file/x")
	test.AssertPathError(t, err).Is(kodimock.ErrNotADirectory)

	f, err := vfs.Open("/dir")
	if err != nil {
		t.Fatalf("Open : want error to be nil, got %v", err)
	}

	defer f.Close()

	_, err = f.Read(make([]byte, 1))
	test.AssertPathError(t, err).Op("read").Is(kodimock.ErrIsADirectory)
}

func TestMemFSSysStat(t *testing.T) {
	vfs := memfs.New()

	_ = vfs.MkdirAll("/dir/a", kodimock.DefaultDirPerm)
	_ = vfs.Mkdir("/dir/b", kodimock.DefaultDirPerm)
	_ = kodimock.WriteFile(vfs, "/dir/file", []byte("12345"))

	st, err := vfs.SysStat("/dir")
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	if st.Nlink != 4 {
		t.Errorf("SysStat : want nlink to be 4, got %d", st.Nlink)
	}

	info, err := vfs.Stat("/dir/file")
	if err != nil {
		t.Fatalf("Stat : want error to be nil, got %v", err)
	}

	fst, err := vfs.SysStat("/dir/file")
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	if fst.Mode != kodimock.UnixMode(info.Mode()) {
		t.Errorf("SysStat : want mode to be %o, got %o", kodimock.UnixMode(info.Mode()), fst.Mode)
	}

	if fst.Ino == st.Ino {
		t.Errorf("SysStat : want different inodes, got %d", fst.Ino)
	}

	if info.Sys() != info {
		t.Errorf("Sys : want Sys to return the MemInfo itself")
	}
}

func TestMemFSSameFileForeignInfo(t *testing.T) {
	vfs := memfs.New()

	info, err := vfs.Stat("/")
	if err != nil {
		t.Fatalf("Stat : want error to be nil, got %v", err)
	}

	if vfs.SameFile(info, nil) {
		t.Error("SameFile : want false for a nil FileInfo")
	}
}

func TestMemFSNilPtrFile(t *testing.T) {
	f := (*memfs.MemFile)(nil)

	if err := f.Close(); err != fs.ErrInvalid {
		t.Errorf("Close : want error to be %v, got %v", fs.ErrInvalid, err)
	}

	if _, err := f.Read(nil); err != fs.ErrInvalid {
		t.Errorf("Read : want error to be %v, got %v", fs.ErrInvalid, err)
	}

	if _, err := f.Write(nil); err != fs.ErrInvalid {
		t.Errorf("Write : want error to be %v, got %v", fs.ErrInvalid, err)
	}
}

func BenchmarkMemFSCreate(b *testing.B) {
	vfs := memfs.New()
	sfs := test.NewSuiteFS(b, vfs)
	dir := sfs.CreateTestDir(b, "bench")
	content := []byte("bench")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = kodimock.WriteFile(vfs, vfs.Join(dir, "file"), content)
	}
}
