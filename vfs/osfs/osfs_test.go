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

package osfs_test

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/rrosajp/kodi-mock"
	"github.com/rrosajp/kodi-mock/test"
	"github.com/rrosajp/kodi-mock/vfs/osfs"
)

var (
	// osfs.OsFS struct implements kodimock.VFS interface.
	_ kodimock.VFS = &osfs.OsFS{}

	// os.File struct implements kodimock.File interface.
	_ kodimock.File = &os.File{}
)

func TestOsFS(t *testing.T) {
	vfs := osfs.New()

	sfs := test.NewSuiteFS(t, vfs, test.WithRootDir(t.TempDir()))
	sfs.TestAll(t)
}

func TestOsFSConfig(t *testing.T) {
	vfs := osfs.New()

	name := vfs.Name()
	if name != "" {
		t.Errorf("Name : want name to be empty, got %v", name)
	}

	if vfs.Type() != "OsFS" {
		t.Errorf("Type : want type to be OsFS, got %s", vfs.Type())
	}

	if vfs.PathSeparator() != os.PathSeparator {
		t.Errorf("PathSeparator : want %c, got %c", os.PathSeparator, vfs.PathSeparator())
	}

	const wantName = "kodi"

	vfs = osfs.New(osfs.WithName(wantName))
	if vfs.Name() != wantName {
		t.Errorf("Name : want name to be %s, got %s", wantName, vfs.Name())
	}
}

func TestOsFSOpenMissing(t *testing.T) {
	vfs := osfs.New()

	f, err := vfs.Open(vfs.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Open : want error to be not nil, got nil")
	}

	if f != nil {
		t.Errorf("Open : want file to be a nil interface, got %#v", f)
	}
}

func TestOsFSSysStat(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	vfs := osfs.New(osfs.WithLogger(logger))
	dir := t.TempDir()

	st, err := vfs.SysStat(dir)
	if err != nil {
		t.Fatalf("SysStat : want error to be nil, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat : want error to be nil, got %v", err)
	}

	if !info.ModTime().Equal(st.Mtime) {
		t.Errorf("SysStat : want mtime to be %v, got %v", info.ModTime(), st.Mtime)
	}

	if !kodimock.IsUnixDir(st.Mode) {
		t.Errorf("SysStat : want %s to be a directory, mode = %o", dir, st.Mode)
	}

	if st.Mode&0o777 != uint32(info.Mode().Perm()) {
		t.Errorf("SysStat : want permissions to be %o, got %o", info.Mode().Perm(), st.Mode&0o777)
	}

	if !strings.Contains(buf.String(), "msg=stat") {
		t.Errorf("SysStat : want a debug message, got %q", buf.String())
	}
}
