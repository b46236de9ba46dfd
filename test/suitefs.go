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

// Package test provides a conformance test suite for the virtual file systems
// used by the mock Kodi modules.
package test

import (
	"strings"
	"testing"

	"github.com/rrosajp/kodi-mock"
)

// SuiteFS is a test suite for virtual file systems.
type SuiteFS struct {
	// vfs is the file system to test.
	vfs kodimock.VFS

	// rootDir is the root directory for tests, each test creates its own directory in it.
	rootDir string

	// maxRace is the maximum number of concurrent goroutines used in race tests.
	maxRace int
}

// Option defines the option function used for initializing SuiteFS.
type Option func(*SuiteFS)

// NewSuiteFS creates a new test suite for a file system.
func NewSuiteFS(tb testing.TB, vfs kodimock.VFS, opts ...Option) *SuiteFS {
	if vfs == nil {
		tb.Fatal("New : want vfs to be set, got nil")
	}

	info := "Info vfs : type = " + vfs.Type()
	if vfs.Name() != "" {
		info += ", name = " + vfs.Name()
	}

	tb.Log(info)

	sfs := &SuiteFS{
		vfs:     vfs,
		rootDir: "/suite",
		maxRace: 100,
	}

	for _, opt := range opts {
		opt(sfs)
	}

	return sfs
}

// Options

// WithRootDir returns an option function which sets the root directory of the tests.
func WithRootDir(rootDir string) Option {
	return func(sfs *SuiteFS) {
		sfs.rootDir = rootDir
	}
}

// WithMaxRace returns an option function which sets the number of goroutines of race tests.
func WithMaxRace(maxRace int) Option {
	return func(sfs *SuiteFS) {
		sfs.maxRace = maxRace
	}
}

// VFS returns the file system under test.
func (sfs *SuiteFS) VFS() kodimock.VFS {
	return sfs.vfs
}

// TestAll runs all the tests of the suite.
func (sfs *SuiteFS) TestAll(t *testing.T) {
	tests := []struct {
		name string
		fn   func(t *testing.T, testDir string)
	}{
		{name: "Create", fn: sfs.TestCreate},
		{name: "Mkdir", fn: sfs.TestMkdir},
		{name: "MkdirAll", fn: sfs.TestMkdirAll},
		{name: "OpenFile", fn: sfs.TestOpenFile},
		{name: "ReadDir", fn: sfs.TestReadDir},
		{name: "Remove", fn: sfs.TestRemove},
		{name: "Rename", fn: sfs.TestRename},
		{name: "SameFile", fn: sfs.TestSameFile},
		{name: "Stat", fn: sfs.TestStat},
		{name: "SysStat", fn: sfs.TestSysStat},
		{name: "FileRead", fn: sfs.TestFileRead},
		{name: "FileWrite", fn: sfs.TestFileWrite},
		{name: "FileSeek", fn: sfs.TestFileSeek},
		{name: "FileClose", fn: sfs.TestFileClose},
		{name: "CopyFile", fn: sfs.TestCopyFile},
		{name: "RndTree", fn: sfs.TestRndTree},
		{name: "RaceMkdir", fn: sfs.TestRaceMkdir},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.fn(t, sfs.CreateTestDir(t, test.name))
		})
	}
}

// CreateTestDir creates an empty directory for a test and returns its path.
func (sfs *SuiteFS) CreateTestDir(tb testing.TB, name string) string {
	tb.Helper()

	vfs := sfs.vfs
	testDir := vfs.Join(sfs.rootDir, strings.ReplaceAll(name, "/", "_"))

	err := vfs.MkdirAll(testDir, kodimock.DefaultDirPerm)
	if err != nil {
		tb.Fatalf("MkdirAll %s : want error to be nil, got %v", testDir, err)
	}

	return testDir
}

// CreateDir creates a directory and returns its path.
func (sfs *SuiteFS) CreateDir(tb testing.TB, path string) string {
	tb.Helper()

	err := sfs.vfs.MkdirAll(path, kodimock.DefaultDirPerm)
	if err != nil {
		tb.Fatalf("MkdirAll %s : want error to be nil, got %v", path, err)
	}

	return path
}

// CreateFile creates a file with content and returns its path.
func (sfs *SuiteFS) CreateFile(tb testing.TB, path string, content []byte) string {
	tb.Helper()

	err := kodimock.WriteFile(sfs.vfs, path, content)
	if err != nil {
		tb.Fatalf("WriteFile %s : want error to be nil, got %v", path, err)
	}

	return path
}

// ReadFile returns the content of a file.
func (sfs *SuiteFS) ReadFile(tb testing.TB, path string) []byte {
	tb.Helper()

	content, err := kodimock.ReadFile(sfs.vfs, path)
	if err != nil {
		tb.Fatalf("ReadFile %s : want error to be nil, got %v", path, err)
	}

	return content
}
