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
	"strconv"
	"strings"
	"testing"

	"github.com/rrosajp/kodi-mock"
	"github.com/valyala/fastrand"
)

// ErrRndTreeOutOfRange defines the generic error for out of range parameters RndTreeParams.
type ErrRndTreeOutOfRange string

// Error returns an ErrRndTreeOutOfRange error.
func (e ErrRndTreeOutOfRange) Error() string {
	return string(e) + " parameter out of range"
}

const (
	// ErrNameOutOfRange is the error when MinName or MaxName is out of range.
	ErrNameOutOfRange = ErrRndTreeOutOfRange("name")

	// ErrDirsOutOfRange is the error when MinDirs or MaxDirs is out of range.
	ErrDirsOutOfRange = ErrRndTreeOutOfRange("dirs")

	// ErrFilesOutOfRange is the error when MinFiles or MaxFiles is out of range.
	ErrFilesOutOfRange = ErrRndTreeOutOfRange("files")

	// ErrFileSizeOutOfRange is the error when MinFileSize or MaxFileSize is out of range.
	ErrFileSizeOutOfRange = ErrRndTreeOutOfRange("file size")
)

// RndTreeParams defines the parameters to generate a random tree of directories and files.
type RndTreeParams struct {
	MinName     int  // MinName is the minimum length of a name (must be >= 1).
	MaxName     int  // MaxName is the maximum length of a name (must be >= MinName).
	MinDirs     int  // MinDirs is the minimum number of directories (must be >= 0).
	MaxDirs     int  // MaxDirs is the maximum number of directories (must be >= MinDirs).
	MinFiles    int  // MinFiles is the minimum number of files (must be >= 0).
	MaxFiles    int  // MaxFiles is the maximum number of Files (must be >= MinFiles).
	MinFileSize int  // MinFileSize is minimum size of a file (must be >= 0).
	MaxFileSize int  // MaxFileSize is maximum size of a file (must be >= MinFileSize).
	OneLevel    bool // OneLevel creates all directories and files in the base directory.
}

// RndTree is a random tree generator of directories and files,
// used to populate addon data directories.
type RndTree struct {
	vfs           kodimock.VFS  // virtual file system.
	rng           *fastrand.RNG // random number generator.
	baseDir       string        // base directory of the random tree.
	Dirs          []string      // all directories.
	Files         []string      // all files.
	RndTreeParams               // parameters of the tree.
}

// NewRndTree returns a new random tree generator.
// A seed different from 0 gives a reproducible tree.
func NewRndTree(vfs kodimock.VFS, baseDir string, seed uint32, p *RndTreeParams) (*RndTree, error) {
	if p.MinName < 1 || p.MinName > p.MaxName {
		return nil, ErrNameOutOfRange
	}

	if p.MinDirs < 0 || p.MinDirs > p.MaxDirs {
		return nil, ErrDirsOutOfRange
	}

	if p.MinFiles < 0 || p.MinFiles > p.MaxFiles {
		return nil, ErrFilesOutOfRange
	}

	if p.MinFileSize < 0 || p.MinFileSize > p.MaxFileSize {
		return nil, ErrFileSizeOutOfRange
	}

	rng := &fastrand.RNG{}
	if seed != 0 {
		rng.Seed(seed)
	}

	rt := &RndTree{
		vfs:           vfs,
		rng:           rng,
		baseDir:       baseDir,
		RndTreeParams: *p,
	}

	rt.generateDirs()
	rt.generateFiles()

	return rt, nil
}

// generateDirs generates random directories.
func (rt *RndTree) generateDirs() {
	nbDirs := rt.randRange(rt.MinDirs, rt.MaxDirs)
	rt.Dirs = make([]string, nbDirs)

	for i := 0; i < nbDirs; i++ {
		rt.Dirs[i] = rt.vfs.Join(rt.randDir(i), rt.randName(i))
	}
}

// generateFiles generates random files in existing directories.
func (rt *RndTree) generateFiles() {
	nbFiles := rt.randRange(rt.MinFiles, rt.MaxFiles)
	rt.Files = make([]string, nbFiles)

	for i := 0; i < nbFiles; i++ {
		rt.Files[i] = rt.vfs.Join(rt.randDir(len(rt.Dirs)), rt.randName(len(rt.Dirs)+i))
	}
}

// CreateTree creates the random tree.
func (rt *RndTree) CreateTree() error {
	err := rt.CreateDirs()
	if err != nil {
		return err
	}

	return rt.CreateFiles()
}

// CreateDirs creates the random directories.
func (rt *RndTree) CreateDirs() error {
	vfs := rt.vfs

	err := vfs.MkdirAll(rt.baseDir, kodimock.DefaultDirPerm)
	if err != nil {
		return err
	}

	for _, dirName := range rt.Dirs {
		err = vfs.Mkdir(dirName, kodimock.DefaultDirPerm)
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateFiles creates the random files.
func (rt *RndTree) CreateFiles() error {
	buf := make([]byte, rt.MaxFileSize)
	for i := range buf {
		buf[i] = byte(rt.rng.Uint32n(256))
	}

	for _, fileName := range rt.Files {
		size := rt.randRange(rt.MinFileSize, rt.MaxFileSize)

		err := kodimock.WriteFile(rt.vfs, fileName, buf[:size])
		if err != nil {
			return err
		}
	}

	return nil
}

// randDir returns a random directory among the first n ones.
func (rt *RndTree) randDir(n int) string {
	if rt.OneLevel || n <= 0 {
		return rt.baseDir
	}

	return rt.Dirs[rt.rng.Uint32n(uint32(n))]
}

// randRange returns a random integer between lo and hi included.
func (rt *RndTree) randRange(lo, hi int) int {
	val := lo
	if lo < hi {
		val += int(rt.rng.Uint32n(uint32(hi - lo + 1)))
	}

	return val
}

// randName generates a random name using different sets of runes (ASCII, Cyrillic, Devanagari).
// The name is suffixed by a unique number to avoid collisions.
func (rt *RndTree) randName(unique int) string {
	nbRunes := rt.randRange(rt.MinName, rt.MaxName)

	var name strings.Builder

	for i, s, e := 0, 0, 0; i < nbRunes; i++ {
		switch rt.rng.Uint32n(4) {
		case 0: // ASCII Uppercase
			s = 65
			e = 90
		case 1: // ASCII Lowercase
			s = 97
			e = 122
		case 2: // Cyrillic
			s = 0x400
			e = 0x4ff
		case 3: // Devanagari
			s = 0x900
			e = 0x97f
		}

		name.WriteRune(rune(s + int(rt.rng.Uint32n(uint32(e-s)))))
	}

	name.WriteByte('_')
	name.WriteString(strconv.Itoa(unique))

	return name.String()
}

// TestRndTree tests the generation of random trees.
func (sfs *SuiteFS) TestRndTree(t *testing.T, testDir string) {
	vfs := sfs.vfs

	t.Run("OutOfRange", func(t *testing.T) {
		tests := []struct {
			params  RndTreeParams
			wantErr error
		}{
			{params: RndTreeParams{MinName: 0, MaxName: 1}, wantErr: ErrNameOutOfRange},
			{params: RndTreeParams{MinName: 1, MaxName: 1, MinDirs: 2, MaxDirs: 1}, wantErr: ErrDirsOutOfRange},
			{params: RndTreeParams{MinName: 1, MaxName: 1, MinFiles: -1}, wantErr: ErrFilesOutOfRange},
			{params: RndTreeParams{MinName: 1, MaxName: 1, MinFileSize: 3, MaxFileSize: 2}, wantErr: ErrFileSizeOutOfRange},
		}

		for i, test := range tests {
			_, err := NewRndTree(vfs, testDir, 1, &test.params)
			if err != test.wantErr {
				t.Errorf("NewRndTree %d : want error to be %v, got %v", i, test.wantErr, err)
			}
		}
	})

	t.Run("CreateTree", func(t *testing.T) {
		params := &RndTreeParams{
			MinName: 3, MaxName: 10,
			MinDirs: 10, MaxDirs: 20,
			MinFiles: 20, MaxFiles: 40,
			MinFileSize: 0, MaxFileSize: 1024,
		}

		rt, err := NewRndTree(vfs, vfs.Join(testDir, "tree"), 42, params)
		if err != nil {
			t.Fatalf("NewRndTree : want error to be nil, got %v", err)
		}

		err = rt.CreateTree()
		if err != nil {
			t.Fatalf("CreateTree : want error to be nil, got %v", err)
		}

		for _, dir := range rt.Dirs {
			info, err := vfs.Stat(dir)
			if err != nil || !info.IsDir() {
				t.Errorf("Stat %s : want a directory, got %v", dir, err)
			}
		}

		for _, file := range rt.Files {
			info, err := vfs.Stat(file)
			if err != nil || !info.Mode().IsRegular() {
				t.Errorf("Stat %s : want a regular file, got %v", file, err)
			}
		}
	})
}
