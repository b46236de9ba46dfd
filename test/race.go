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
	"io/fs"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rrosajp/kodi-mock"
)

// TestRaceMkdir tests race conditions of Mkdir and MkdirAll.
func (sfs *SuiteFS) TestRaceMkdir(t *testing.T, testDir string) {
	vfs := sfs.vfs

	var (
		wg      sync.WaitGroup
		success int32
	)

	path := vfs.Join(testDir, "race")

	wg.Add(sfs.maxRace)

	for i := 0; i < sfs.maxRace; i++ {
		go func() {
			defer wg.Done()

			err := vfs.Mkdir(path, kodimock.DefaultDirPerm)
			if err == nil {
				atomic.AddInt32(&success, 1)

				return
			}

			if !errors.Is(err, fs.ErrExist) {
				t.Errorf("Mkdir %s : want error to be nil or %v, got %v", path, fs.ErrExist, err)
			}
		}()
	}

	wg.Wait()

	if success != 1 {
		t.Errorf("Mkdir %s : want exactly one success, got %d", path, success)
	}

	wg.Add(sfs.maxRace)

	for i := 0; i < sfs.maxRace; i++ {
		i := i

		go func() {
			defer wg.Done()

			dir := vfs.Join(testDir, "all", strconv.Itoa(i%10), strconv.Itoa(i))

			err := vfs.MkdirAll(dir, kodimock.DefaultDirPerm)
			if err != nil {
				t.Errorf("MkdirAll %s : want error to be nil, got %v", dir, err)
			}
		}()
	}

	wg.Wait()
}
