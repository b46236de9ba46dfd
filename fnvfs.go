//
//  Copyright 2022 The AVFS authors
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

import "strconv"

// FnVFS defines the function names of a virtual file system that can return an error (see failfs.FailFS).
type FnVFS uint

const (
	FnCreate FnVFS = iota + 1
	FnFileClose
	FnFileRead
	FnFileSeek
	FnFileStat
	FnFileSync
	FnFileWrite
	FnLstat
	FnMkdir
	FnMkdirAll
	FnOpenFile
	FnReadDir
	FnRemove
	FnRename
	FnStat
	FnSysStat
)

var fnNames = [...]string{ //nolint:gochecknoglobals // fnNames is a read only lookup table.
	FnCreate:    "Create",
	FnFileClose: "FileClose",
	FnFileRead:  "FileRead",
	FnFileSeek:  "FileSeek",
	FnFileStat:  "FileStat",
	FnFileSync:  "FileSync",
	FnFileWrite: "FileWrite",
	FnLstat:     "Lstat",
	FnMkdir:     "Mkdir",
	FnMkdirAll:  "MkdirAll",
	FnOpenFile:  "OpenFile",
	FnReadDir:   "ReadDir",
	FnRemove:    "Remove",
	FnRename:    "Rename",
	FnStat:      "Stat",
	FnSysStat:   "SysStat",
}

func (fn FnVFS) String() string {
	if int(fn) < len(fnNames) && fnNames[fn] != "" {
		return fnNames[fn]
	}

	return "FnVFS(" + strconv.FormatUint(uint64(fn), 10) + ")"
}
