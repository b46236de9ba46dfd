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
	"os"
	"reflect"
	"testing"
)

// assertPathError stores the current fs.PathError test data.
type assertPathError struct {
	tb   testing.TB
	err  error
	op   string
	path string
}

// AssertPathError checks if err is a fs.PathError.
func AssertPathError(tb testing.TB, err error) *assertPathError {
	tb.Helper()

	if err == nil {
		tb.Error("want error to be not nil, got nil")

		return &assertPathError{tb: tb}
	}

	var e *fs.PathError
	if !errors.As(err, &e) {
		tb.Errorf("want error type to be *fs.PathError, got %v : %v", reflect.TypeOf(err), err)

		return &assertPathError{tb: tb}
	}

	return &assertPathError{tb: tb, op: e.Op, path: e.Path, err: e.Err}
}

// Op checks the Op of the current fs.PathError.
func (ape *assertPathError) Op(op string) *assertPathError {
	ape.tb.Helper()

	if ape.err != nil && ape.op != op {
		ape.tb.Errorf("want Op to be %s, got %s", op, ape.op)
	}

	return ape
}

// Path checks the Path of the current fs.PathError.
func (ape *assertPathError) Path(path string) *assertPathError {
	ape.tb.Helper()

	if ape.err != nil && ape.path != path {
		ape.tb.Errorf("want Path to be %s, got %s", path, ape.path)
	}

	return ape
}

// Is checks that the error of the current fs.PathError matches target.
func (ape *assertPathError) Is(target error) *assertPathError {
	ape.tb.Helper()

	if ape.err != nil && !errors.Is(ape.err, target) {
		ape.tb.Errorf("want error to be %v, got %v", target, ape.err)
	}

	return ape
}

// assertLinkError stores the current os.LinkError test data.
type assertLinkError struct {
	tb       testing.TB
	err      error
	op       string
	old, new string
}

// AssertLinkError checks if err is an os.LinkError.
func AssertLinkError(tb testing.TB, err error) *assertLinkError {
	tb.Helper()

	if err == nil {
		tb.Error("want error to be not nil, got nil")

		return &assertLinkError{tb: tb}
	}

	var e *os.LinkError
	if !errors.As(err, &e) {
		tb.Errorf("want error type to be *os.LinkError, got %v : %v", reflect.TypeOf(err), err)

		return &assertLinkError{tb: tb}
	}

	return &assertLinkError{tb: tb, op: e.Op, old: e.Old, new: e.New, err: e.Err}
}

// Op checks the Op of the current os.LinkError.
func (ale *assertLinkError) Op(op string) *assertLinkError {
	ale.tb.Helper()

	if ale.err != nil && ale.op != op {
		ale.tb.Errorf("want Op to be %s, got %s", op, ale.op)
	}

	return ale
}

// OldNew checks the old and new paths of the current os.LinkError.
func (ale *assertLinkError) OldNew(oldName, newName string) *assertLinkError {
	ale.tb.Helper()

	if ale.err != nil && (ale.old != oldName || ale.new != newName) {
		ale.tb.Errorf("want old, new to be %s, %s, got %s, %s", oldName, newName, ale.old, ale.new)
	}

	return ale
}

// Is checks that the error of the current os.LinkError matches target.
func (ale *assertLinkError) Is(target error) *assertLinkError {
	ale.tb.Helper()

	if ale.err != nil && !errors.Is(ale.err, target) {
		ale.tb.Errorf("want error to be %v, got %v", target, ale.err)
	}

	return ale
}
