//
//  Copyright 2024 The kodi-mock authors
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

// Result is the outcome of an operation whose host contract is a boolean.
// The failure reason is kept for diagnostics but never returned as an error.
type Result struct {
	err error
}

// Ok is the successful Result.
var Ok = Result{} //nolint:gochecknoglobals // Ok is immutable.

// Fail returns a failed Result caused by err.
// A nil err gives a successful Result.
func Fail(err error) Result {
	return Result{err: err}
}

// OK returns true if the operation succeeded.
func (r Result) OK() bool {
	return r.err == nil
}

// Err returns the reason of the failure, or nil on success.
func (r Result) Err() error {
	return r.err
}

func (r Result) String() string {
	if r.err == nil {
		return "true"
	}

	return "false (" + r.err.Error() + ")"
}
