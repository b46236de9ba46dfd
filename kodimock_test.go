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

package kodimock_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/rrosajp/kodi-mock"
)

// testEnv is a minimal environment with a fixed root table.
type testEnv map[string]string

func (testEnv) PluginID() string { return "" }

func (testEnv) Addon(string) (*kodimock.AddonData, bool) { return nil, false }

func (e testEnv) SpecialRoot(name string) (string, bool) {
	dir, ok := e[name]

	return dir, ok
}

func TestSplitSpecialPath(t *testing.T) {
	tests := []struct {
		path     string
		wantRoot string
		wantRest string
		wantOk   bool
	}{
		{path: "special://masterprofile/addon_data/foo", wantRoot: "masterprofile", wantRest: "addon_data/foo", wantOk: true},
		{path: "special://temp/", wantRoot: "temp", wantRest: "", wantOk: true},
		{path: "special://temp", wantRoot: "temp", wantRest: "", wantOk: false},
		{path: "/home/user", wantOk: false},
		{path: "", wantOk: false},
	}

	for _, test := range tests {
		root, rest, ok := kodimock.SplitSpecialPath(test.path)
		if root != test.wantRoot || rest != test.wantRest || ok != test.wantOk {
			t.Errorf("SplitSpecialPath(%q) : want %q, %q, %t, got %q, %q, %t",
				test.path, test.wantRoot, test.wantRest, test.wantOk, root, rest, ok)
		}
	}
}

func TestTranslateSpecialPath(t *testing.T) {
	env := testEnv{
		"masterprofile": "/home/user/XBMC/UserData",
		"profile":       "/home/user/XBMC/UserData/",
		"temp":          "/tmp/kodi",
	}

	tests := []struct {
		path string
		want string
	}{
		{path: "special://masterprofile/x/y", want: "/home/user/XBMC/UserData/x/y"},
		{path: "special://masterprofile/addon_data/plugin.x/", want: "/home/user/XBMC/UserData/addon_data/plugin.x/"},
		{path: "special://masterprofile/../escape", want: "/home/user/XBMC/UserData/../escape"},
		{path: "special://profile/settings.xml", want: "/home/user/XBMC/UserData/settings.xml"},
		{path: "special://temp/a//b/", want: "/tmp/kodi/a/b/"},
		{path: "special://temp/", want: "/tmp/kodi/"},
		{path: "/already/real", want: "/already/real"},
		{path: "relative/path", want: "relative/path"},
		{path: "", want: ""},
	}

	for _, test := range tests {
		got, err := kodimock.TranslateSpecialPath(env, '/', test.path)
		if err != nil {
			t.Errorf("TranslateSpecialPath(%q) : want error to be nil, got %v", test.path, err)

			continue
		}

		if got != test.want {
			t.Errorf("TranslateSpecialPath(%q) : want %s, got %s", test.path, test.want, got)
		}
	}

	got, err := kodimock.TranslateSpecialPath(env, '\\', "special://temp/a/b/")
	if want := `/tmp/kodi\a\b\`; err != nil || got != want {
		t.Errorf("TranslateSpecialPath : want %s, got %s, %v", want, got, err)
	}

	profile, err := kodimock.TranslateSpecialPath(env, '/', "special://masterprofile/addon_data/plugin.x/")
	if got := profile + "settings.xml"; err != nil || got != "/home/user/XBMC/UserData/addon_data/plugin.x/settings.xml" {
		t.Errorf("TranslateSpecialPath : want the profile directory to end with a separator, got %s, %v", got, err)
	}
}

func TestTranslateSpecialPathErrors(t *testing.T) {
	env := testEnv{"temp": "/tmp"}

	tests := []struct {
		path     string
		wantRoot string
		wantErr  error
	}{
		{path: "special://nope/x", wantRoot: "nope", wantErr: kodimock.ErrUnknownRoot},
		{path: "special://temp", wantRoot: "", wantErr: kodimock.ErrInvalidSpecialPath},
		{path: "special://", wantRoot: "", wantErr: kodimock.ErrInvalidSpecialPath},
	}

	for _, test := range tests {
		_, err := kodimock.TranslateSpecialPath(env, '/', test.path)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("TranslateSpecialPath(%q) : want error to be %v, got %v", test.path, test.wantErr, err)
		}

		var spe *kodimock.SpecialPathError
		if !errors.As(err, &spe) {
			t.Errorf("TranslateSpecialPath(%q) : want a *SpecialPathError, got %T", test.path, err)

			continue
		}

		if spe.Path != test.path || spe.Root != test.wantRoot {
			t.Errorf("SpecialPathError : want path, root to be %s, %s, got %s, %s", test.path, test.wantRoot, spe.Path, spe.Root)
		}
	}

	_, err := kodimock.TranslateSpecialPath(env, '/', "special://nope/x")
	if want := "nope is not a valid root dir (special://nope/x)"; err.Error() != want {
		t.Errorf("Error : want %q, got %q", want, err.Error())
	}
}

func TestErrno(t *testing.T) {
	tests := []struct {
		err    kodimock.Errno
		target error
		want   bool
	}{
		{err: kodimock.ErrNoSuchFileOrDir, target: fs.ErrNotExist, want: true},
		{err: kodimock.ErrFileExists, target: fs.ErrExist, want: true},
		{err: kodimock.ErrDirNotEmpty, target: fs.ErrExist, want: true},
		{err: kodimock.ErrPermDenied, target: fs.ErrPermission, want: true},
		{err: kodimock.ErrOpNotPermitted, target: fs.ErrPermission, want: true},
		{err: kodimock.ErrIsADirectory, target: fs.ErrExist, want: false},
		{err: kodimock.ErrBusy, target: fs.ErrNotExist, want: false},
	}

	for _, test := range tests {
		if got := errors.Is(test.err, test.target); got != test.want {
			t.Errorf("Is(%v, %v) : want %t, got %t", test.err, test.target, test.want, got)
		}
	}

	if s := kodimock.ErrNotADirectory.Error(); s != "not a directory" {
		t.Errorf("Error : want not a directory, got %s", s)
	}

	if s := kodimock.Errno(0x7f).Error(); s != "errno 127" {
		t.Errorf("Error : want errno 127, got %s", s)
	}
}

func TestAddonErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: kodimock.UnknownAddonError("plugin.x"), want: "addon: unknown addon id 'plugin.x'"},
		{err: kodimock.UnknownStringError(30001), want: "addon: unknown localized string 30001"},
		{err: kodimock.UnknownSettingError("quality"), want: "addon: unknown setting 'quality'"},
	}

	for _, test := range tests {
		if test.err.Error() != test.want {
			t.Errorf("Error : want %q, got %q", test.want, test.err.Error())
		}
	}
}

func TestResult(t *testing.T) {
	if !kodimock.Ok.OK() || kodimock.Ok.Err() != nil || kodimock.Ok.String() != "true" {
		t.Errorf("Ok : want a successful result, got %s", kodimock.Ok)
	}

	if r := kodimock.Fail(nil); !r.OK() {
		t.Errorf("Fail(nil) : want a successful result, got %s", r)
	}

	r := kodimock.Fail(kodimock.ErrBusy)
	if r.OK() || r.Err() != kodimock.ErrBusy {
		t.Errorf("Fail : want a failed result with %v, got %s", kodimock.ErrBusy, r)
	}

	if want := "false (device or resource busy)"; r.String() != want {
		t.Errorf("String : want %s, got %s", want, r.String())
	}
}

func TestOverrides(t *testing.T) {
	var nilOverrides *kodimock.Overrides

	if _, ok := nilOverrides.Get("x"); ok || nilOverrides.Len() != 0 || nilOverrides.IDs() != nil {
		t.Error("nil Overrides : want no values")
	}

	o := kodimock.NewOverrides()
	o.Set("b", "2")
	o.Set("a", "1")
	o.Set("a", "one")

	if v, ok := o.Get("a"); !ok || v != "one" {
		t.Errorf("Get : want one, true, got %s, %t", v, ok)
	}

	if ids := o.IDs(); len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("IDs : want [a b], got %v", ids)
	}

	o.Delete("a")

	if _, ok := o.Get("a"); ok || o.Len() != 1 {
		t.Errorf("Delete : want a to be removed, got len %d", o.Len())
	}

	o.Reset()

	if o.Len() != 0 {
		t.Errorf("Reset : want no values, got %d", o.Len())
	}

	var zero kodimock.Overrides
	zero.Set("x", "y")

	if v, _ := zero.Get("x"); v != "y" {
		t.Errorf("Set : want zero value Overrides to be usable, got %s", v)
	}
}

func TestUnixMode(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want uint32
	}{
		{mode: 0o644, want: 0o100644},
		{mode: fs.ModeDir | 0o755, want: 0o040755},
		{mode: fs.ModeSymlink | 0o777, want: 0o120777},
		{mode: fs.ModeNamedPipe | 0o600, want: 0o010600},
		{mode: fs.ModeSocket | 0o700, want: 0o140700},
		{mode: fs.ModeDevice | 0o660, want: 0o060660},
		{mode: fs.ModeDevice | fs.ModeCharDevice | 0o620, want: 0o020620},
		{mode: fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky | 0o755, want: 0o107755},
	}

	for _, test := range tests {
		got := kodimock.UnixMode(test.mode)
		if got != test.want {
			t.Errorf("UnixMode(%s) : want %o, got %o", test.mode, test.want, got)
		}

		if kodimock.IsUnixDir(got) != test.mode.IsDir() {
			t.Errorf("IsUnixDir(%o) : want %t", got, test.mode.IsDir())
		}
	}
}

func TestFnVFS(t *testing.T) {
	if s := kodimock.FnRename.String(); s != "Rename" {
		t.Errorf("String : want Rename, got %s", s)
	}

	if s := kodimock.FnVFS(0).String(); s != "FnVFS(0)" {
		t.Errorf("String : want FnVFS(0), got %s", s)
	}

	if s := kodimock.FnVFS(1000).String(); s != "FnVFS(1000)" {
		t.Errorf("String : want FnVFS(1000), got %s", s)
	}
}
