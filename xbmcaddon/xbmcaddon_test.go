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

package xbmcaddon_test

import (
	"bytes"
	"log/slog"
	"math"
	"strconv"
	"testing"

	"github.com/rrosajp/kodi-mock"
	"github.com/rrosajp/kodi-mock/support"
	"github.com/rrosajp/kodi-mock/xbmcaddon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "plugin.video.test"

// newEnv returns an environment with two installed addons, testID being the active one.
func newEnv(t *testing.T) *support.Support {
	t.Helper()

	data := kodimock.NewAddonData(testID)
	data.Info["name"] = "Test"
	data.Info["version"] = "1.0.0"
	data.Strings[30001] = "Hello"
	data.Settings["quality"] = "1080p"
	data.Settings["enabled"] = "true"
	data.Settings["retries"] = " 3 "
	data.Settings["ratio"] = "1.5"
	data.Settings["bad"] = "abc"

	env, err := support.New(
		support.WithPluginID(testID),
		support.WithAddon(data),
		support.WithAddon(kodimock.NewAddonData("script.other")),
	)
	require.NoError(t, err)

	return env
}

func newAddon(t *testing.T, env *support.Support, opts ...xbmcaddon.Option) *xbmcaddon.Addon {
	t.Helper()

	opts = append([]xbmcaddon.Option{xbmcaddon.WithOverrides(env.Overrides())}, opts...)

	a, err := xbmcaddon.New(env, opts...)
	require.NoError(t, err)

	return a
}

func TestNew(t *testing.T) {
	env := newEnv(t)

	a := newAddon(t, env)
	assert.Equal(t, testID, a.ID())

	other := newAddon(t, env, xbmcaddon.WithID("script.other"))
	assert.Equal(t, "script.other", other.ID())

	_, err := xbmcaddon.New(env, xbmcaddon.WithID("plugin.missing"))
	assert.Equal(t, kodimock.UnknownAddonError("plugin.missing"), err)

	env.SetPluginID("")

	_, err = xbmcaddon.New(env)
	assert.Equal(t, kodimock.UnknownAddonError(""), err)
}

func TestGetAddonInfo(t *testing.T) {
	a := newAddon(t, newEnv(t))

	assert.Equal(t, "Test", a.GetAddonInfo("name"))
	assert.Equal(t, "1.0.0", a.GetAddonInfo("version"))
	assert.Equal(t, testID, a.GetAddonInfo("id"))
	assert.Equal(t, "special://profile/addon_data/"+testID+"/", a.GetAddonInfo("profile"))
	assert.Empty(t, a.GetAddonInfo("unknown"))
}

func TestGetAddonInfoIDFallback(t *testing.T) {
	data := &kodimock.AddonData{ID: "plugin.bare"}
	env := bareEnv{data: data}

	a, err := xbmcaddon.New(env)
	require.NoError(t, err)

	assert.Equal(t, "plugin.bare", a.GetAddonInfo("id"))
	assert.Empty(t, a.GetAddonInfo("name"))
}

func TestGetLocalizedString(t *testing.T) {
	a := newAddon(t, newEnv(t))

	s, err := a.GetLocalizedString(30001)
	require.NoError(t, err)
	assert.Equal(t, "Hello", s)

	_, err = a.GetLocalizedString(30002)
	assert.Equal(t, kodimock.UnknownStringError(30002), err)
}

func TestGetSetting(t *testing.T) {
	a := newAddon(t, newEnv(t))

	s, err := a.GetSetting("quality")
	require.NoError(t, err)
	assert.Equal(t, "1080p", s)

	s, err = a.GetSettingString("quality")
	require.NoError(t, err)
	assert.Equal(t, "1080p", s)

	_, err = a.GetSetting("missing")
	assert.Equal(t, kodimock.UnknownSettingError("missing"), err)

	_, err = a.GetSettingBool("missing")
	assert.Error(t, err)

	_, err = a.GetSettingInt("missing")
	assert.Error(t, err)

	_, err = a.GetSettingNumber("missing")
	assert.Error(t, err)
}

func TestGetSettingBool(t *testing.T) {
	env := newEnv(t)
	a := newAddon(t, env)

	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "1", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "True", want: false},
		{value: "yes", want: false},
		{value: "", want: false},
	}

	for _, test := range tests {
		a.SetSetting("flag", test.value)

		got, err := a.GetSettingBool("flag")
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "value %q", test.value)
	}
}

func TestGetSettingInt(t *testing.T) {
	a := newAddon(t, newEnv(t))

	i, err := a.GetSettingInt("retries")
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	_, err = a.GetSettingInt("bad")

	var spe *xbmcaddon.SettingParseError
	require.ErrorAs(t, err, &spe)
	assert.Equal(t, "bad", spe.ID)
	assert.Equal(t, "abc", spe.Value)
	assert.Equal(t, xbmcaddon.KindInt, spe.Kind)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = a.GetSettingInt("ratio")
	assert.ErrorAs(t, err, &spe)
}

func TestGetSettingNumber(t *testing.T) {
	a := newAddon(t, newEnv(t))

	f, err := a.GetSettingNumber("ratio")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-9)

	f, err = a.GetSettingNumber("retries")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, f, 1e-9)

	_, err = a.GetSettingNumber("bad")

	var spe *xbmcaddon.SettingParseError
	require.ErrorAs(t, err, &spe)
	assert.Equal(t, xbmcaddon.KindNumber, spe.Kind)
	assert.Contains(t, spe.Error(), "is not a valid number")
}

func TestGetSettingIntSyntax(t *testing.T) {
	a := newAddon(t, newEnv(t))

	tests := []struct {
		value   string
		want    int
		wantErr error
	}{
		{value: "1_000", want: 1000},
		{value: " -1_2_3 ", want: -123},
		{value: "+7", want: 7},
		{value: "007", want: 7},
		{value: "1__000", wantErr: strconv.ErrSyntax},
		{value: "_1", wantErr: strconv.ErrSyntax},
		{value: "1_", wantErr: strconv.ErrSyntax},
		{value: "0x10", wantErr: strconv.ErrSyntax},
		{value: "1.0", wantErr: strconv.ErrSyntax},
		{value: "", wantErr: strconv.ErrSyntax},
		{value: "99999999999999999999999999", wantErr: strconv.ErrRange},
	}

	for _, test := range tests {
		require.True(t, a.SetSetting("value", test.value))

		got, err := a.GetSettingInt("value")
		if test.wantErr != nil {
			var spe *xbmcaddon.SettingParseError
			assert.ErrorAs(t, err, &spe, test.value)
			assert.ErrorIs(t, err, test.wantErr, test.value)

			continue
		}

		require.NoError(t, err, test.value)
		assert.Equal(t, test.want, got, test.value)
	}
}

func TestGetSettingNumberSyntax(t *testing.T) {
	a := newAddon(t, newEnv(t))

	tests := []struct {
		value   string
		want    float64
		wantErr bool
	}{
		{value: "1_000.5", want: 1000.5},
		{value: "1e1_0", want: 1e10},
		{value: " -2.5 ", want: -2.5},
		{value: ".5", want: 0.5},
		{value: "0x1p-2", wantErr: true},
		{value: "-0X10", wantErr: true},
		{value: "1_.5", wantErr: true},
		{value: "1._5", wantErr: true},
		{value: "_1.5", wantErr: true},
		{value: "abc", wantErr: true},
	}

	for _, test := range tests {
		require.True(t, a.SetSetting("value", test.value))

		got, err := a.GetSettingNumber("value")
		if test.wantErr {
			var spe *xbmcaddon.SettingParseError
			assert.ErrorAs(t, err, &spe, test.value)
			assert.ErrorIs(t, err, strconv.ErrSyntax, test.value)

			continue
		}

		require.NoError(t, err, test.value)
		assert.InDelta(t, test.want, got, 1e-9, test.value)
	}

	require.True(t, a.SetSetting("value", "inf"))

	f, err := a.GetSettingNumber("value")
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))
}

func TestOverridePrecedence(t *testing.T) {
	env := newEnv(t)
	a := newAddon(t, env)

	env.Overrides().Set("quality", "720p")

	s, err := a.GetSetting("quality")
	require.NoError(t, err)
	assert.Equal(t, "720p", s)

	env.Overrides().Set("only_override", "42")

	i, err := a.GetSettingInt("only_override")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	// Writes go to the addon settings, never to the override table.
	assert.True(t, a.SetSetting("quality", "480p"))

	s, err = a.GetSetting("quality")
	require.NoError(t, err)
	assert.Equal(t, "720p", s)

	v, _ := env.Overrides().Get("quality")
	assert.Equal(t, "720p", v)

	data, _ := env.Addon(testID)
	assert.Equal(t, "480p", data.Settings["quality"])

	env.Overrides().Reset()

	s, err = a.GetSetting("quality")
	require.NoError(t, err)
	assert.Equal(t, "480p", s)
}

func TestNoOverrides(t *testing.T) {
	env := newEnv(t)
	env.Overrides().Set("quality", "720p")

	a, err := xbmcaddon.New(env)
	require.NoError(t, err)

	s, err := a.GetSetting("quality")
	require.NoError(t, err)
	assert.Equal(t, "1080p", s, "an accessor without override table reads the addon settings")
}

func TestSharedRecord(t *testing.T) {
	env := newEnv(t)
	a1 := newAddon(t, env)
	a2 := newAddon(t, env)

	a1.SetSettingString("shared", "yes")

	s, err := a2.GetSetting("shared")
	require.NoError(t, err)
	assert.Equal(t, "yes", s)
}

func TestTypedSetters(t *testing.T) {
	a := newAddon(t, newEnv(t))

	assert.True(t, a.SetSettingBool("b", true))
	assert.True(t, a.SetSettingInt("i", -12))
	assert.True(t, a.SetSettingNumber("n", 5))
	assert.True(t, a.SetSettingString("s", "text"))

	for id, want := range map[string]string{"b": "true", "i": "-12", "n": "5.0", "s": "text"} {
		got, err := a.GetSetting(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "setting %s", id)
	}

	a.SetSettingBool("b", false)

	got, _ := a.GetSetting("b")
	assert.Equal(t, "false", got)
}

func TestSetSettingIntRoundTrip(t *testing.T) {
	a := newAddon(t, newEnv(t))

	for _, v := range []int{0, 1, -1, 42, math.MaxInt32, math.MinInt32, math.MaxInt, math.MinInt} {
		require.True(t, a.SetSettingInt("i", v))

		got, err := a.GetSettingInt("i")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSetSettingValue(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := newAddon(t, newEnv(t), xbmcaddon.WithLogger(logger))

	tests := []struct {
		kind  xbmcaddon.SettingKind
		value any
		ok    bool
		want  string
	}{
		{kind: xbmcaddon.KindBool, value: true, ok: true, want: "true"},
		{kind: xbmcaddon.KindBool, value: "true", ok: false},
		{kind: xbmcaddon.KindBool, value: 1, ok: false},
		{kind: xbmcaddon.KindInt, value: 7, ok: true, want: "7"},
		{kind: xbmcaddon.KindInt, value: int64(-7), ok: true, want: "-7"},
		{kind: xbmcaddon.KindInt, value: uint8(200), ok: true, want: "200"},
		{kind: xbmcaddon.KindInt, value: "7", ok: false},
		{kind: xbmcaddon.KindInt, value: true, ok: false},
		{kind: xbmcaddon.KindInt, value: 7.0, ok: false},
		{kind: xbmcaddon.KindNumber, value: 2.5, ok: true, want: "2.5"},
		{kind: xbmcaddon.KindNumber, value: float32(0.5), ok: true, want: "0.5"},
		{kind: xbmcaddon.KindNumber, value: 2, ok: false},
		{kind: xbmcaddon.KindString, value: "abc", ok: true, want: "abc"},
		{kind: xbmcaddon.KindString, value: 12, ok: false},
		{kind: xbmcaddon.SettingKind(99), value: "x", ok: false},
	}

	for i, test := range tests {
		id := "v" + strconv.Itoa(i)

		ok := a.SetSettingValue(id, test.kind, test.value)
		assert.Equal(t, test.ok, ok, "SetSettingValue(%s, %v)", test.kind, test.value)

		got, err := a.GetSetting(id)
		if test.ok {
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		} else {
			assert.Error(t, err, "a rejected value must not be stored")
		}
	}

	assert.Contains(t, buf.String(), "setting type mismatch")
	assert.Contains(t, buf.String(), "addon="+testID)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 5, want: "5.0"},
		{v: -5, want: "-5.0"},
		{v: 0, want: "0.0"},
		{v: 1.25, want: "1.25"},
		{v: 0.1, want: "0.1"},
		{v: 1e-5, want: "1e-05"},
		{v: 1e16, want: "1e+16"},
		{v: 123456789, want: "123456789.0"},
		{v: math.Inf(1), want: "inf"},
		{v: math.Inf(-1), want: "-inf"},
		{v: math.NaN(), want: "nan"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, xbmcaddon.FormatNumber(test.v), "FormatNumber(%v)", test.v)
	}
}

func TestSettingKind(t *testing.T) {
	for _, k := range []xbmcaddon.SettingKind{
		xbmcaddon.KindString, xbmcaddon.KindBool, xbmcaddon.KindInt, xbmcaddon.KindNumber,
	} {
		got, ok := xbmcaddon.ParseSettingKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := xbmcaddon.ParseSettingKind("float")
	assert.False(t, ok)
	assert.Equal(t, "unknown", xbmcaddon.SettingKind(42).String())
}

func TestOpenSettings(t *testing.T) {
	a := newAddon(t, newEnv(t))

	assert.NotPanics(t, a.OpenSettings)
}

// bareEnv is an environment serving one addon record as is.
type bareEnv struct {
	data *kodimock.AddonData
}

func (e bareEnv) PluginID() string { return e.data.ID }

func (e bareEnv) Addon(id string) (*kodimock.AddonData, bool) {
	return e.data, id == e.data.ID
}

func (bareEnv) SpecialRoot(string) (string, bool) { return "", false }
