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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rrosajp/kodi-mock"
	"github.com/rrosajp/kodi-mock/support"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
plugin_id = "plugin.video.test"

[overrides]
quality = "720p"

[[addons]]
id = "plugin.video.test"

[addons.info]
name = "Test"

[addons.strings]
30001 = "Hello"

[addons.settings]
quality = "1080p"
retries = "3"

[[addons]]
id = "script.other"
`

// writeConfig writes a configuration file with its base directory in a temporary directory.
func writeConfig(t *testing.T) (configPath, baseDir string) {
	t.Helper()

	dir := t.TempDir()
	baseDir = filepath.Join(dir, "kodi")
	configPath = filepath.Join(dir, "kodimock.toml")

	content := "base_dir = '" + baseDir + "'\n" + testConfig
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath, baseDir
}

// run executes the command line and returns its standard output.
func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color", "--config", configPath}, args...))

	err := cmd.Execute()

	return stdout.String(), err
}

func TestTranslate(t *testing.T) {
	configPath, baseDir := writeConfig(t)

	out, err := run(t, configPath, "translate", "special://profile/addon_data/plugin.video.test", "/real/path")
	require.NoError(t, err)

	want := filepath.Join(baseDir, "userdata", "addon_data", "plugin.video.test") + "\n/real/path\n"
	assert.Equal(t, want, out)

	out, err = run(t, configPath, "translate", "special://profile/addon_data/plugin.video.test/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(baseDir, "userdata", "addon_data", "plugin.video.test")+string(filepath.Separator)+"\n", out)

	_, err = run(t, configPath, "translate", "special://unknown/x")
	assert.ErrorIs(t, err, kodimock.ErrUnknownRoot)

	_, err = run(t, configPath, "translate")
	assert.Error(t, err)
}

func TestProvisionLs(t *testing.T) {
	configPath, baseDir := writeConfig(t)

	out, err := run(t, configPath, "provision")
	require.NoError(t, err)
	assert.Contains(t, out, "special://temp/ -> "+filepath.Join(baseDir, "temp"))

	info, err := os.Stat(filepath.Join(baseDir, "userdata", "addon_data", "script.other"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "userdata", "guisettings.xml"), nil, 0o600))

	out, err = run(t, configPath, "ls", "special://profile/")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"Database/", "Thumbnails/", "addon_data/", "guisettings.xml"}, lines)

	_, err = run(t, configPath, "ls", "special://profile/missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStat(t *testing.T) {
	configPath, baseDir := writeConfig(t)

	_, err := run(t, configPath, "provision")
	require.NoError(t, err)

	out, err := run(t, configPath, "stat", "special://home/")
	require.NoError(t, err)
	assert.Contains(t, out, "path   "+baseDir+string(filepath.Separator)+"\n")
	assert.Contains(t, out, "type   directory\n")

	_, err = run(t, configPath, "stat", "special://home/missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInfoString(t *testing.T) {
	configPath, _ := writeConfig(t)

	out, err := run(t, configPath, "info", "name")
	require.NoError(t, err)
	assert.Equal(t, "Test\n", out)

	out, err = run(t, configPath, "--addon", "script.other", "info", "id")
	require.NoError(t, err)
	assert.Equal(t, "script.other\n", out)

	_, err = run(t, configPath, "--addon", "plugin.missing", "info", "id")
	assert.Equal(t, kodimock.UnknownAddonError("plugin.missing"), err)

	out, err = run(t, configPath, "string", "30001")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)

	_, err = run(t, configPath, "string", "30002")
	assert.Equal(t, kodimock.UnknownStringError(30002), err)

	_, err = run(t, configPath, "string", "abc")
	assert.ErrorContains(t, err, "invalid string id")
}

func TestSettingGet(t *testing.T) {
	configPath, _ := writeConfig(t)

	out, err := run(t, configPath, "setting", "get", "quality")
	require.NoError(t, err)
	assert.Equal(t, "720p\n", out, "overrides take precedence")

	out, err = run(t, configPath, "setting", "get", "retries", "--type", "int")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = run(t, configPath, "setting", "get", "retries", "--type", "number")
	require.NoError(t, err)
	assert.Equal(t, "3.0\n", out)

	out, err = run(t, configPath, "setting", "get", "retries", "--type", "bool")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, err = run(t, configPath, "setting", "get", "quality", "--type", "int")
	assert.Error(t, err)

	_, err = run(t, configPath, "setting", "get", "retries", "--type", "float")
	assert.ErrorContains(t, err, "unknown setting type")

	_, err = run(t, configPath, "setting", "get", "missing")
	assert.Equal(t, kodimock.UnknownSettingError("missing"), err)
}

func TestSettingSet(t *testing.T) {
	configPath, _ := writeConfig(t)

	out, err := run(t, configPath, "setting", "set", "retries", "5", "--type", "int")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	env, err := support.Load(configPath)
	require.NoError(t, err)

	data, _ := env.Addon("plugin.video.test")
	assert.Equal(t, "3", data.Settings["retries"], "the file is unchanged without --write")

	_, err = run(t, configPath, "setting", "set", "retries", "5", "--type", "int", "--write")
	require.NoError(t, err)

	env, err = support.Load(configPath)
	require.NoError(t, err)

	data, _ = env.Addon("plugin.video.test")
	assert.Equal(t, "5", data.Settings["retries"])

	v, _ := env.Overrides().Get("quality")
	assert.Equal(t, "720p", v, "overrides are written back unchanged")

	out, err = run(t, configPath, "setting", "set", "enabled", "1", "--type", "bool")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, err = run(t, configPath, "setting", "set", "retries", "abc", "--type", "int")
	assert.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing.toml"), "info", "name")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "configuration")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "unused.toml", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "kodimock")
	assert.Contains(t, out, "https://github.com/rrosajp/kodi-mock")
}
