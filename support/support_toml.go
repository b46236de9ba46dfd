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

package support

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/rrosajp/kodi-mock"
)

// fileConfig is the TOML layout of a support file.
type fileConfig struct {
	PluginID  string            `toml:"plugin_id"`
	BaseDir   string            `toml:"base_dir,omitempty"`
	Roots     map[string]string `toml:"roots,omitempty"`
	Overrides map[string]string `toml:"overrides,omitempty"`
	Addons    []fileAddon       `toml:"addons,omitempty"`
}

// fileAddon is the TOML layout of an addon record.
// String ids are TOML keys, so they are written as strings.
type fileAddon struct {
	ID       string            `toml:"id"`
	Info     map[string]string `toml:"info,omitempty"`
	Strings  map[string]string `toml:"strings,omitempty"`
	Settings map[string]string `toml:"settings,omitempty"`
}

// Load reads a TOML support file. Options are applied after the content of the file.
func Load(name string, opts ...Option) (*Support, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	s, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	s.logger.Debug("support loaded", "file", name, "addons", len(s.addons))

	return s, nil
}

// Decode reads a TOML support document from r. Unknown keys are rejected.
// Options are applied after the content of the document.
func Decode(r io.Reader, opts ...Option) (*Support, error) {
	var cfg fileConfig

	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		return nil, err
	}

	fileOpts := []Option{WithPluginID(cfg.PluginID)}

	if cfg.BaseDir != "" {
		fileOpts = append(fileOpts, WithBaseDir(cfg.BaseDir))
	}

	fileOpts = append(fileOpts, WithRoots(cfg.Roots))

	overrides := kodimock.NewOverrides()
	for id, value := range cfg.Overrides {
		overrides.Set(id, value)
	}

	fileOpts = append(fileOpts, WithOverrides(overrides))

	for _, fa := range cfg.Addons {
		data, err := fa.addonData()
		if err != nil {
			return nil, err
		}

		fileOpts = append(fileOpts, WithAddon(data))
	}

	return New(append(fileOpts, opts...)...)
}

func (fa *fileAddon) addonData() (*kodimock.AddonData, error) {
	if fa.ID == "" {
		return nil, ErrEmptyAddonID
	}

	data := kodimock.NewAddonData(fa.ID)

	for k, v := range fa.Info {
		data.Info[k] = v
	}

	for k, v := range fa.Strings {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("addon %s: invalid string id %q: %w", fa.ID, k, err)
		}

		data.Strings[id] = v
	}

	for k, v := range fa.Settings {
		data.Settings[k] = v
	}

	return data, nil
}

// Encode writes s as a TOML support document.
// Default roots of the base directory are not written unless they were overridden.
func (s *Support) Encode(w io.Writer) error {
	cfg := fileConfig{
		PluginID: s.pluginID,
		BaseDir:  s.baseDir,
		Roots:    make(map[string]string, len(s.roots)),
	}

	for name, dir := range s.roots {
		if def, ok := s.defaults[name]; ok && def == dir {
			continue
		}

		cfg.Roots[name] = dir
	}

	if s.overrides.Len() > 0 {
		cfg.Overrides = make(map[string]string, s.overrides.Len())

		for _, id := range s.overrides.IDs() {
			cfg.Overrides[id], _ = s.overrides.Get(id)
		}
	}

	for _, id := range s.Addons() {
		data := s.addons[id]
		fa := fileAddon{
			ID:       id,
			Info:     data.Info,
			Settings: data.Settings,
			Strings:  make(map[string]string, len(data.Strings)),
		}

		for sid, text := range data.Strings {
			fa.Strings[strconv.Itoa(sid)] = text
		}

		cfg.Addons = append(cfg.Addons, fa)
	}

	sort.Slice(cfg.Addons, func(i, j int) bool { return cfg.Addons[i].ID < cfg.Addons[j].ID })

	return toml.NewEncoder(w).SetIndentTables(true).Encode(cfg)
}

// Save writes s as a TOML support file.
func (s *Support) Save(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	return s.Encode(f)
}
