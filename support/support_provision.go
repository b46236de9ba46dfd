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
	"context"
	"log/slog"
	"path/filepath"

	"github.com/rrosajp/kodi-mock"
	"golang.org/x/sync/errgroup"
)

// maxProvisionWorkers is the maximum number of directories created concurrently by Provision.
const maxProvisionWorkers = 4

// DefaultRoots returns the special roots of a portable Kodi installation in base.
func DefaultRoots(base string) map[string]string {
	userdata := filepath.Join(base, "userdata")
	addons := filepath.Join(base, "addons")
	temp := filepath.Join(base, "temp")

	return map[string]string{
		"home":          base,
		"xbmc":          filepath.Join(base, "xbmc"),
		"masterprofile": userdata,
		"profile":       userdata,
		"userdata":      userdata,
		"database":      filepath.Join(userdata, "Database"),
		"thumbnails":    filepath.Join(userdata, "Thumbnails"),
		"addons":        addons,
		"packages":      filepath.Join(addons, "packages"),
		"temp":          temp,
		"logpath":       temp,
	}
}

// Provision creates the directory of every special root in vfs,
// and the addon_data directory of every installed addon when the profile root is known.
func (s *Support) Provision(ctx context.Context, vfs kodimock.VFS) error {
	dirs := make([]string, 0, len(s.roots)+len(s.defaults)+len(s.addons))

	for _, name := range s.RootNames() {
		dir, _ := s.SpecialRoot(name)
		dirs = append(dirs, dir)
	}

	if profile, ok := s.SpecialRoot("profile"); ok {
		for _, id := range s.Addons() {
			dirs = append(dirs, vfs.Join(profile, "addon_data", id))
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxProvisionWorkers)

	for _, dir := range dirs {
		dir := dir

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			s.logger.Debug("provision", slog.String("dir", dir))

			return vfs.MkdirAll(dir, kodimock.DefaultDirPerm)
		})
	}

	return g.Wait()
}
