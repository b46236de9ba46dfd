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
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/rrosajp/kodi-mock/support"
	"github.com/rrosajp/kodi-mock/vfs/osfs"
	"github.com/rrosajp/kodi-mock/vfs/rofs"
	"github.com/rrosajp/kodi-mock/xbmcaddon"
	"github.com/rrosajp/kodi-mock/xbmcvfs"
	"github.com/spf13/cobra"
)

const defaultConfig = "kodimock.toml"

// cli holds the persistent flags and the environment loaded from the configuration file.
type cli struct {
	configPath string
	addonID    string
	verbose    bool
	noColor    bool

	env *support.Support
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "kodimock",
		Short: "Inspect and prepare a mock Kodi addon environment",
		Long: `kodimock loads a mock Kodi environment from a TOML file (active addon,
installed addons, special roots and setting overrides) and gives access to it
the way addon code does through xbmcaddon and xbmcvfs.

Examples:
  # Translate a special path
  kodimock translate special://profile/addon_data/plugin.video.example

  # Read a setting of the active addon as an integer
  kodimock setting get retries --type int

  # Create the directories of all special roots
  kodimock --config test/kodimock.toml provision`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd.ErrOrStderr(), c.verbose)

			if c.noColor {
				color.NoColor = true
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", defaultConfig, "configuration file")
	flags.StringVarP(&c.addonID, "addon", "a", "", "addon id (default is the active addon)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		c.newTranslateCmd(),
		c.newLsCmd(),
		c.newStatCmd(),
		c.newInfoCmd(),
		c.newStringCmd(),
		c.newSettingCmd(),
		c.newProvisionCmd(),
		newVersionCmd(),
	)

	return cmd
}

// load returns the environment of the configuration file, loading it once.
func (c *cli) load() (*support.Support, error) {
	if c.env != nil {
		return c.env, nil
	}

	env, err := support.Load(c.configPath, support.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	c.env = env

	return env, nil
}

// fs returns the xbmcvfs accessor of the environment on a read only view of the host file system.
func (c *cli) fs() (*xbmcvfs.FS, error) {
	env, err := c.load()
	if err != nil {
		return nil, err
	}

	vfs := rofs.New(osfs.New(osfs.WithLogger(slog.Default())))

	return xbmcvfs.New(env, xbmcvfs.WithVFS(vfs), xbmcvfs.WithLogger(slog.Default())), nil
}

// addon returns the xbmcaddon accessor of the selected addon.
func (c *cli) addon() (*xbmcaddon.Addon, error) {
	env, err := c.load()
	if err != nil {
		return nil, err
	}

	opts := []xbmcaddon.Option{
		xbmcaddon.WithOverrides(env.Overrides()),
		xbmcaddon.WithLogger(slog.Default()),
	}

	if c.addonID != "" {
		opts = append(opts, xbmcaddon.WithID(c.addonID))
	}

	return xbmcaddon.New(env, opts...)
}
