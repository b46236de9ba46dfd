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
	"strconv"

	"github.com/rrosajp/kodi-mock/xbmcaddon"
	"github.com/spf13/cobra"
)

func (c *cli) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <key>",
		Short: "Display an addon property (name, version, path, profile, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.addon()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.GetAddonInfo(args[0]))

			return nil
		},
	}
}

func (c *cli) newStringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "string <id>",
		Short: "Display a localized string of the addon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid string id %q: %w", args[0], err)
			}

			a, err := c.addon()
			if err != nil {
				return err
			}

			s, err := a.GetLocalizedString(id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
}

func (c *cli) newSettingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Read or change the settings of the addon",
	}

	cmd.AddCommand(c.newSettingGetCmd(), c.newSettingSetCmd())

	return cmd
}

func (c *cli) newSettingGetCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Display a setting, overrides first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindName)
			if err != nil {
				return err
			}

			a, err := c.addon()
			if err != nil {
				return err
			}

			value, err := getSetting(a, args[0], kind)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)

			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "type", "t", "string", "setting type (string, bool, int, number)")

	return cmd
}

func (c *cli) newSettingSetCmd() *cobra.Command {
	var (
		kindName string
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "set <id> <value>",
		Short: "Change a setting of the addon",
		Long: `Change a setting of the addon.

The value is checked against the setting type. Overrides are never modified,
a setting with an override keeps reading the override value.
With --write the configuration file is rewritten with the new value.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(kindName)
			if err != nil {
				return err
			}

			value, err := parseValue(kind, args[1])
			if err != nil {
				return err
			}

			a, err := c.addon()
			if err != nil {
				return err
			}

			if !a.SetSettingValue(args[0], kind, value) {
				return fmt.Errorf("setting %s: value %q is not a valid %s", args[0], args[1], kind)
			}

			if write {
				err = c.env.Save(c.configPath)
				if err != nil {
					return fmt.Errorf("configuration: %w", err)
				}
			}

			s, _ := a.GetSetting(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "type", "t", "string", "setting type (string, bool, int, number)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the configuration file")

	return cmd
}

func parseKind(name string) (xbmcaddon.SettingKind, error) {
	kind, ok := xbmcaddon.ParseSettingKind(name)
	if !ok {
		return kind, fmt.Errorf("unknown setting type %q", name)
	}

	return kind, nil
}

// getSetting returns the textual form of a setting read with the accessor of kind.
func getSetting(a *xbmcaddon.Addon, id string, kind xbmcaddon.SettingKind) (string, error) {
	switch kind {
	case xbmcaddon.KindBool:
		b, err := a.GetSettingBool(id)

		return strconv.FormatBool(b), err
	case xbmcaddon.KindInt:
		i, err := a.GetSettingInt(id)

		return strconv.Itoa(i), err
	case xbmcaddon.KindNumber:
		f, err := a.GetSettingNumber(id)

		return xbmcaddon.FormatNumber(f), err
	default:
		return a.GetSettingString(id)
	}
}

// parseValue converts a command line value to the Go type of kind.
func parseValue(kind xbmcaddon.SettingKind, s string) (any, error) {
	switch kind {
	case xbmcaddon.KindBool:
		return strconv.ParseBool(s)
	case xbmcaddon.KindInt:
		return strconv.Atoi(s)
	case xbmcaddon.KindNumber:
		return strconv.ParseFloat(s, 64)
	default:
		return s, nil
	}
}
