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

	"github.com/rrosajp/kodi-mock/vfs/osfs"
	"github.com/spf13/cobra"
)

func (c *cli) newProvisionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provision",
		Short: "Create the directories of the special roots and of the addon data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := c.load()
			if err != nil {
				return err
			}

			err = env.Provision(cmd.Context(), osfs.New(osfs.WithLogger(slog.Default())))
			if err != nil {
				return fmt.Errorf("provision: %w", err)
			}

			out := cmd.OutOrStdout()

			for _, name := range env.RootNames() {
				dir, _ := env.SpecialRoot(name)
				fmt.Fprintf(out, "special://%s/ -> %s\n", name, dir)
			}

			return nil
		},
	}
}
