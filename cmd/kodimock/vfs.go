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
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (c *cli) newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <path>...",
		Short: "Translate special paths to real paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := c.fs()
			if err != nil {
				return err
			}

			for _, path := range args {
				realPath, err := fsys.TranslatePath(path)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), realPath)
			}

			return nil
		},
	}
}

func (c *cli) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <path>",
		Short: "List the directories and files of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := c.fs()
			if err != nil {
				return err
			}

			dirs, files, err := fsys.ListDir(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dirColor := color.New(color.FgBlue, color.Bold)

			for _, dir := range dirs {
				fmt.Fprintln(out, dirColor.Sprint(dir+"/"))
			}

			for _, file := range files {
				fmt.Fprintln(out, file)
			}

			return nil
		},
	}
}

func (c *cli) newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Display the metadata of a file or a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := c.fs()
			if err != nil {
				return err
			}

			name, err := fsys.TranslatePath(args[0])
			if err != nil {
				return err
			}

			st, err := fsys.Stat(args[0])
			if err != nil {
				return err
			}

			kind := "file"
			if st.IsDir() {
				kind = "directory"
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "path\t%s\n", name)
			fmt.Fprintf(tw, "type\t%s\n", kind)
			fmt.Fprintf(tw, "size\t%d\n", st.StSize())
			fmt.Fprintf(tw, "mode\t%o\n", st.StMode())
			fmt.Fprintf(tw, "ino\t%d\n", st.StIno())
			fmt.Fprintf(tw, "dev\t%d\n", st.StDev())
			fmt.Fprintf(tw, "nlink\t%d\n", st.StNlink())
			fmt.Fprintf(tw, "uid\t%d\n", st.StUid())
			fmt.Fprintf(tw, "gid\t%d\n", st.StGid())
			fmt.Fprintf(tw, "atime\t%s\n", formatTime(st.StAtime()))
			fmt.Fprintf(tw, "mtime\t%s\n", formatTime(st.StMtime()))
			fmt.Fprintf(tw, "ctime\t%s\n", formatTime(st.StCtime()))

			return tw.Flush()
		},
	}
}

func formatTime(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
