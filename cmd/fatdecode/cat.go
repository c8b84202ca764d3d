package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func createCatCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cat PATH",
		Short: "Read a file",
		Long:  `Cat writes the content of the file at PATH to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCat(cmd, root, args[0])
		},
	}
}

func executeCat(cmd *cobra.Command, root *rootOptions, path string) error {
	v, err := openVolume(cmd, root)
	if err != nil {
		return err
	}
	defer v.Close()

	file, err := v.fs.Open(path)
	if err != nil {
		return fmt.Errorf("cat %s: %w", path, err)
	}

	if _, err := io.Copy(cmd.OutOrStdout(), file); err != nil {
		return fmt.Errorf("cat %s: %w", path, err)
	}
	return nil
}
