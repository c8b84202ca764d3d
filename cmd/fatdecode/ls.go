package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aligator/fatdecode"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// listEntry is one line of the ls output.
type listEntry struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Name     string    `json:"name" yaml:"name"`
	Size     uint32    `json:"size" yaml:"size"`
	Cluster  uint32    `json:"cluster" yaml:"cluster"`
	Modified time.Time `json:"modified,omitempty" yaml:"modified,omitempty"`
}

func createLsCommand(root *rootOptions) *cobra.Command {
	var format string

	lsCmd := &cobra.Command{
		Use:   "ls [flags] [PATH]",
		Short: "List a directory",
		Long: `List prints the entries of the directory at PATH in the order they are
stored, including the volume label and the "." and ".." entries.`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unsupported --format %q (supported: text, json, yaml)", format)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) > 0 {
				path = args[0]
			}
			return executeLs(cmd, root, path, format)
		},
	}

	lsCmd.Flags().StringVar(&format, "format", "text", "Specify the output format: text, json or yaml")

	return lsCmd
}

func executeLs(cmd *cobra.Command, root *rootOptions, path, format string) error {
	v, err := openVolume(cmd, root)
	if err != nil {
		return err
	}
	defer v.Close()

	dir, err := v.fs.ReadDir(path)
	if err != nil {
		return fmt.Errorf("ls %s: %w", path, err)
	}

	entries, err := dir.Entries()
	if err != nil {
		return fmt.Errorf("ls %s: %w", path, err)
	}

	return writeListing(cmd.OutOrStdout(), entries, format)
}

func writeListing(out io.Writer, entries []*fatdecode.Entry, format string) error {
	if format == "text" {
		for _, e := range entries {
			_, _ = fmt.Fprintf(out, "%v %q %v\n", e.Kind(), e.Name(), e.Size())
		}
		return nil
	}

	listing := make([]listEntry, len(entries))
	for i, e := range entries {
		listing[i] = listEntry{
			Kind:     e.Kind().String(),
			Name:     e.Name(),
			Size:     e.Size(),
			Cluster:  e.Cluster(),
			Modified: e.ModTime(),
		}
	}

	switch format {
	case "json":
		b, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil

	case "yaml":
		b, err := yaml.Marshal(listing)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, _ = fmt.Fprint(out, string(b))
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
