package main

import (
	"fmt"

	"github.com/aligator/fatdecode/internal/partition"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// volumeInfo is printed by the info command.
type volumeInfo struct {
	Label             string               `yaml:"label"`
	OEMName           string               `yaml:"oemName"`
	BytesPerSector    uint16               `yaml:"bytesPerSector"`
	SectorsPerCluster uint8                `yaml:"sectorsPerCluster"`
	ReservedSectors   uint16               `yaml:"reservedSectors"`
	NumFATs           uint8                `yaml:"numFATs"`
	FATSize           uint32               `yaml:"fatSize"`
	TotalSectors      uint32               `yaml:"totalSectors"`
	FirstDataSector   uint32               `yaml:"firstDataSector"`
	RootCluster       uint32               `yaml:"rootCluster"`
	Partition         *partition.Partition `yaml:"partition,omitempty"`
}

func createInfoCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the volume geometry",
		Long:  `Info prints the volume label and the geometry read from the boot sector.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := openVolume(cmd, root)
			if err != nil {
				return err
			}
			defer v.Close()

			g := v.fs.Geometry()
			info := volumeInfo{
				Label:             v.fs.Label(),
				OEMName:           g.OEMName,
				BytesPerSector:    g.BytesPerSector,
				SectorsPerCluster: g.SectorsPerCluster,
				ReservedSectors:   g.ReservedSectors,
				NumFATs:           g.NumFATs,
				FATSize:           g.FATSize,
				TotalSectors:      g.TotalSectors,
				FirstDataSector:   g.FirstDataSector,
				RootCluster:       g.RootCluster,
				Partition:         v.partition,
			}

			b, err := yaml.Marshal(info)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func createPartitionsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "partitions",
		Short: "List the partitions of a whole-disk image",
		Long: `Partitions prints the partition table of the image, so that the index
for --partition can be looked up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := readPartitions(root.fat)
			if err != nil {
				return err
			}

			b, err := yaml.Marshal(table)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
