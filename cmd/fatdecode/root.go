package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aligator/fatdecode"
	"github.com/aligator/fatdecode/internal/logger"
	"github.com/aligator/fatdecode/internal/partition"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// appFs is where the image gets opened from. Tests replace it by a MemMapFs.
var appFs afero.Fs = afero.NewOsFs()

// readPartitions lists the partitions of a whole-disk image.
var readPartitions = partition.Read

type rootOptions struct {
	fat       string
	partition int
	timeout   time.Duration
	verbose   bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fatdecode",
		Short: "Decode FAT32 partitions",
		Long: `fatdecode reads directories and files out of a FAT32 partition image
without mounting it. Nothing is ever written to the image.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitWithSink(logger.Config{Verbose: opts.verbose}, zapcore.AddSync(cmd.ErrOrStderr()))
		},
	}

	addVolumeFlags(rootCmd.PersistentFlags(), opts)
	_ = rootCmd.MarkPersistentFlagRequired("fat")

	rootCmd.AddCommand(
		createLsCommand(opts),
		createCatCommand(opts),
		createGetCommand(opts),
		createInfoCommand(opts),
		createPartitionsCommand(opts),
	)

	return rootCmd
}

func addVolumeFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.StringVarP(&opts.fat, "fat", "f", "", "the path to the FAT partition to decode from")
	flags.IntVar(&opts.partition, "partition", 0,
		"1-based index of the partition to decode if the image is a whole disk, 0 uses the image as it is")
	flags.DurationVar(&opts.timeout, "timeout", 0, "abort if the command takes longer, 0 disables the timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug output")
}

// volume is an opened FAT32 volume together with everything which has to be released.
type volume struct {
	fs        *fatdecode.FS
	partition *partition.Partition

	image  *fatdecode.Image
	cancel context.CancelFunc
}

func (v *volume) Close() error {
	v.cancel()
	return v.image.Close()
}

// openVolume opens the image given by --fat, selects the partition and applies the timeout.
func openVolume(cmd *cobra.Command, opts *rootOptions) (*volume, error) {
	log := logger.Logger()

	image, err := fatdecode.OpenImage(appFs, opts.fat)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}

	v := &volume{image: image}

	var reader fatdecode.Reader = image
	if opts.partition != 0 {
		table, err := readPartitions(opts.fat)
		if err != nil {
			image.Close()
			return nil, err
		}

		p, err := table.Get(opts.partition)
		if err != nil {
			image.Close()
			return nil, err
		}

		log.Debugw("using partition", "index", p.Index, "start", p.Start, "size", p.Size)
		reader = image.Window(p.Start, p.Size)
		v.partition = &p
	}

	ctx := cmd.Context()
	if opts.timeout > 0 {
		ctx, v.cancel = context.WithTimeout(ctx, opts.timeout)
	} else {
		ctx, v.cancel = context.WithCancel(ctx)
	}

	v.fs, err = fatdecode.New(fatdecode.WithContext(ctx, reader), fatdecode.WithLogger(log))
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("decode %s: %w", opts.fat, err)
	}

	return v, nil
}
