package main

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/aligator/fatdecode/internal/logger"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func createGetCommand(root *rootOptions) *cobra.Command {
	var showProgress bool

	getCmd := &cobra.Command{
		Use:   "get [flags] PATH [DEST]",
		Short: "Copy a file out of the image",
		Long: `Get copies the file at PATH to DEST on the host. DEST defaults to the
base name of PATH in the current directory and is overwritten if it exists.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := path.Base(args[0])
			if len(args) > 1 {
				dest = args[1]
			}
			return executeGet(cmd, root, args[0], dest, showProgress)
		},
	}

	getCmd.Flags().BoolVar(&showProgress, "progress", false, "show a progress bar on stderr")

	return getCmd
}

func executeGet(cmd *cobra.Command, root *rootOptions, src, dest string, showProgress bool) error {
	v, err := openVolume(cmd, root)
	if err != nil {
		return err
	}
	defer v.Close()

	file, err := v.fs.Open(src)
	if err != nil {
		return fmt.Errorf("get %s: %w", src, err)
	}

	out, err := appFs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer out.Close()

	var w io.Writer = out
	if showProgress {
		bar := progressbar.NewOptions64(int64(file.Size()),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription(path.Base(src)),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		w = io.MultiWriter(out, bar)
	}

	written, err := io.Copy(w, file)
	if err != nil {
		return fmt.Errorf("get %s: %w", src, err)
	}

	logger.Logger().Debugw("copied file", "src", src, "dest", dest, "bytes", written)
	return out.Close()
}
