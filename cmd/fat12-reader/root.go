package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/blockdev"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/logger"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/security"
)

// imageFs is the filesystem images are opened from. Tests swap in a
// memory filesystem.
var imageFs afero.Fs = afero.NewOsFs()

// Root command flags
var (
	verbose     bool   = false // Raise the log level to debug
	displayBase string = "hex" // Numeric base for diagnostic output
	partitionN  int    = 0     // 1-based partition holding the volume, 0 for a bare image
)

// newRootCommand assembles the CLI.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fat12-reader",
		Short: "read-only FAT12 image inspector",
		Long: `fat12-reader inspects FAT12-formatted storage images (SD cards,
floppy images): filesystem geometry, the 12-bit allocation table, the
root directory, and file content reached by walking allocation chains.
Images are never written to.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetVerbose(verbose)
			_, err := fat12.ParseBase(displayBase)
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&displayBase, "base", "hex",
		"numeric base for diagnostic output (hex or dec)")
	rootCmd.PersistentFlags().IntVar(&partitionN, "partition", 0,
		"1-based partition containing the FAT12 volume (0 = bare image)")

	rootCmd.AddCommand(createInspectCommand())
	rootCmd.AddCommand(createShellCommand())
	rootCmd.AddCommand(createCatCommand())
	rootCmd.AddCommand(createVerifyCommand())

	return rootCmd
}

// currentBase returns the display base selected by the root flag. The
// value was validated in PersistentPreRunE.
func currentBase() fat12.Base {
	base, err := fat12.ParseBase(displayBase)
	if err != nil {
		return fat12.BaseHex
	}
	return base
}

// mountArg mounts one image path argument, resolving the partition base
// offset first when --partition was given.
func mountArg(path string) (*fat12.Session, error) {
	if err := security.ValidateString("image path", path, security.DefaultLimits()); err != nil {
		return nil, err
	}
	var baseOffset int64
	if partitionN > 0 {
		off, err := blockdev.PartitionOffset(path, partitionN)
		if err != nil {
			return nil, err
		}
		baseOffset = off
	}
	return fat12.Mount(imageFs, path, baseOffset)
}
