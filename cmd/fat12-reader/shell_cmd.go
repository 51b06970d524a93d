package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/shell"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/logger"
)

// createShellCommand creates the shell subcommand
func createShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell [flags] IMAGE_FILE...",
		Short: "interactively inspect FAT12 image files",
		Long: `Shell mounts each image in turn and reads inspection commands from
standard input against it: geometry, allocation table and directory
dumps, name lookup, chain verification, and file reads. Type help at
the prompt for the command list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: executeShell,
	}
}

// executeShell runs the interactive dispatcher against each image in
// argument order.
func executeShell(cmd *cobra.Command, args []string) error {
	log := logger.Logger()
	base := currentBase()

	for _, imageFile := range args {
		session, err := mountArg(imageFile)
		if err != nil {
			return fmt.Errorf("cannot mount filesystem in %q: %w", imageFile, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Mounted %s\n", imageFile)
		fat12.PrintSummary(cmd.OutOrStdout(), session.Summary())

		err = shell.Run(cmd.InOrStdin(), cmd.OutOrStdout(), session, base)
		session.Unmount()
		if err != nil {
			return err
		}
		log.Infof("unmounted %s", imageFile)
	}

	return nil
}
