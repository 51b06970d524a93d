package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/security"
)

// Cat command flags
var (
	catOffset int64 = 0  // Byte offset to start reading at
	catLength int64 = -1 // Bytes to read, -1 for the rest of the file
)

// createCatCommand creates the cat subcommand
func createCatCommand() *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "cat [flags] IMAGE_FILE FILE_NAME",
		Short: "read a file out of a FAT12 image",
		Long: `Cat looks FILE_NAME up in the image's root directory, follows its
allocation chain, and writes the selected byte range to standard
output.`,
		Args: cobra.ExactArgs(2),
		RunE: executeCat,
	}

	catCmd.Flags().Int64Var(&catOffset, "offset", 0,
		"byte offset to start reading at")
	catCmd.Flags().Int64Var(&catLength, "length", -1,
		"number of bytes to read (-1 reads to the end of the file)")

	return catCmd
}

func executeCat(cmd *cobra.Command, args []string) error {
	imageFile, fileName := args[0], args[1]
	if err := security.ValidateString("file name", fileName, security.FileNameLimits()); err != nil {
		return err
	}

	session, err := mountArg(imageFile)
	if err != nil {
		return fmt.Errorf("cannot mount filesystem in %q: %w", imageFile, err)
	}
	defer session.Unmount()

	length := catLength
	if length < 0 {
		index, found := session.FindFile(fileName)
		if !found {
			return fmt.Errorf("%w: %s", fat12.ErrFileNotFound, fileName)
		}
		entry, _ := session.DirEntry(index)
		length = int64(entry.Size) - catOffset
		if length <= 0 {
			return nil
		}
	}

	data, err := session.ReadRange(fileName, catOffset, length)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
