package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/security"
)

// createVerifyCommand creates the verify subcommand
func createVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [flags] IMAGE_FILE FILE_NAME",
		Short: "verify a file's allocation chain",
		Long: `Verify walks FILE_NAME's allocation chain and checks that it agrees
with the file length declared in the root directory and ends on an
end-of-chain marker.`,
		Args: cobra.ExactArgs(2),
		RunE: executeVerify,
	}
}

func executeVerify(cmd *cobra.Command, args []string) error {
	imageFile, fileName := args[0], args[1]
	if err := security.ValidateString("file name", fileName, security.FileNameLimits()); err != nil {
		return err
	}

	session, err := mountArg(imageFile)
	if err != nil {
		return fmt.Errorf("cannot mount filesystem in %q: %w", imageFile, err)
	}
	defer session.Unmount()

	result, err := session.VerifyFile(fileName)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fileName, result)
	return nil
}
