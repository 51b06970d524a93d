package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/fat12"
	"github.com/AaronAmelink/CIS3110-Fat12-Reader/internal/utils/logger"
)

// Inspect command flags
var (
	outputFormat string = "text" // Output format for the inspection results
	prettyJSON   bool   = false  // Pretty-print JSON output
	dumpTable    bool   = false  // Include the allocation table dump (text only)
	dumpRootDir  bool   = false  // Include the root directory dump (text only)
)

// createInspectCommand creates the inspect subcommand
func createInspectCommand() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect [flags] IMAGE_FILE...",
		Short: "inspect FAT12 image files",
		Long: `Inspect mounts each image, reports the filesystem geometry derived
from its boot sector (allocation table layout, root directory capacity,
data region), and optionally dumps the allocation table and root
directory.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch outputFormat {
			case "text", "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unsupported --format %q (supported: text, json, yaml)", outputFormat)
			}
		},
		RunE: executeInspect,
	}

	inspectCmd.Flags().StringVar(&outputFormat, "format", "text",
		"Specify the output format for the inspection results")
	inspectCmd.Flags().BoolVar(&prettyJSON, "pretty", false,
		"Pretty-print JSON output (only for --format json)")
	inspectCmd.Flags().BoolVar(&dumpTable, "fat", false,
		"Dump the allocation table (only for --format text)")
	inspectCmd.Flags().BoolVar(&dumpRootDir, "dir", false,
		"Dump the root directory (only for --format text)")

	return inspectCmd
}

// executeInspect handles the inspect command execution logic
func executeInspect(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	for _, imageFile := range args {
		log.Infof("Inspecting image file: %s", imageFile)

		session, err := mountArg(imageFile)
		if err != nil {
			return fmt.Errorf("cannot mount filesystem in %q: %w", imageFile, err)
		}

		err = writeInspectionResult(cmd, session, outputFormat, prettyJSON)
		session.Unmount()
		if err != nil {
			return err
		}
	}

	return nil
}

func writeInspectionResult(cmd *cobra.Command, session *fat12.Session, format string, pretty bool) error {
	out := cmd.OutOrStdout()
	summary := session.Summary()

	switch format {
	case "text":
		fat12.PrintSummary(out, summary)
		if dumpTable {
			fmt.Fprintln(out)
			session.DumpTable(out, currentBase())
		}
		if dumpRootDir {
			fmt.Fprintln(out)
			session.DumpRootDir(out, currentBase())
		}
		return nil

	case "json":
		var (
			b   []byte
			err error
		)
		if pretty {
			b, err = json.MarshalIndent(summary, "", "  ")
		} else {
			b, err = json.Marshal(summary)
		}
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil

	case "yaml":
		b, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
