package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Report container state for a file's content",
		Long: `Loads the file into a byte-string container and reports its state:
content length, capacity, layout (inline or heap) and terminator check.

Example:
  strctl info blob.bin
  strctl info blob.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	return cmd
}

type containerInfo struct {
	Path     string `json:"path"`
	Length   int    `json:"length"`
	Capacity int    `json:"capacity"`
	Inline   bool   `json:"inline"`
	Frozen   bool   `json:"frozen"`
}

func runInfo(path string) error {
	printVerbose("Loading file: %s\n", path)

	s, err := loadContainer(path)
	if err != nil {
		return err
	}
	defer s.Free()

	info := containerInfo{
		Path:     path,
		Length:   s.Len(),
		Capacity: s.Capa(),
		Inline:   s.IsInline(),
		Frozen:   s.Frozen(),
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("Path:      %s\n", info.Path)
	printInfo("Length:    %d bytes\n", info.Length)
	printInfo("Capacity:  %d bytes\n", info.Capacity)
	layout := "heap"
	if info.Inline {
		layout = "inline"
	}
	printInfo("Layout:    %s\n", layout)
	printInfo("Frozen:    %t\n", info.Frozen)
	return nil
}
