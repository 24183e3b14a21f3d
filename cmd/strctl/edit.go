package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/strkit/strkit/internal/textenc"
)

func init() {
	rootCmd.AddCommand(newEditCmd())
}

func newEditCmd() *cobra.Command {
	var (
		mode     string
		pos      int
		data     string
		dataFile string
		encoding string
		compact  bool
		outPath  string
	)
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Apply an editing operation and write the result",
		Long: `Loads the file into a byte-string container, applies one editing
operation and writes the resulting content to --out (or back to the input
file). Insert displaces existing bytes; overwrite replaces them in place
and only grows when the paste runs past the end. Positions may be
negative: -1 addresses the end.

Example:
  strctl edit blob.bin --mode write --data "tail" --out blob2.bin
  strctl edit blob.bin --mode insert --pos 0 --data-file header.bin
  strctl edit blob.bin --mode overwrite --pos -5 --data "XXXXX" --encoding utf16le`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args[0], mode, pos, data, dataFile, encoding, compact, outPath)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "write", "Operation: write, insert or overwrite")
	cmd.Flags().IntVar(&pos, "pos", -1, "Position for insert/overwrite (negative counts from the end)")
	cmd.Flags().StringVar(&data, "data", "", "Source bytes as a literal string")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Read source bytes from a file")
	cmd.Flags().StringVar(&encoding, "encoding", "utf8", "Transcode --data before writing (utf8, utf16le, utf16be, latin1)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Compact the container before writing the result")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (defaults to the input file)")
	return cmd
}

func runEdit(path, mode string, pos int, data, dataFile, encoding string, compact bool, outPath string) error {
	src, err := sourceBytes(data, dataFile, encoding)
	if err != nil {
		return err
	}

	s, err := loadContainer(path)
	if err != nil {
		return err
	}
	defer s.Free()

	before := s.Len()
	switch mode {
	case "write":
		s.Write(src)
	case "insert":
		s.Insert(src, pos)
	case "overwrite":
		s.Overwrite(src, pos)
	default:
		return fmt.Errorf("unknown mode %q (want write, insert or overwrite)", mode)
	}
	if compact {
		s.Compact()
	}
	slog.Debug("applied edit",
		"mode", mode, "pos", pos, "src_len", len(src),
		"len_before", before, "len_after", s.Len(), "capacity", s.Capa())

	if outPath == "" {
		outPath = path
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	printInfo("%s: %d bytes -> %s: %d bytes\n", path, before, outPath, s.Len())
	return nil
}

// sourceBytes assembles the operation's source from --data or --data-file,
// transcoding literal text when an encoding is named. File input is
// already raw bytes and is never transcoded.
func sourceBytes(data, dataFile, encoding string) ([]byte, error) {
	if data != "" && dataFile != "" {
		return nil, fmt.Errorf("--data and --data-file are mutually exclusive")
	}
	if dataFile != "" {
		return os.ReadFile(dataFile)
	}
	return textenc.Encode(encoding, []byte(data))
}
