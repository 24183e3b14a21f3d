package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strkit/strkit/internal/buf"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	var (
		offset int
		length int
	)
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump of a file's content through the container",
		Long: `Loads the file into a byte-string container and prints a hex+ASCII
dump of its content. Negative offsets index backwards from the end, the
same way the editing operations resolve positions.

Example:
  strctl dump blob.bin
  strctl dump blob.bin --offset -64
  strctl dump blob.bin --offset 256 --length 64`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], offset, length)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Start offset (negative counts from the end)")
	cmd.Flags().IntVar(&length, "length", 0, "Number of bytes to dump (0 = to the end)")
	return cmd
}

func runDump(path string, offset, length int) error {
	s, err := loadContainer(path)
	if err != nil {
		return err
	}
	defer s.Free()

	content := s.Bytes()
	start := buf.Clamp(buf.ResolvePos(offset, s.Len()), 0, s.Len())
	end := s.Len()
	if length > 0 {
		end = buf.Clamp(start+length, start, s.Len())
	}

	hexDump(content[start:end], start)
	return nil
}

// hexDump prints 16-byte rows in the classic offset/hex/ASCII format.
func hexDump(data []byte, base int) {
	var b strings.Builder
	for row := 0; row < len(data); row += 16 {
		line := data[row:min(row+16, len(data))]

		fmt.Fprintf(&b, "%08x  ", base+row)
		for i := 0; i < 16; i++ {
			if i == 8 {
				b.WriteByte(' ')
			}
			if i < len(line) {
				fmt.Fprintf(&b, "%02x ", line[i])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" |")
		for _, c := range line {
			if c >= 0x20 && c < 0x7F {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	printInfo("%s", b.String())
}
