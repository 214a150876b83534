// Command fastlzcat compresses, decompresses, or lists fastlzlib streams,
// one independent Stream per input file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	compress   bool
	decompress bool
	list       bool

	useLZ4 bool
	fast   bool

	inBufSize  int
	outBufSize int
	blockSize  int
	flush      bool

	output string
	stdout bool

	jobs int
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	var useFastLZ, normal bool

	cmd := &cobra.Command{
		Use:   "fastlzcat [files...]",
		Short: "Streaming block-framed compressor/decompressor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if useFastLZ {
				opts.useLZ4 = false
			}
			if normal {
				opts.fast = false
			}
			return run(opts, args)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.compress, "compress", false, "compress input (default)")
	flags.BoolVarP(&opts.decompress, "decompress", "d", false, "decompress input")
	flags.BoolVar(&opts.decompress, "uncompress", false, "alias for --decompress")
	flags.BoolVarP(&opts.list, "list", "l", false, "list block boundaries of a compressed stream")

	flags.BoolVar(&opts.useLZ4, "lz4", false, "use the LZ4 back-end")
	flags.BoolVar(&useFastLZ, "fastlz", false, "use the FastLZ back-end (default)")
	flags.BoolVar(&opts.fast, "fast", false, "fastest compression level")
	flags.BoolVar(&normal, "normal", false, "normal compression level (default)")

	flags.IntVar(&opts.inBufSize, "inbufsize", 64*1024, "input buffer size in bytes")
	flags.IntVar(&opts.outBufSize, "outbufsize", 64*1024, "output buffer size in bytes")
	flags.IntVar(&opts.blockSize, "blocksize", 256*1024, "target uncompressed block size in bytes")
	flags.BoolVar(&opts.flush, "flush", false, "sync-flush every write instead of buffering a full block")

	flags.StringVarP(&opts.output, "output", "o", "", "output file, or - for standard output")
	flags.BoolVarP(&opts.stdout, "stdout", "c", false, "write to standard output")
	flags.BoolVar(&opts.stdout, "to-stdout", false, "alias for --stdout")

	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "number of files to process concurrently")

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fastlzcat: %v\n", err)
		os.Exit(1)
	}
}
