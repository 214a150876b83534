package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xroche/fastlzlib"
)

// listFile scans a compressed stream reading only headers, printing block
// boundaries and cumulative offsets, matching fastlzcat.c's --list mode.
func listFile(opts *options, name string) error {
	in, err := openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()

	hdr := make([]byte, fastlzlib.GetHeaderSize())
	var compressedOffset, originalOffset uint64
	blockIndex := 0
	sawEOF := false

	for {
		if _, err := io.ReadFull(in, hdr); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				if !sawEOF {
					return fmt.Errorf("premature end of stream")
				}
				// Not reached after the sentinel: the loop breaks right
				// after it, and trailing bytes are reported there.
				break
			}
			return err
		}

		compressedLen, originalLen, infoErr := fastlzlib.GetStreamInfo(hdr)
		if infoErr != nil {
			return infoErr
		}

		if compressedLen == 0 && originalLen == 0 {
			sawEOF = true
			if extra, _ := io.Copy(io.Discard, io.LimitReader(in, 1)); extra > 0 {
				return fmt.Errorf("premature EOF before end of stream")
			}
			break
		}

		fmt.Fprintf(os.Stdout, "block %d: compressed=%d original=%d offset=%d/%d\n",
			blockIndex, compressedLen, originalLen, compressedOffset, originalOffset)

		if _, err := io.CopyN(io.Discard, in, int64(compressedLen)); err != nil {
			return fmt.Errorf("premature end of stream")
		}
		compressedOffset += uint64(compressedLen)
		originalOffset += uint64(originalLen)
		blockIndex++
	}

	fmt.Fprintf(os.Stdout, "%s: %d blocks, %d compressed bytes, %d original bytes\n",
		name, blockIndex, compressedOffset, originalOffset)
	return nil
}
