package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/xroche/fastlzlib"
	"github.com/xroche/fastlzlib/internal/batch"
)

// run is the outer file loop, mirroring fastlzcat.c: every positional file
// (or stdin if none given) is processed through its own freshly
// initialized Stream. With --jobs > 1 and more than one file, files run through
// internal/batch instead of sequentially; each still gets its own Stream.
func run(opts *options, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}

	if opts.list {
		for _, f := range files {
			if err := listFile(opts, f); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
		}
		return nil
	}

	backend := fastlzlib.BackEndFastLZ
	if opts.useLZ4 {
		backend = fastlzlib.BackEndLZ4
	}
	level := fastlzlib.LevelBest
	if opts.fast {
		level = fastlzlib.LevelFast
	}

	singleOutput := opts.output != "" && opts.output != "-"
	if singleOutput && len(files) > 1 {
		return fmt.Errorf("--output requires a single input file")
	}

	jobFns := make([]func() error, len(files))
	for i, f := range files {
		f := f
		jobFns[i] = func() error {
			return processFile(opts, backend, level, f)
		}
	}

	if opts.jobs > 1 && len(files) > 1 {
		errs := batch.RunFiles(opts.jobs, jobFns)
		for i, err := range errs {
			if err != nil {
				return fmt.Errorf("%s: %w", files[i], err)
			}
		}
		return nil
	}

	for i, fn := range jobFns {
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}
	}
	return nil
}

func processFile(opts *options, backend fastlzlib.BackEnd, level int, name string) error {
	in, err := openInput(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(opts, name)
	if err != nil {
		return err
	}
	defer out.Close()

	r := bufio.NewReaderSize(in, opts.inBufSize)
	w := bufio.NewWriterSize(out, opts.outBufSize)

	s := &fastlzlib.Stream{}
	if opts.decompress {
		if err := s.DecompressInit(opts.blockSize); err != nil {
			return err
		}
	} else {
		if err := s.CompressInit(level, opts.blockSize); err != nil {
			return err
		}
		if err := s.SetCompressor(backend); err != nil {
			return err
		}
	}
	defer s.End()

	inBuf := make([]byte, opts.inBufSize)
	outBuf := make([]byte, opts.outBufSize)

	flush := fastlzlib.FlushNone
	if opts.flush {
		flush = fastlzlib.FlushSync
	}

	eof := false
	for {
		if len(s.NextIn) == 0 && !eof {
			n, rerr := r.Read(inBuf)
			if n > 0 {
				s.NextIn = inBuf[:n]
			}
			if rerr == io.EOF {
				eof = true
			} else if rerr != nil {
				return rerr
			}
		}

		s.NextOut = outBuf

		wantFlush := flush
		if eof && !opts.decompress {
			wantFlush = fastlzlib.FlushFinish
		}

		var status fastlzlib.Status
		if opts.decompress {
			status, err = s.Decompress()
		} else {
			status, err = s.Compress(wantFlush)
		}

		if produced := len(outBuf) - len(s.NextOut); produced > 0 {
			if _, werr := w.Write(outBuf[:produced]); werr != nil {
				return werr
			}
		}

		if status == fastlzlib.StreamEnd {
			break
		}
		if err != nil {
			return fmt.Errorf("%s (%s)", s.Msg, status)
		}
		if eof && len(s.NextIn) == 0 && status == fastlzlib.Ok && opts.decompress {
			return fmt.Errorf("premature end of stream")
		}
	}

	return w.Flush()
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func openOutput(opts *options, inputName string) (io.WriteCloser, error) {
	dest := opts.output
	if opts.stdout || inputName == "-" {
		dest = "-"
	}
	if dest == "-" || dest == "" {
		if dest == "" {
			return nil, fmt.Errorf("no output destination; pass --output, --stdout, or use stdin")
		}
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(dest)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
