package batch

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestRunFilesAllSucceed(t *testing.T) {
	var counter int64
	jobs := make([]func() error, 20)
	for i := range jobs {
		jobs[i] = func() error {
			atomic.AddInt64(&counter, 1)
			return nil
		}
	}

	errs := RunFiles(4, jobs)
	for i, err := range errs {
		if err != nil {
			t.Fatalf("job %d: unexpected error %v", i, err)
		}
	}
	if counter != int64(len(jobs)) {
		t.Fatalf("ran %d jobs, want %d", counter, len(jobs))
	}
}

func TestRunFilesPreservesPerJobError(t *testing.T) {
	errBoom := errors.New("boom")
	jobs := []func() error{
		func() error { return nil },
		func() error { return errBoom },
		func() error { return nil },
	}

	errs := RunFiles(2, jobs)
	if errs[0] != nil || errs[2] != nil {
		t.Fatal("expected successful jobs to report nil error")
	}
	if !errors.Is(errs[1], errBoom) {
		t.Fatalf("got %v, want %v", errs[1], errBoom)
	}
}

func TestRunFilesDefaultWorkerCount(t *testing.T) {
	errs := RunFiles(DefaultNumWorkers, []func() error{func() error { return nil }})
	if len(errs) != 1 || errs[0] != nil {
		t.Fatal("expected single successful job")
	}
}
