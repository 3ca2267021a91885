package main

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// newProgressBar starts a byte-sized bar on w. stdout is reserved for
// the report, so callers pass stderr.
func newProgressBar(size int64, w io.Writer) *pb.ProgressBar {
	bar := pb.New64(size)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(w)
	return bar.Start()
}
