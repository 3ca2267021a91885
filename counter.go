package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// stdinPath 表示从标准输入读取
const stdinPath = "-"

// counter reads one input and tallies the letters in it.
type counter struct {
	encoding string
	progress bool
	stdin    io.Reader
	stderr   io.Writer
	log      *logrus.Logger
}

// countFile opens path, counts its letters and closes it again before
// returning. Errors from the file itself are returned unwrapped so the
// *fs.PathError (and the path it names) reaches the caller.
func (c *counter) countFile(path string) (*Tally, error) {
	var in io.Reader
	var bar *pb.ProgressBar
	if path == stdinPath {
		in = c.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f

		if c.progress {
			if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
				bar = newProgressBar(fi.Size(), c.stderr)
				in = bar.NewProxyReader(f)
			}
		}
	}

	var tally *Tally
	var runes int
	dec, err := decodeReader(in, c.encoding)
	if err == nil {
		tally, runes, err = countLetters(dec)
	}
	// bar 与日志共用 stderr，先停掉渲染协程再写日志
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, err
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	c.log.WithFields(logrus.Fields{
		"path":    path,
		"runes":   runes,
		"letters": tally.Total(),
		"unique":  tally.Len(),
	}).Debug("input counted")
	return tally, nil
}

// countLetters scans r rune by rune. Invalid UTF-8 comes back from
// ReadRune as unicode.ReplacementChar, which is not a letter.
func countLetters(r io.Reader) (*Tally, int, error) {
	tally := NewTally()
	br := bufio.NewReader(r)
	runes := 0
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, runes, err
		}
		runes++
		if unicode.IsLetter(ch) {
			tally.Add(ch)
		}
	}
	return tally, runes, nil
}

func isUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8", "unicode-1-1-utf-8":
		return true
	}
	return false
}

// decodeReader converts r from the named encoding to UTF-8.
func decodeReader(r io.Reader, label string) (io.Reader, error) {
	if isUTF8(label) {
		return r, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
