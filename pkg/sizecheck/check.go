// Package sizecheck holds the file-size suite. Size is advisory: the suite
// never fails.
package sizecheck

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vertti/pagecheck/pkg/artifact"
	"github.com/vertti/pagecheck/pkg/check"
)

// SuiteName is the file-size suite name.
const SuiteName = "file-size"

var printer = message.NewPrinter(language.English)

// Suite returns the file-size checks in run order.
func Suite(good, acceptable uint64) check.Suite {
	return check.Suite{
		Name: SuiteName,
		Checks: []check.Checker{
			&TierCheck{Good: good, Acceptable: acceptable},
			&CompressedCheck{},
			&DigestCheck{},
		},
	}
}

// FormatBytes renders a size as "121 KiB (123,456 bytes)".
func FormatBytes(n uint64) string {
	return printer.Sprintf("%s (%d bytes)", humanize.IBytes(n), n)
}

// TierCheck buckets the artifact size: below Good is good, below
// Acceptable is acceptable, anything larger warns.
type TierCheck struct {
	Good       uint64
	Acceptable uint64
}

// Name returns the result name.
func (c *TierCheck) Name() string { return "size: artifact" }

// Run stats the artifact.
func (c *TierCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	size, err := t.Size()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}
	n := uint64(size)

	switch {
	case n < c.Good:
		return []check.Result{check.Passf(c.Name(), "%s, good", FormatBytes(n))}
	case n < c.Acceptable:
		return []check.Result{check.Passf(c.Name(), "%s, acceptable", FormatBytes(n)).
			WithDetailf("consider trimming below %s", humanize.IBytes(c.Good))}
	default:
		return []check.Result{check.Warnf(c.Name(), "%s, large", FormatBytes(n)).
			WithDetailf("limit for acceptable size is %s", humanize.IBytes(c.Acceptable))}
	}
}

// CompressedCheck reports the gzip-compressed size, which is roughly what
// a browser downloads.
type CompressedCheck struct{}

// Name returns the result name.
func (c *CompressedCheck) Name() string { return "size: gzip" }

// Run compresses the artifact in memory.
func (c *CompressedCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	data, err := t.Bytes()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}

	n, err := gzipSize(data)
	if err != nil {
		return []check.Result{check.Infof(c.Name(), "compression failed: %v", err)}
	}
	ratio := 0.0
	if len(data) > 0 {
		ratio = float64(n) / float64(len(data)) * 100
	}
	return []check.Result{check.Infof(c.Name(), "%s (%.0f%% of original)", humanize.IBytes(uint64(n)), ratio)}
}

func gzipSize(data []byte) (int, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// DigestCheck reports a BLAKE3 digest of the artifact so runs over the same
// content can be matched up.
type DigestCheck struct{}

// Name returns the result name.
func (c *DigestCheck) Name() string { return "size: digest" }

// Run hashes the artifact.
func (c *DigestCheck) Run(_ context.Context, t *artifact.Target) []check.Result {
	data, err := t.Bytes()
	if err != nil {
		return []check.Result{check.Unreadable(c.Name(), err)}
	}
	return []check.Result{check.Info(c.Name(), fmt.Sprintf("blake3:%s", Digest(data)))}
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
