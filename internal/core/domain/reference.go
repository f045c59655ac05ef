package domain

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

const (
	daesReferencePrefix = "DAES-SET"
	daesSuffixLength    = 6
	daesSuffixCharset   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// DaesReferencePattern matches a well-formed external settlement reference.
var DaesReferencePattern = regexp.MustCompile(`^DAES-SET-\d{8}-[A-Z0-9]{6}$`)

// NewDaesReference generates the externally correlatable reference id with the
// shape DAES-SET-YYYYMMDD-XXXXXX. Downstream systems treat it as opaque beyond
// the date segment; banks and reconciliation reports key off it.
func NewDaesReference(now time.Time) string {
	buf := make([]byte, daesSuffixLength)
	// crypto/rand.Read never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = daesSuffixCharset[int(b)%len(daesSuffixCharset)]
	}
	return fmt.Sprintf("%s-%s-%s", daesReferencePrefix, now.UTC().Format("20060102"), string(buf))
}
