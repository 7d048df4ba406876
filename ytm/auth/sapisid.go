package auth

import (
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// SAPISIDHash builds the rolling cookie authorization header value. The hash
// is timestamp-bound, so it must be recomputed for every request; the server
// rejects stale timestamps.
func SAPISIDHash(sapisid, origin string) string {
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	return "SAPISIDHASH " + ts + "_" + sapisidDigest(ts, sapisid, origin)
}

func sapisidDigest(ts, sapisid, origin string) string {
	sum := sha1.Sum([]byte(ts + " " + sapisid + " " + origin)) //nolint:gosec

	return hex.EncodeToString(sum[:])
}

func sapisidFromCookie(cookie string) (string, error) {
	for part := range strings.SplitSeq(cookie, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		if name == "__Secure-3PAPISID" {
			return value, nil
		}
	}

	return "", ErrMissingSAPISID
}

// Header values copied from a browser occasionally carry non-ASCII text
// (e.g. a localized accept-language). Percent-encode anything outside
// printable ASCII, leaving the rest untouched.
func encodeHeaderValue(v string) string {
	ascii := true
	for _, r := range v {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			ascii = false
			break
		}
	}
	if ascii {
		return v
	}

	var b strings.Builder
	for _, c := range []byte(v) {
		if c > 0x20 && c < 0x7f {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}

	return b.String()
}
