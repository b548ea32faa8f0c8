package printer

import (
	"fmt"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares text for the printer: CRLF and lone CR become LF and
// the result is composed to NFC, so that one character is one glyph
// wherever the font has a precomposed form.
func Normalize(s string) (string, error) {
	out, _, err := transform.String(transform.Chain(newlines{}, norm.NFC), s)
	if err != nil {
		return "", fmt.Errorf("printer: normalize text: %w", err)
	}
	return out, nil
}

// newlines is a transform.Transformer mapping "\r\n" and "\r" to "\n".
type newlines struct{ transform.NopResetter }

func (newlines) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != '\r' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		// A trailing '\r' may be the first half of "\r\n".
		if nSrc+1 == len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '\n'
		nDst++
		nSrc++
		if nSrc < len(src) && src[nSrc] == '\n' {
			nSrc++
		}
	}
	return nDst, nSrc, nil
}
