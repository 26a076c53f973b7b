/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package idf

import "strings"

var (
	encoder = func() *strings.Replacer {
		args := make([]string, 0, len(encodings)*2)
		for _, e := range encodings {
			args = append(args, e.char, e.code)
		}
		return strings.NewReplacer(args...)
	}()
	decoder = func() *strings.Replacer {
		args := make([]string, 0, len(encodings)*2)
		for _, e := range encodings {
			args = append(args, e.code, e.char)
		}
		return strings.NewReplacer(args...)
	}()
)

// Encode returns value in the form it is stored and printed: line breaks,
// separators and comment marks are replaced by character references.
//
// Ampersand is not escaped, so that text stays compatible with files of other
// tools. Value which already contains a reference like "&#44" is decoded to the
// referenced character, it does not survive the round trip
func Encode(value string) string {
	return encoder.Replace(value)
}

// Decode is the inverse of Encode
func Decode(value string) string {
	if !strings.Contains(value, "&#") {
		return value
	}
	return decoder.Replace(value)
}
