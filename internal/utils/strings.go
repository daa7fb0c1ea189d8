package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

var csvFieldReplacer = strings.NewReplacer(",", " ", "\n", " ", "\r", " ")

// CSVField sanitizes a free-text value for the non-quoting CSV format:
// delimiters and embedded newlines are replaced with spaces, never quoted.
func CSVField(s string) string {
	return csvFieldReplacer.Replace(s)
}

// Truncate cuts a string to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
