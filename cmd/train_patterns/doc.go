// Package main provides a demo program for recognizing bitmap letters.
// It trains a single layer pattern associator with the delta rule on the
// bitmaps of a pattern file, then shows it randomly disturbed copies of them
// and reports the recognition rate.
package main
