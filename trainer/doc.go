// Package trainer runs a complete recognition experiment: it trains a pattern
// associator on the original bitmaps, derives randomly disturbed test samples
// from them and reports how many of those the network recognizes.
package trainer
