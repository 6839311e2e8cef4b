//go:build rp2040

package rp2

// GPIO0..GPIO29.
const maxPin = 29
