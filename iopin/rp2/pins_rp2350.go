//go:build rp2350

package rp2

// GPIO0..GPIO47 on RP2350B. On RP2350A the upper lines are not bonded out;
// accesses to them are harmless but read low.
const maxPin = 47
