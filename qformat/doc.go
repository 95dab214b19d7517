// Package qformat provides Q-format fixed-point representation helpers:
// the raw container bounds, the value-of-one and value-of-half constants
// for a format, and conversions between real values and raw fixed point.
//
// A Q-format value is a signed 32-bit integer raw such that the real value
// equals raw / 2^q for q fractional bits. The format is never stored with
// the value; callers pass q alongside, and the same raw integer means
// different real numbers under different formats.
package qformat
