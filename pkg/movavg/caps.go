package movavg

import "math/bits"

// MaxAccumulatorBits is the width of the widest fixed integer accumulator
// kind available to the engine. Go guarantees 64-bit kinds on every
// platform and has no 128-bit integer kind.
const MaxAccumulatorBits = 64

// NativeIntBits is the width of the platform's plain int and uint kinds.
const NativeIntBits = bits.UintSize

// HasWideNativeInt reports whether plain int and uint are 64 bits wide on
// this platform and can therefore serve as full-width accumulators.
func HasWideNativeInt() bool {
	return NativeIntBits == 64
}
