//go:build arm64
// +build arm64

package simd

func detectCPUFeaturesImpl() {
	hasNEON = true
}
