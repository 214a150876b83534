//go:build amd64
// +build amd64

package simd

import "golang.org/x/sys/cpu"

func detectCPUFeaturesImpl() {
	hasSSE41 = cpu.X86.HasSSE41
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}
