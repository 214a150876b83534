package simd

import (
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	f := Detect()
	t.Logf("CPU features: SSE4.1=%v AVX2=%v AVX512=%v NEON=%v", f.HasSSE41, f.HasAVX2, f.HasAVX512, f.HasNEON)

	switch runtime.GOARCH {
	case "arm64":
		if !f.HasNEON {
			t.Error("NEON should be available on all ARM64 processors")
		}
	}
}

func TestBestTierAndName(t *testing.T) {
	tier := BestTier()
	if tier < TierGeneric || tier > TierWidest {
		t.Fatalf("BestTier returned invalid tier: %d", tier)
	}

	names := map[Tier]string{TierGeneric: "generic", TierWide: "wide", TierWidest: "widest"}
	for tier, want := range names {
		if got := TierName(tier); got != want {
			t.Errorf("TierName(%d) = %q, want %q", tier, got, want)
		}
	}
}
