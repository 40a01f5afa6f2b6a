// Package cpu detects the SIMD extensions used to pick a vector kernel.
//
// Detection runs once, lazily, on the first call to DetectFeatures and is
// cached. Tests can pin a feature set with SetForcedFeatures.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel names a SIMD instruction set extension.
// Levels are not comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone means the pure Go kernels.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDAVX is x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 is x86-64 AVX-512F.
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Lanes32 returns how many float32 values one register of the level holds.
func (s SIMDLevel) Lanes32() int {
	switch s {
	case SIMDSSE2, SIMDNEON:
		return 4
	case SIMDAVX, SIMDAVX2:
		return 8
	case SIMDAVX512:
		return 16
	default:
		return 1
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool

	// arm64
	HasNEON bool

	// ForceGeneric disables every SIMD kernel (testing/debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// String lists the detected extensions, e.g. "amd64: SSE2 AVX AVX2 FMA".
func (f Features) String() string {
	var parts []string
	add := func(ok bool, name string) {
		if ok {
			parts = append(parts, name)
		}
	}
	add(f.HasSSE2, "SSE2")
	add(f.HasAVX, "AVX")
	add(f.HasAVX2, "AVX2")
	add(f.HasAVX512, "AVX-512")
	add(f.HasFMA, "FMA")
	add(f.HasNEON, "NEON")
	add(f.ForceGeneric, "(forced generic)")

	if len(parts) == 0 {
		return f.Architecture + ": none"
	}
	return f.Architecture + ": " + strings.Join(parts, " ")
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
// It is safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features can run kernels built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
