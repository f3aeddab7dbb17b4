package ladder_test

import (
	"testing"

	"github.com/katalvlaran/lexpath/ladder"
)

// BenchmarkSearch_TwoLetters measures a search confined to the cap-2
// state space (26 + 676 words).
func BenchmarkSearch_TwoLetters(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ladder.Search("ab", "yz")
	}
}

// BenchmarkSearch_ThreeLetters measures a longer run over the cap-3
// state space (~18k words).
func BenchmarkSearch_ThreeLetters(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ladder.Search("cat", "dog")
	}
}

// BenchmarkSearch_Exhaust measures a full drain of the cap-1 state space,
// the worst case for a not-found verdict.
func BenchmarkSearch_Exhaust(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = ladder.Search("a", "aa", ladder.WithMaxWordLen(1))
	}
}
