package variational_test

import (
	"testing"

	"github.com/lightcone/treeqaoa/variational"
)

// BenchmarkEdgeExpectation_P1 measures one objective evaluation at p = 1.
func BenchmarkEdgeExpectation_P1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := variational.EdgeExpectation(3, 5, []float64{0.7}, []float64{1.3}); err != nil {
			b.Fatalf("evaluate: %v", err)
		}
	}
}

// BenchmarkEdgeExpectation_P2 measures one objective evaluation at p = 2.
func BenchmarkEdgeExpectation_P2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := variational.EdgeExpectation(3, 5,
			[]float64{0.7, 1.1}, []float64{1.3, 0.4}); err != nil {
			b.Fatalf("evaluate: %v", err)
		}
	}
}

// BenchmarkEvaluateBatch measures the concurrent sweep over 32 schedules.
func BenchmarkEvaluateBatch(b *testing.B) {
	params := make([][]float64, 32)
	for i := range params {
		params[i] = []float64{0.1 * float64(i%7), 0.2 * float64(i%5)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := variational.EvaluateBatch(3, 4, params); err != nil {
			b.Fatalf("batch: %v", err)
		}
	}
}
