// SPDX-License-Identifier: MIT

package metric_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/steinerkit/metric"
)

func BenchmarkClosure(b *testing.B) {
	g := randomGraph(rand.New(rand.NewSource(1)), 200, 0.03)

	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = metric.Closure(g, identity)
		}
	})
	b.Run("Parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = metric.ClosureParallel(context.Background(), g, identity)
		}
	})
}
