package graph

import "testing"

func BenchmarkBuild80(b *testing.B) {
	pts := randomPoints(1, 80, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(pts, 3.5)
	}
}

func BenchmarkBuildGrid80(b *testing.B) {
	pts := randomPoints(1, 80, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildGrid(pts, 3.5)
	}
}

func BenchmarkBuild400(b *testing.B) {
	pts := randomPoints(1, 400, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(pts, 3.5)
	}
}

func BenchmarkBuildGrid400(b *testing.B) {
	pts := randomPoints(1, 400, 15)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BuildGrid(pts, 3.5)
	}
}
