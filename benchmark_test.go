package stemmers_test

import (
	"fmt"
	"testing"

	stemmers "github.com/andreribeiro87/py-rust-stemmers-tuned"
	"github.com/andreribeiro87/py-rust-stemmers-tuned/cache"
)

// Benchmarks for performance validation

func BenchmarkKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		stemmers.Key("english", "computations")
	}
}

func BenchmarkStemWord_Cached(b *testing.B) {
	s, err := stemmers.New("english")
	if err != nil {
		b.Fatal(err)
	}
	s.StemWord("computations") // prime the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.StemWord("computations")
	}
}

func BenchmarkStemWord_Uncached(b *testing.B) {
	s, err := stemmers.New("english", stemmers.WithCache(cache.NewMemory()))
	if err != nil {
		b.Fatal(err)
	}

	words := make([]string, 1000)
	for i := range words {
		words[i] = fmt.Sprintf("computation%d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.StemWord(words[i%len(words)])
	}
}

func BenchmarkStemWords(b *testing.B) {
	s, err := stemmers.New("english")
	if err != nil {
		b.Fatal(err)
	}

	words := []string{"running", "jumping", "swimming", "coding", "testing"}
	batch := make([]string, 0, len(words)*100)
	for i := 0; i < 100; i++ {
		batch = append(batch, words...)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.StemWords(batch)
	}
}

func BenchmarkStemWordsParallel(b *testing.B) {
	s, err := stemmers.New("english")
	if err != nil {
		b.Fatal(err)
	}

	words := []string{"running", "jumping", "swimming", "coding", "testing"}
	batch := make([]string, 0, len(words)*100)
	for i := 0; i < 100; i++ {
		batch = append(batch, words...)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.StemWordsParallel(batch)
	}
}

func BenchmarkStemWord_ParallelCallers(b *testing.B) {
	s, err := stemmers.New("english")
	if err != nil {
		b.Fatal(err)
	}
	s.StemWord("computations")

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.StemWord("computations")
		}
	})
}
