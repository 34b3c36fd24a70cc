// Package stemmers provides multi-language Snowball word stemming backed by a
// process-wide result cache.
//
// Every stemmer handle for every language shares one lazily created cache, so
// repeated words cost a single algorithm invocation no matter which handle,
// goroutine, or call shape asked first. Single-word, batch, and parallel batch
// calls all observe the same cache and return identical results.
//
// Basic usage:
//
//	import (
//	    stemmers "github.com/andreribeiro87/py-rust-stemmers-tuned"
//	)
//
//	func main() {
//	    s, err := stemmers.New("english")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(s.StemWord("computations")) // comput
//
//	    roots := s.StemWordsParallel([]string{"running", "jumping", "running"})
//	    fmt.Println(roots) // [run jump run]
//	}
package stemmers
