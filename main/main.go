package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/bitview"
)

// profiling harness for the hot paths: set/get sweeps and bounded push
// over a fixed buffer
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	buf := make([]byte, 4096)
	m := bitview.NewMut(buf,
		bitview.WithBitOrder(bitview.Msb0),
		bitview.WithByteOrder(bitview.BigEndian))
	for i := 0; i < 10000; i++ {
		for j := uint(0); j < m.Len(); j++ {
			m.Set(j, j%3 == 0)
		}
		var ones int
		for _, b := range m.All() {
			if b {
				ones++
			}
		}
		if ones == 0 {
			log.Fatal("unexpected empty view")
		}
	}

	grow := bitview.NewMut(buf, bitview.WithNumBits(0))
	for grow.Push(true) == nil {
	}
	log.Printf("filled %d bits", grow.Len())

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
