package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/limpo1989/growbuf"
)

const pointCount = 1_000_000

type point struct {
	x, y float32
}

func main() {
	points := make([]float32, pointCount*2)
	for i := range points {
		points[i] = rand.Float32()
	}

	// baseline: collect structs, then flatten
	start := time.Now()
	var objs []point
	for i := 0; i < pointCount; i++ {
		if x := points[i*2]; x > 0.5 {
			objs = append(objs, point{x: x, y: points[i*2+1]})
		}
	}
	flat := make([]float32, 0, len(objs)*2)
	for _, p := range objs {
		flat = append(flat, p.x, p.y)
	}
	fmt.Println("slice filter + rebuild:", time.Since(start))

	// streaming filter into a chunked buffer
	start = time.Now()
	buf, err := growbuf.New[float32]()
	if err != nil {
		panic(err)
	}
	defer buf.Release()

	for i := 0; i < pointCount; i++ {
		x := points[i*2]
		if x <= 0.5 {
			continue
		}
		buf.AppendPair(x, points[i*2+1])
	}
	out := buf.Materialize()
	fmt.Println("streaming growable buffer:", time.Since(start))

	fmt.Println("slice filtered count =", len(flat)/2)
	fmt.Println("streaming filtered count =", len(out)/2, "chunks =", buf.Chunks())
}
