package main

import (
	"flag"
	"log"

	"github.com/Borislavv/char-counter/internal/gen"
)

var (
	size     = flag.Int64("size", 64<<20, "target corpus size in bytes (default 64Mb)")
	seed     = flag.Int64("seed", 1, "generator seed")
	dir      = flag.String("dir", "", "output directory (default: system temp dir)")
	compress = flag.Bool("zstd", false, "write the corpus as a zstd stream")
)

func init() {
	flag.Parse()
}

func main() {
	if *size <= 0 {
		log.Fatalf("invalid size flag: must be > 0 (bytes)")
	}

	if fp, err := gen.TextFile(*dir, *size, *seed, *compress); err != nil {
		log.Fatalf("could not generate corpus file: %v", err)
	} else {
		log.Printf("generated corpus file: %s (target %d bytes)\n", fp, *size)
	}
}
