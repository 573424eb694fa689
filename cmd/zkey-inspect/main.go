// zkey-inspect reads a converted zkey container, reports its counters and
// encoded sizes, optionally validates its points and optionally transcodes
// it between the compressed and uncompressed encodings.
package main

import (
	"os"

	flag "github.com/spf13/pflag"
	"github.com/vocdoni/zkey-bridge/log"
	"github.com/vocdoni/zkey-bridge/zkey"
)

func main() {
	var (
		input       = flag.StringP("input", "i", "", "path to the encoded container (required)")
		check       = flag.Bool("check", false, "validate curve points after decoding")
		transcodeTo = flag.String("transcode-to", "", "re-encode the container to this path")
		raw         = flag.Bool("raw", false, "write the transcoded container without point compression")
		logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()
	log.Init(*logLevel, "stdout")

	if *input == "" {
		flag.Usage()
		log.Fatalf("missing required flag --input")
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("while opening input file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("while closing input file: %v", err)
		}
	}()

	var bundle zkey.Bundle
	if _, err := bundle.UnsafeReadFrom(f); err != nil {
		log.Fatalf("while decoding container: %v", err)
	}
	if *check {
		if err := bundle.Check(); err != nil {
			log.Fatalf("container is structurally invalid: %v", err)
		}
		log.Infof("container is structurally valid")
	}

	m := bundle.Matrices()
	log.Infow("constraint matrices",
		"constraints", m.NumConstraints,
		"instanceVariables", m.NumInstanceVariables,
		"witnessVariables", m.NumWitnessVariables,
		"aNonZero", m.ANumNonZero,
		"bNonZero", m.BNumNonZero,
		"cNonZero", m.CNumNonZero,
	)
	log.Infow("encoded sizes",
		"compressed", bundle.BinarySize(false),
		"uncompressed", bundle.BinarySize(true),
	)

	if *transcodeTo == "" {
		return
	}
	out, err := os.Create(*transcodeTo)
	if err != nil {
		log.Fatalf("while creating output file: %v", err)
	}
	n, err := writeBundle(&bundle, out, *raw)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("while writing transcoded container: %v", err)
	}
	log.Infow("container transcoded", "output", *transcodeTo, "bytes", n, "raw", *raw)
}

func writeBundle(b *zkey.Bundle, f *os.File, raw bool) (int64, error) {
	if raw {
		return b.WriteRawTo(f)
	}
	return b.WriteTo(f)
}
