// sol-extractor takes a circom verification key and generates a Solidity
// verifier contract for BN254 Groth16 proofs. The contract layout follows
// gnark's Groth16 verifier.
package main

import (
	"bytes"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/vocdoni/zkey-bridge/circom"
	"github.com/vocdoni/zkey-bridge/log"
	"github.com/vocdoni/zkey-bridge/solidity"
)

func main() {
	var (
		input         = flag.StringP("input", "i", "", "path to the circom verification key (required)")
		output        = flag.StringP("output", "o", "", "output path for the Solidity file; stdout if omitted")
		pragmaVersion = flag.String("pragma-version", "^0.8.0", "pragma version of the Solidity contract")
		logLevel      = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()
	log.Init(*logLevel, "stderr")

	if *input == "" {
		flag.Usage()
		log.Fatalf("missing required flag --input")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("while opening input file: %v", err)
	}
	circomVk, err := circom.UnmarshalVerificationKeyJSON(data)
	if err != nil {
		log.Fatalf("while parsing verification key: %v", err)
	}
	vk, err := circomVk.ToKeys()
	if err != nil {
		log.Fatalf("while converting verification key: %v", err)
	}

	ctx, err := solidity.Project(vk, solidity.VerifierConfig{PragmaVersion: *pragmaVersion})
	if err != nil {
		log.Fatalf("while projecting verifier context: %v", err)
	}
	var rendered bytes.Buffer
	if err := ctx.Render(&rendered); err != nil {
		log.Fatalf("while rendering verifier contract: %v", err)
	}

	if *output == "" {
		if _, err := os.Stdout.Write(rendered.Bytes()); err != nil {
			log.Fatalf("while writing to stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, rendered.Bytes(), 0o644); err != nil {
		log.Fatalf("while writing output file: %v", err)
	}
	log.Infow("verifier contract generated", "output", *output, "publicInputs", ctx.NumPublic())
}
