// Package solidity projects a Groth16 verifying key into the data context
// of the Solidity verifier contract and renders the contract. It also
// flattens proofs into the calldata layout the generated contract expects.
package solidity

import (
	"fmt"
	"io"
	"text/template"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/vocdoni/zkey-bridge/keys"
)

// VerifierConfig holds the configuration options for the verifier contract
// generation.
type VerifierConfig struct {
	// PragmaVersion is the Solidity pragma version directive emitted at
	// the top of the generated contract.
	PragmaVersion string
}

// DefaultVerifierConfig returns the default configuration, with pragma
// version "^0.8.0".
func DefaultVerifierConfig() VerifierConfig {
	return VerifierConfig{PragmaVersion: "^0.8.0"}
}

// VerifierContext is the data context fed into the verifier contract
// template: the public subset of the proving key plus the renderer
// configuration. It owns copies of every point, so rendering can never
// observe later mutations of the source key.
type VerifierContext struct {
	Config VerifierConfig
	VK     keys.VerifyingKey

	// The pairing check uses beta, gamma and delta negated; the negation
	// is precomputed here, on copies, so the template stays arithmetic
	// free.
	BetaNeg  curve.G2Affine
	GammaNeg curve.G2Affine
	DeltaNeg curve.G2Affine
}

// Project extracts the verifier context from a verifying key. The key is
// read only; projecting the same key twice with the same configuration
// yields equal contexts.
func Project(vk *keys.VerifyingKey, config VerifierConfig) (*VerifierContext, error) {
	if len(vk.GammaABCG1) == 0 {
		return nil, fmt.Errorf("verifying key has an empty instance-commitment vector")
	}
	ctx := &VerifierContext{
		Config: config,
		VK: keys.VerifyingKey{
			AlphaG1:    vk.AlphaG1,
			BetaG2:     vk.BetaG2,
			GammaG2:    vk.GammaG2,
			DeltaG2:    vk.DeltaG2,
			GammaABCG1: append([]curve.G1Affine(nil), vk.GammaABCG1...),
		},
	}
	ctx.BetaNeg.Neg(&vk.BetaG2)
	ctx.GammaNeg.Neg(&vk.GammaG2)
	ctx.DeltaNeg.Neg(&vk.DeltaG2)
	return ctx, nil
}

// NumPublic returns the number of public inputs the generated contract
// verifies against, excluding the constant wire.
func (ctx *VerifierContext) NumPublic() int {
	return len(ctx.VK.GammaABCG1) - 1
}

var verifierTmpl = template.Must(template.New("verifier").Funcs(template.FuncMap{
	"sub": func(a, b int) int { return a - b },
	"mul": func(a, b int) int { return a * b },
}).Parse(verifierTemplate))

// Render writes the verifier contract to w. Identical contexts always
// produce byte-identical output; any template failure is returned to the
// caller.
func (ctx *VerifierContext) Render(w io.Writer) error {
	if err := verifierTmpl.Execute(w, ctx); err != nil {
		return fmt.Errorf("while rendering verifier contract: %w", err)
	}
	return nil
}
