// Package circom models the verification-key JSON document produced by
// SnarkJS and converts it into the typed BN254 verifying key used by the
// rest of the module.
package circom

import (
	"encoding/json"
	"fmt"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/vocdoni/zkey-bridge/keys"
)

// VerificationKey represents the verification key structure output by
// SnarkJS. Coordinates are decimal strings; points are projective with an
// explicit Z coordinate.
type VerificationKey struct {
	Protocol      string       `json:"protocol"`
	Curve         string       `json:"curve"`
	NPublic       int          `json:"nPublic"`
	VkAlpha1      []string     `json:"vk_alpha_1"`
	VkBeta2       [][]string   `json:"vk_beta_2"`
	VkGamma2      [][]string   `json:"vk_gamma_2"`
	VkDelta2      [][]string   `json:"vk_delta_2"`
	IC            [][]string   `json:"IC"`
	VkAlphabeta12 [][][]string `json:"vk_alphabeta_12"` // Not used in verification
}

// UnmarshalVerificationKeyJSON parses the JSON-encoded verification key data
// into a VerificationKey struct.
func UnmarshalVerificationKeyJSON(data []byte) (*VerificationKey, error) {
	var vk VerificationKey
	if err := json.Unmarshal(data, &vk); err != nil {
		return nil, fmt.Errorf("failed to parse verification key JSON: %w", err)
	}
	return &vk, nil
}

// MarshalVerificationKeyJSON marshals the given VerificationKey into
// pretty-printed JSON.
func MarshalVerificationKeyJSON(vk *VerificationKey) ([]byte, error) {
	return json.MarshalIndent(vk, "", "  ")
}

// ToKeys converts the SnarkJS verification key into the typed verifying
// key. It rejects non-groth16 or non-bn128 keys and any coordinate that is
// not a valid curve point.
func (vk *VerificationKey) ToKeys() (*keys.VerifyingKey, error) {
	if vk.Protocol != "groth16" {
		return nil, fmt.Errorf("unsupported protocol %q, expected groth16", vk.Protocol)
	}
	if vk.Curve != "bn128" {
		return nil, fmt.Errorf("unsupported curve %q, expected bn128", vk.Curve)
	}
	if len(vk.IC) != vk.NPublic+1 {
		return nil, fmt.Errorf("IC has %d entries, expected nPublic+1 = %d", len(vk.IC), vk.NPublic+1)
	}

	out := &keys.VerifyingKey{}
	var err error
	if out.AlphaG1, err = g1FromStrings(vk.VkAlpha1); err != nil {
		return nil, fmt.Errorf("while parsing vk_alpha_1: %w", err)
	}
	if out.BetaG2, err = g2FromStrings(vk.VkBeta2); err != nil {
		return nil, fmt.Errorf("while parsing vk_beta_2: %w", err)
	}
	if out.GammaG2, err = g2FromStrings(vk.VkGamma2); err != nil {
		return nil, fmt.Errorf("while parsing vk_gamma_2: %w", err)
	}
	if out.DeltaG2, err = g2FromStrings(vk.VkDelta2); err != nil {
		return nil, fmt.Errorf("while parsing vk_delta_2: %w", err)
	}
	out.GammaABCG1 = make([]curve.G1Affine, len(vk.IC))
	for i, coords := range vk.IC {
		if out.GammaABCG1[i], err = g1FromStrings(coords); err != nil {
			return nil, fmt.Errorf("while parsing IC[%d]: %w", i, err)
		}
	}
	return out, nil
}

func fpFromString(s string) (fp.Element, error) {
	var el fp.Element
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return el, fmt.Errorf("invalid decimal coordinate %q", s)
	}
	if n.Sign() < 0 || n.Cmp(fp.Modulus()) >= 0 {
		return el, fmt.Errorf("coordinate %q outside the base field", s)
	}
	el.SetBigInt(n)
	return el, nil
}

// g1FromStrings builds an affine G1 point from SnarkJS projective
// coordinates [x, y, z] with z expected to be "1", or "0" for the point at
// infinity.
func g1FromStrings(coords []string) (curve.G1Affine, error) {
	var p curve.G1Affine
	if len(coords) != 3 {
		return p, fmt.Errorf("expected 3 projective coordinates, got %d", len(coords))
	}
	switch coords[2] {
	case "0":
		return p, nil // point at infinity
	case "1":
	default:
		return p, fmt.Errorf("unsupported projective z coordinate %q", coords[2])
	}
	var err error
	if p.X, err = fpFromString(coords[0]); err != nil {
		return p, err
	}
	if p.Y, err = fpFromString(coords[1]); err != nil {
		return p, err
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return p, fmt.Errorf("point (%s, %s) is not on G1", coords[0], coords[1])
	}
	return p, nil
}

// g2FromStrings builds an affine G2 point from SnarkJS projective
// coordinates [[x0,x1],[y0,y1],[z0,z1]]; each pair is an Fp2 element
// a0 + a1*i. Z must be one, or zero for the point at infinity.
func g2FromStrings(coords [][]string) (curve.G2Affine, error) {
	var p curve.G2Affine
	if len(coords) != 3 {
		return p, fmt.Errorf("expected 3 projective coordinates, got %d", len(coords))
	}
	for _, pair := range coords {
		if len(pair) != 2 {
			return p, fmt.Errorf("expected 2 components per Fp2 element, got %d", len(pair))
		}
	}
	switch {
	case coords[2][0] == "0" && coords[2][1] == "0":
		return p, nil // point at infinity
	case coords[2][0] == "1" && coords[2][1] == "0":
	default:
		return p, fmt.Errorf("unsupported projective z coordinate [%s, %s]", coords[2][0], coords[2][1])
	}
	var err error
	if p.X.A0, err = fpFromString(coords[0][0]); err != nil {
		return p, err
	}
	if p.X.A1, err = fpFromString(coords[0][1]); err != nil {
		return p, err
	}
	if p.Y.A0, err = fpFromString(coords[1][0]); err != nil {
		return p, err
	}
	if p.Y.A1, err = fpFromString(coords[1][1]); err != nil {
		return p, err
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return p, fmt.Errorf("point is not on G2")
	}
	return p, nil
}
