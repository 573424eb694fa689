// Package keys models the Groth16 proving and verifying keys in the layout
// of the circom zkey export: a verifying-key component plus the
// witness-indexed query vectors, over BN254.
package keys

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// VerifyingKey is the public subset of the proving key needed to check a
// proof. GammaABCG1 is the instance-commitment vector; its entry 0 belongs
// to the constant-one wire.
type VerifyingKey struct {
	AlphaG1 curve.G1Affine
	BetaG2  curve.G2Affine
	GammaG2 curve.G2Affine
	DeltaG2 curve.G2Affine

	GammaABCG1 []curve.G1Affine
}

// ProvingKey is the full Groth16 proving key. The query vectors keep the
// witness index order of the source export: entry i of AQuery belongs to
// witness index i.
type ProvingKey struct {
	VK VerifyingKey

	BetaG1  curve.G1Affine
	DeltaG1 curve.G1Affine

	AQuery   []curve.G1Affine
	BG1Query []curve.G1Affine
	BG2Query []curve.G2Affine
	HQuery   []curve.G1Affine
	LQuery   []curve.G1Affine
}

// Check validates that every point of the verifying key is in its prime
// order subgroup. It is the explicit counterpart of the validation that
// ReadFrom performs and UnsafeReadFrom skips.
func (vk *VerifyingKey) Check() error {
	if err := checkG1("alpha_g1", &vk.AlphaG1); err != nil {
		return err
	}
	if err := checkG2("beta_g2", &vk.BetaG2); err != nil {
		return err
	}
	if err := checkG2("gamma_g2", &vk.GammaG2); err != nil {
		return err
	}
	if err := checkG2("delta_g2", &vk.DeltaG2); err != nil {
		return err
	}
	return checkG1Vec("gamma_abc_g1", vk.GammaABCG1)
}

// Check validates every point of the proving key, query vectors included.
func (pk *ProvingKey) Check() error {
	if err := pk.VK.Check(); err != nil {
		return err
	}
	if err := checkG1("beta_g1", &pk.BetaG1); err != nil {
		return err
	}
	if err := checkG1("delta_g1", &pk.DeltaG1); err != nil {
		return err
	}
	if err := checkG1Vec("a_query", pk.AQuery); err != nil {
		return err
	}
	if err := checkG1Vec("b_g1_query", pk.BG1Query); err != nil {
		return err
	}
	for i := range pk.BG2Query {
		if err := checkG2(fmt.Sprintf("b_g2_query[%d]", i), &pk.BG2Query[i]); err != nil {
			return err
		}
	}
	if err := checkG1Vec("h_query", pk.HQuery); err != nil {
		return err
	}
	return checkG1Vec("l_query", pk.LQuery)
}

func checkG1(name string, p *curve.G1Affine) error {
	if p.IsInfinity() {
		return nil
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return fmt.Errorf("%s is not in the G1 subgroup", name)
	}
	return nil
}

func checkG2(name string, p *curve.G2Affine) error {
	if p.IsInfinity() {
		return nil
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return fmt.Errorf("%s is not in the G2 subgroup", name)
	}
	return nil
}

func checkG1Vec(name string, v []curve.G1Affine) error {
	for i := range v {
		if err := checkG1(fmt.Sprintf("%s[%d]", name, i), &v[i]); err != nil {
			return err
		}
	}
	return nil
}
