package solidity

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
)

// ProofCalldata is a Groth16 proof flattened into the (A, B, C) word layout
// the generated verifier contract expects. The G2 point B carries its Fp2
// coefficients in the big-endian order of the pairing precompile.
type ProofCalldata struct {
	Ar  [2]*big.Int    `json:"Ar"`
	Bs  [2][2]*big.Int `json:"Bs"`
	Krs [2]*big.Int    `json:"Krs"`
}

// NewProofCalldata flattens a gnark BN254 Groth16 proof into calldata
// words.
func NewProofCalldata(proof groth16.Proof) (*ProofCalldata, error) {
	g16proof, ok := proof.(*groth16_bn254.Proof)
	if !ok {
		return nil, fmt.Errorf("expected groth16_bn254.Proof, got %T", proof)
	}
	return &ProofCalldata{
		Ar: [2]*big.Int{
			g16proof.Ar.X.BigInt(new(big.Int)),
			g16proof.Ar.Y.BigInt(new(big.Int)),
		},
		Bs: [2][2]*big.Int{
			{
				g16proof.Bs.X.A1.BigInt(new(big.Int)),
				g16proof.Bs.X.A0.BigInt(new(big.Int)),
			},
			{
				g16proof.Bs.Y.A1.BigInt(new(big.Int)),
				g16proof.Bs.Y.A0.BigInt(new(big.Int)),
			},
		},
		Krs: [2]*big.Int{
			g16proof.Krs.X.BigInt(new(big.Int)),
			g16proof.Krs.Y.BigInt(new(big.Int)),
		},
	}, nil
}

// String returns a JSON representation of the proof calldata. Useful for
// debugging or logging. If marshalling fails, it returns an empty JSON
// object as a string.
func (p *ProofCalldata) String() string {
	jsonProof, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(jsonProof)
}

// ABIEncode encodes the proof calldata to an ABI-encoded byte slice
// matching the verifier's uint256[8] proof argument.
func (p *ProofCalldata) ABIEncode() ([]byte, error) {
	proofArr := [8]*big.Int{
		p.Ar[0],
		p.Ar[1],
		p.Bs[0][0],
		p.Bs[0][1],
		p.Bs[1][0],
		p.Bs[1][1],
		p.Krs[0],
		p.Krs[1],
	}

	proofType, err := abi.NewType("uint256[8]", "", nil)
	if err != nil {
		return nil, err
	}
	arguments := abi.Arguments{{Type: proofType}}
	return arguments.Pack(proofArr)
}
