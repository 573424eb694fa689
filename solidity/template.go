package solidity

// verifierTemplate renders the Groth16 verifier contract for BN254. The
// contract layout follows gnark's Solidity verifier: verifying-key points
// are inlined as uint256 constants (G2 points negated ahead of time) and
// verification runs the MSM and pairing precompiles over an uncompressed
// 256-byte proof.
const verifierTemplate = `
{{- $numPublic := sub (len .VK.GammaABCG1) 1 -}}
// SPDX-License-Identifier: MIT

pragma solidity {{.Config.PragmaVersion}};

/// @title Groth16 verifier template.
/// @notice Supports verifying Groth16 proofs in uncompressed (256 bytes)
/// format over BN254.
contract Verifier {

    /// Some of the provided public input values are larger than the field modulus.
    /// @dev Public input elements are not automatically reduced, as this can be
    /// a dangerous source of bugs.
    error PublicInputNotInField();

    /// The proof is invalid.
    /// @dev This can mean that provided Groth16 proof points are not on their
    /// curves, that pairing equation fails, or that the proof is not for the
    /// provided public input.
    error ProofInvalid();

    // Addresses of precompiles
    uint256 constant PRECOMPILE_ADD = 0x06;
    uint256 constant PRECOMPILE_MUL = 0x07;
    uint256 constant PRECOMPILE_VERIFY = 0x08;

    // Base field Fp order P and scalar field Fr order R.
    uint256 constant P = 0x30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47;
    uint256 constant R = 0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001;

    // Groth16 alpha point in G1
    uint256 constant ALPHA_X = {{.VK.AlphaG1.X.String}};
    uint256 constant ALPHA_Y = {{.VK.AlphaG1.Y.String}};

    // Groth16 beta point in G2 in powers of i, negated
    uint256 constant BETA_NEG_X_0 = {{.BetaNeg.X.A0.String}};
    uint256 constant BETA_NEG_X_1 = {{.BetaNeg.X.A1.String}};
    uint256 constant BETA_NEG_Y_0 = {{.BetaNeg.Y.A0.String}};
    uint256 constant BETA_NEG_Y_1 = {{.BetaNeg.Y.A1.String}};

    // Groth16 gamma point in G2 in powers of i, negated
    uint256 constant GAMMA_NEG_X_0 = {{.GammaNeg.X.A0.String}};
    uint256 constant GAMMA_NEG_X_1 = {{.GammaNeg.X.A1.String}};
    uint256 constant GAMMA_NEG_Y_0 = {{.GammaNeg.Y.A0.String}};
    uint256 constant GAMMA_NEG_Y_1 = {{.GammaNeg.Y.A1.String}};

    // Groth16 delta point in G2 in powers of i, negated
    uint256 constant DELTA_NEG_X_0 = {{.DeltaNeg.X.A0.String}};
    uint256 constant DELTA_NEG_X_1 = {{.DeltaNeg.X.A1.String}};
    uint256 constant DELTA_NEG_Y_0 = {{.DeltaNeg.Y.A0.String}};
    uint256 constant DELTA_NEG_Y_1 = {{.DeltaNeg.Y.A1.String}};

    // Constant and public input points
    {{- $k0 := index .VK.GammaABCG1 0}}
    uint256 constant CONSTANT_X = {{$k0.X.String}};
    uint256 constant CONSTANT_Y = {{$k0.Y.String}};
    {{- range $i, $ki := .VK.GammaABCG1}}
    {{- if gt $i 0}}
    uint256 constant PUB_{{sub $i 1}}_X = {{$ki.X.String}};
    uint256 constant PUB_{{sub $i 1}}_Y = {{$ki.Y.String}};
    {{- end}}
    {{- end}}

    /// Compute the public input linear combination.
    /// @notice Reverts with PublicInputNotInField if the input is not reduced.
    /// @param input The public inputs, reduced modulo R.
    /// @return x The X coordinate of the resulting G1 point.
    /// @return y The Y coordinate of the resulting G1 point.
    function publicInputMSM(uint256[{{$numPublic}}] calldata input)
    internal view returns (uint256 x, uint256 y) {
        // The scalar multiplications and additions run on the ECMUL and
        // ECADD precompiles, starting from the constant wire point.
        bool success = true;
        assembly ("memory-safe") {
            let f := mload(0x40)
            mstore(f, CONSTANT_X)
            mstore(add(f, 0x20), CONSTANT_Y)
            {{- range $i, $ki := .VK.GammaABCG1}}
            {{- if gt $i 0}}
            mstore(add(f, 0x40), PUB_{{sub $i 1}}_X)
            mstore(add(f, 0x60), PUB_{{sub $i 1}}_Y)
            {
                let s := calldataload(add(input.offset, {{mul (sub $i 1) 32}}))
                success := and(success, lt(s, R))
                mstore(add(f, 0x80), s)
                success := and(success, staticcall(gas(), PRECOMPILE_MUL, add(f, 0x40), 0x60, add(f, 0x40), 0x40))
                success := and(success, staticcall(gas(), PRECOMPILE_ADD, f, 0x80, f, 0x40))
            }
            {{- end}}
            {{- end}}
            x := mload(f)
            y := mload(add(f, 0x20))
        }
        if (!success) {
            revert PublicInputNotInField();
        }
    }

    /// Verify an uncompressed Groth16 proof.
    /// @notice Reverts with InvalidProof if the proof is invalid or
    /// with PublicInputNotInField if the public input is not reduced.
    /// @param proof the points (A, B, C) in EIP-197 format.
    /// @param input the public input field elements in the scalar field Fr.
    function verifyProof(uint256[8] calldata proof, uint256[{{$numPublic}}] calldata input)
    public view {
        (uint256 x, uint256 y) = publicInputMSM(input);

        // Note: The precompile expects the F2 coefficients in big-endian order.
        // Note: The pairing precompile rejects unreduced values, so we won't check that here.
        bool success;
        assembly ("memory-safe") {
            let f := mload(0x40) // Free memory pointer.

            // Copy points (A, B, C) to memory. They are already in correct encoding.
            // This is pairing e(A, B) and G1 of e(C, -delta).
            calldatacopy(f, proof, 0x100)

            // Complete e(C, -delta) and write e(alpha, -beta), e(L_pub, -gamma) to memory.
            mstore(add(f, 0x100), DELTA_NEG_X_1)
            mstore(add(f, 0x120), DELTA_NEG_X_0)
            mstore(add(f, 0x140), DELTA_NEG_Y_1)
            mstore(add(f, 0x160), DELTA_NEG_Y_0)
            mstore(add(f, 0x180), ALPHA_X)
            mstore(add(f, 0x1a0), ALPHA_Y)
            mstore(add(f, 0x1c0), BETA_NEG_X_1)
            mstore(add(f, 0x1e0), BETA_NEG_X_0)
            mstore(add(f, 0x200), BETA_NEG_Y_1)
            mstore(add(f, 0x220), BETA_NEG_Y_0)
            mstore(add(f, 0x240), x)
            mstore(add(f, 0x260), y)
            mstore(add(f, 0x280), GAMMA_NEG_X_1)
            mstore(add(f, 0x2a0), GAMMA_NEG_X_0)
            mstore(add(f, 0x2c0), GAMMA_NEG_Y_1)
            mstore(add(f, 0x2e0), GAMMA_NEG_Y_0)

            // Check pairing equation.
            success := staticcall(gas(), PRECOMPILE_VERIFY, f, 0x300, f, 0x20)
            // Also check returned value (both are either 1 or 0).
            success := and(success, mload(f))
        }
        if (!success) {
            // Either proof or verification key invalid.
            // We assume the contract is correctly generated, so the verification key is valid.
            revert ProofInvalid();
        }
    }
}
`
