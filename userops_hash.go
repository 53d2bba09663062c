package userop

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	addressType = mustNewType("address")
	uint256Type = mustNewType("uint256")
	bytes32Type = mustNewType("bytes32")
	bytesType   = mustNewType("bytes")

	// packForHashArgs is the layout the entry point hashes. The dynamic byte
	// fields are committed to by their digests and the signature is left out.
	packForHashArgs = abi.Arguments{
		{Name: "sender", Type: addressType},
		{Name: "nonce", Type: uint256Type},
		{Name: "initCode", Type: bytes32Type},
		{Name: "callData", Type: bytes32Type},
		{Name: "callGasLimit", Type: uint256Type},
		{Name: "verificationGasLimit", Type: uint256Type},
		{Name: "preVerificationGas", Type: uint256Type},
		{Name: "maxFeePerGas", Type: uint256Type},
		{Name: "maxPriorityFeePerGas", Type: uint256Type},
		{Name: "paymasterAndData", Type: bytes32Type},
	}

	opHashArgs = abi.Arguments{
		{Name: "userOpHash", Type: bytes32Type},
		{Name: "entryPoint", Type: addressType},
		{Name: "chainId", Type: uint256Type},
	}
)

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("abi type %s: %v", t, err))
	}
	return typ
}

// mustPack packs statically typed arguments. Packing can only fail on a type
// mismatch between args and values.
func mustPack(args abi.Arguments, values ...interface{}) []byte {
	packed, err := args.Pack(values...)
	if err != nil {
		panic(fmt.Sprintf("abi pack %d arguments: %v", len(args), err))
	}
	return packed
}

// PackForHash returns the ABI encoding of the operation fields the entry point
// commits to, with initCode, callData and paymasterAndData replaced by their
// Keccak-256 digests. The signature is not part of it.
func (op *UserOperation) PackForHash() []byte {
	return mustPack(packForHashArgs,
		op.Sender,
		orZero(op.Nonce),
		crypto.Keccak256Hash(op.InitCode),
		crypto.Keccak256Hash(op.CallData),
		orZero(op.CallGasLimit),
		orZero(op.VerificationGasLimit),
		orZero(op.PreVerificationGas),
		orZero(op.MaxFeePerGas),
		orZero(op.MaxPriorityFeePerGas),
		crypto.Keccak256Hash(op.PaymasterAndData),
	)
}

// OpHash returns the hash the entry point at entryPoint derives for the
// operation on chainID (getUserOpHash). The chain id is encoded as a full
// uint256 word; a nil chain id encodes as zero.
func (op *UserOperation) OpHash(entryPoint common.Address, chainID *big.Int) common.Hash {
	return crypto.Keccak256Hash(mustPack(opHashArgs,
		crypto.Keccak256Hash(op.PackForHash()),
		entryPoint,
		orZero(chainID),
	))
}
