package userop

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// packedUserOperationFixedLen is the length of the ABI encoded head (11 words)
// plus the length words of the four dynamic byte fields.
const packedUserOperationFixedLen = 480

// userOperationArgs is the entry point's UserOperation struct layout.
var userOperationArgs = abi.Arguments{
	{Name: "sender", Type: addressType},
	{Name: "nonce", Type: uint256Type},
	{Name: "initCode", Type: bytesType},
	{Name: "callData", Type: bytesType},
	{Name: "callGasLimit", Type: uint256Type},
	{Name: "verificationGasLimit", Type: uint256Type},
	{Name: "preVerificationGas", Type: uint256Type},
	{Name: "maxFeePerGas", Type: uint256Type},
	{Name: "maxPriorityFeePerGas", Type: uint256Type},
	{Name: "paymasterAndData", Type: bytesType},
	{Name: "signature", Type: bytesType},
}

// Pack returns the ABI encoding of all eleven operation fields in entry point
// struct order, signature included.
func (op *UserOperation) Pack() []byte {
	return mustPack(userOperationArgs,
		op.Sender,
		orZero(op.Nonce),
		op.InitCode,
		op.CallData,
		orZero(op.CallGasLimit),
		orZero(op.VerificationGasLimit),
		orZero(op.PreVerificationGas),
		orZero(op.MaxFeePerGas),
		orZero(op.MaxPriorityFeePerGas),
		op.PaymasterAndData,
		op.Signature,
	)
}

// AbiEncodedSize returns len(op.Pack()) without encoding the operation.
func (op *UserOperation) AbiEncodedSize() int {
	return packedUserOperationFixedLen +
		padLen(op.InitCode) +
		padLen(op.CallData) +
		padLen(op.PaymasterAndData) +
		padLen(op.Signature)
}

// HeapSize returns the unpadded number of bytes held by the dynamic fields.
// It accounts memory, not wire size.
func (op *UserOperation) HeapSize() int {
	return len(op.InitCode) +
		len(op.CallData) +
		len(op.PaymasterAndData) +
		len(op.Signature)
}
