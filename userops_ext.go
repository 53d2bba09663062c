// This file defines the JSON wire form and the printable form of a
// UserOperation.
//
// The JSON form is the one bundlers exchange over RPC:
//
//	{
//	  "sender": "0x...",
//	  "nonce": "0x22ee",
//	  "initCode": "0x...",
//	  ...
//	  "signature": "0x..."
//	}
//
// Quantities are 0x-prefixed minimal hex, byte fields 0x-prefixed hex.

package userop

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
)

// BodyOfUserOps represents the body of an HTTP request carrying user operations.
type BodyOfUserOps struct {
	UserOps []*UserOperation `json:"user_ops" binding:"required,dive"`
}

type userOperationError string

func (e userOperationError) Error() string {
	return string(e)
}

// Define error constants
const (
	ErrInvalidSender     userOperationError = "invalid sender address"
	ErrInvalidQuantity   userOperationError = "invalid uint256 quantity"
	ErrUnknownEntityType userOperationError = "unknown entity type"
)

// MarshalJSON encodes the operation in the bundler RPC JSON form.
// Nil quantities are written as 0x0.
func (op *UserOperation) MarshalJSON() ([]byte, error) {
	return json.Marshal(userOperationJSON{
		Sender:               op.Sender.Hex(),
		Nonce:                (*hexutil.Big)(orZero(op.Nonce)),
		InitCode:             hexBytes(op.InitCode),
		CallData:             hexBytes(op.CallData),
		CallGasLimit:         (*hexutil.Big)(orZero(op.CallGasLimit)),
		VerificationGasLimit: (*hexutil.Big)(orZero(op.VerificationGasLimit)),
		PreVerificationGas:   (*hexutil.Big)(orZero(op.PreVerificationGas)),
		MaxFeePerGas:         (*hexutil.Big)(orZero(op.MaxFeePerGas)),
		MaxPriorityFeePerGas: (*hexutil.Big)(orZero(op.MaxPriorityFeePerGas)),
		PaymasterAndData:     hexBytes(op.PaymasterAndData),
		Signature:            hexBytes(op.Signature),
	})
}

// hexBytes keeps empty byte fields encoded as "0x" rather than null.
func hexBytes(b []byte) hexutil.Bytes {
	if b == nil {
		return hexutil.Bytes{}
	}
	return b
}

// UnmarshalJSON does the reverse of MarshalJSON. Missing quantities are left nil.
func (op *UserOperation) UnmarshalJSON(data []byte) error {
	var aux userOperationJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if !common.IsHexAddress(aux.Sender) {
		return fmt.Errorf("%w: %q", ErrInvalidSender, aux.Sender)
	}

	*op = UserOperation{
		Sender:               common.HexToAddress(aux.Sender),
		Nonce:                aux.Nonce.ToInt(),
		InitCode:             aux.InitCode,
		CallData:             aux.CallData,
		CallGasLimit:         aux.CallGasLimit.ToInt(),
		VerificationGasLimit: aux.VerificationGasLimit.ToInt(),
		PreVerificationGas:   aux.PreVerificationGas.ToInt(),
		MaxFeePerGas:         aux.MaxFeePerGas.ToInt(),
		MaxPriorityFeePerGas: aux.MaxPriorityFeePerGas.ToInt(),
		PaymasterAndData:     aux.PaymasterAndData,
		Signature:            aux.Signature,
	}

	return nil
}

func (op *UserOperation) String() string {
	formatBytes := func(b []byte) string {
		if len(b) == 0 {
			return "0x" // default for empty byte slice
		}
		return hexutil.Encode(b)
	}

	formatBigInt := func(b *big.Int) string {
		if b == nil {
			return "0x, 0" // Default for nil big.Int
		}
		return fmt.Sprintf("0x%x, %s", b, b.Text(10))
	}

	return fmt.Sprintf(
		"UserOperation{\n"+
			"  Sender: %s\n"+
			"  Nonce: %s\n"+
			"  InitCode: %s\n"+
			"  CallData: %s\n"+
			"  CallGasLimit: %s\n"+
			"  VerificationGasLimit: %s\n"+
			"  PreVerificationGas: %s\n"+
			"  MaxFeePerGas: %s\n"+
			"  MaxPriorityFeePerGas: %s\n"+
			"  PaymasterAndData: %s\n"+
			"  Signature: %s\n"+
			"}",
		op.Sender.String(),
		formatBigInt(op.Nonce),
		formatBytes(op.InitCode),
		formatBytes(op.CallData),
		formatBigInt(op.CallGasLimit),
		formatBigInt(op.VerificationGasLimit),
		formatBigInt(op.PreVerificationGas),
		formatBigInt(op.MaxFeePerGas),
		formatBigInt(op.MaxPriorityFeePerGas),
		formatBytes(op.PaymasterAndData),
		formatBytes(op.Signature),
	)
}
