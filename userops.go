// Package userop derives the identity, the entry point bound hash, the ABI
// encoded size and the associated protocol entities of an ERC-4337 user
// operation.
//
// Every function in this package is a pure computation over an already
// populated UserOperation and is safe for concurrent use.
package userop

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// UserOperation represents an EIP-4337 style transaction for a smart contract account.
// Nil quantities are treated as zero.
type UserOperation struct {
	Sender               common.Address `json:"sender"               mapstructure:"sender"`
	Nonce                *big.Int       `json:"nonce"                mapstructure:"nonce"                binding:"required"`
	InitCode             []byte         `json:"initCode"             mapstructure:"initCode"`
	CallData             []byte         `json:"callData"             mapstructure:"callData"`
	CallGasLimit         *big.Int       `json:"callGasLimit"         mapstructure:"callGasLimit"         binding:"required"`
	VerificationGasLimit *big.Int       `json:"verificationGasLimit" mapstructure:"verificationGasLimit" binding:"required"`
	PreVerificationGas   *big.Int       `json:"preVerificationGas"   mapstructure:"preVerificationGas"   binding:"required"`
	MaxFeePerGas         *big.Int       `json:"maxFeePerGas"         mapstructure:"maxFeePerGas"         binding:"required"`
	MaxPriorityFeePerGas *big.Int       `json:"maxPriorityFeePerGas" mapstructure:"maxPriorityFeePerGas" binding:"required"`
	PaymasterAndData     []byte         `json:"paymasterAndData"     mapstructure:"paymasterAndData"`
	Signature            []byte         `json:"signature"            mapstructure:"signature"`
}

// UserOperationId uniquely identifies a user operation from a given sender at a
// point in time. A second operation with the same id replaces the first.
// It is comparable and can be used as a map key.
type UserOperationId struct {
	Sender common.Address
	Nonce  uint256.Int
}

// ID returns the (sender, nonce) identifier of the operation.
func (op *UserOperation) ID() UserOperationId {
	return UserOperationId{
		Sender: op.Sender,
		Nonce:  *ToUint256(op.Nonce),
	}
}

// Cmp orders ids by sender and then by nonce. It returns -1, 0 or +1.
func (id UserOperationId) Cmp(other UserOperationId) int {
	if c := bytes.Compare(id.Sender[:], other.Sender[:]); c != 0 {
		return c
	}
	return id.Nonce.Cmp(&other.Nonce)
}

func (id UserOperationId) String() string {
	return fmt.Sprintf("%s:%s", id.Sender.Hex(), id.Nonce.ToBig().String())
}

// ExtractLeadingAddress returns the address held in the first 20 bytes of data.
// The second result is false when data is too short to carry an address,
// which is the normal case for an empty initCode or paymasterAndData.
func ExtractLeadingAddress(data []byte) (common.Address, bool) {
	if len(data) < common.AddressLength {
		return common.Address{}, false
	}
	return common.BytesToAddress(data[:common.AddressLength]), true
}

// Factory returns the factory address prefixed to InitCode, if any.
func (op *UserOperation) Factory() (common.Address, bool) {
	return ExtractLeadingAddress(op.InitCode)
}

// FactoryData returns the InitCode bytes following the factory address.
func (op *UserOperation) FactoryData() []byte {
	if len(op.InitCode) <= common.AddressLength {
		return nil
	}
	return op.InitCode[common.AddressLength:]
}

// Paymaster returns the paymaster address prefixed to PaymasterAndData, if any.
func (op *UserOperation) Paymaster() (common.Address, bool) {
	return ExtractLeadingAddress(op.PaymasterAndData)
}

// PaymasterData returns the PaymasterAndData bytes following the paymaster address.
func (op *UserOperation) PaymasterData() []byte {
	if len(op.PaymasterAndData) <= common.AddressLength {
		return nil
	}
	return op.PaymasterAndData[common.AddressLength:]
}
