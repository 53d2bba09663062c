package userop

import "github.com/ethereum/go-ethereum/common/hexutil"

// userOperationJSON is the bundler RPC representation of a UserOperation:
// quantities and byte fields are 0x-prefixed hex strings.
type userOperationJSON struct {
	Sender               string        `json:"sender"`
	Nonce                *hexutil.Big  `json:"nonce"`
	InitCode             hexutil.Bytes `json:"initCode"`
	CallData             hexutil.Bytes `json:"callData"`
	CallGasLimit         *hexutil.Big  `json:"callGasLimit"`
	VerificationGasLimit *hexutil.Big  `json:"verificationGasLimit"`
	PreVerificationGas   *hexutil.Big  `json:"preVerificationGas"`
	MaxFeePerGas         *hexutil.Big  `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *hexutil.Big  `json:"maxPriorityFeePerGas"`
	PaymasterAndData     hexutil.Bytes `json:"paymasterAndData"`
	Signature            hexutil.Bytes `json:"signature"`
}
