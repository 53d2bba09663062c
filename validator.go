package userop

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// NewValidator registers the UserOperation rules on gin's validator engine.
// It is safe to call more than once.
func NewValidator() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterStructValidation(validUserOperation, UserOperation{})
	})
	return registerErr
}

// validUserOperation reports every quantity that does not fit an unsigned
// 256-bit word under the "uint256" tag. Nil quantities are left to "required".
func validUserOperation(sl validator.StructLevel) {
	op, ok := sl.Current().Interface().(UserOperation)
	if !ok {
		return
	}

	quantities := []struct {
		name  string
		value *big.Int
	}{
		{"Nonce", op.Nonce},
		{"CallGasLimit", op.CallGasLimit},
		{"VerificationGasLimit", op.VerificationGasLimit},
		{"PreVerificationGas", op.PreVerificationGas},
		{"MaxFeePerGas", op.MaxFeePerGas},
		{"MaxPriorityFeePerGas", op.MaxPriorityFeePerGas},
	}
	for _, q := range quantities {
		if q.value != nil && !fitsUint256(q.value) {
			sl.ReportError(q.value, q.name, q.name, "uint256", "")
		}
	}
}

// Validate checks that every quantity is set and fits in 256 bits.
// Byte field lengths are not bounded here.
func (op *UserOperation) Validate() error {
	if err := NewValidator(); err != nil {
		return err
	}
	if err := binding.Validator.ValidateStruct(op); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
	}
	return nil
}
