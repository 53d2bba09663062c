package userop

import (
	"bytes"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func submitHandler(c *gin.Context) {
	var body BodyOfUserOps
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashes := make([]string, 0, len(body.UserOps))
	for _, op := range body.UserOps {
		hashes = append(hashes, op.OpHash(testEntryPoint, testChainID).Hex())
	}
	c.JSON(http.StatusOK, gin.H{"hashes": hashes})
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	if err := NewValidator(); err != nil {
		panic(err)
	}

	r.POST("/userops", submitHandler)
	return r
}

func TestSubmitHandler(t *testing.T) {
	router := setupRouter()

	testCases := []struct {
		description string
		payload     string
		expectCode  int
	}{
		{
			description: "Valid user operation",
			payload:     `{"user_ops": [` + mockUserOperationJSON + `]}`,
			expectCode:  http.StatusOK,
		},
		{
			description: "Missing quantity",
			payload:     `{"user_ops": [{"sender": "0x1306b01bc3e4ad202612d3843387e94737673f53", "nonce": "0x1"}]}`,
			expectCode:  http.StatusBadRequest,
		},
		{
			description: "Quantity wider than 256 bits",
			payload: `{"user_ops": [{"sender": "0x1306b01bc3e4ad202612d3843387e94737673f53",` +
				`"nonce": "0x10000000000000000000000000000000000000000000000000000000000000000",` +
				`"callGasLimit": "0x1", "verificationGasLimit": "0x1", "preVerificationGas": "0x1",` +
				`"maxFeePerGas": "0x1", "maxPriorityFeePerGas": "0x1"}]}`,
			expectCode: http.StatusBadRequest,
		},
		{
			description: "Missing user operations",
			payload:     `{}`,
			expectCode:  http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/userops", bytes.NewBufferString(tc.payload))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectCode, w.Code, w.Body.String())
		})
	}
}

func TestSubmitHandler_ReturnsOpHash(t *testing.T) {
	router := setupRouter()

	req, err := http.NewRequest(http.MethodPost, "/userops", bytes.NewBufferString(`{"user_ops": [`+mockUserOperationJSON+`]}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Hashes []string `json:"hashes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []string{"0x484add9e4d8c3172d11b5feb6a3cc712280e176d278027cfa02ee396eb28afa1"}, resp.Hashes)
}

func TestUserOperation_Validate(t *testing.T) {
	tooWide := new(big.Int).Lsh(big.NewInt(1), 256)

	testCases := []struct {
		name    string
		mutate  func(op *UserOperation)
		wantErr bool
	}{
		{"valid", func(op *UserOperation) {}, false},
		{"zero operation", func(op *UserOperation) { *op = *mockZeroUserOperation() }, false},
		{"max uint256", func(op *UserOperation) { op.Nonce = new(big.Int).Sub(tooWide, big.NewInt(1)) }, false},
		{"large byte fields are not bounded", func(op *UserOperation) { op.CallData = make([]byte, 1<<20) }, false},
		{"nil nonce", func(op *UserOperation) { op.Nonce = nil }, true},
		{"nil maxFeePerGas", func(op *UserOperation) { op.MaxFeePerGas = nil }, true},
		{"negative callGasLimit", func(op *UserOperation) { op.CallGasLimit = big.NewInt(-1) }, true},
		{"overflowing preVerificationGas", func(op *UserOperation) { op.PreVerificationGas = tooWide }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op := mockUserOperation()
			tc.mutate(op)

			err := op.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidQuantity)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserOperation_Validate_ZeroSender(t *testing.T) {
	op := mockUserOperation()
	op.Sender = common.Address{}
	require.NoError(t, op.Validate())
}
