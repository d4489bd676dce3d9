package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test-key-secret"
	signature := signPayload("order_abc123", "pay_def456", secret)

	assert.True(t, VerifySignature("order_abc123", "pay_def456", signature, secret))
}

func TestVerifySignatureRejectsTamperedPayload(t *testing.T) {
	secret := "test-key-secret"
	signature := signPayload("order_abc123", "pay_def456", secret)

	assert.False(t, VerifySignature("order_abc123", "pay_other", signature, secret))
	assert.False(t, VerifySignature("order_other", "pay_def456", signature, secret))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	signature := signPayload("order_abc123", "pay_def456", "another-secret")

	assert.False(t, VerifySignature("order_abc123", "pay_def456", signature, "test-key-secret"))
}

func TestVerifySignatureRejectsGarbage(t *testing.T) {
	assert.False(t, VerifySignature("order_abc123", "pay_def456", "not-a-signature", "test-key-secret"))
	assert.False(t, VerifySignature("order_abc123", "pay_def456", "", "test-key-secret"))
}
