// internal/domain/payment/razorpay.go
package payment

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/madhav-gif/Full-stack-project/internal/config"
)

// RazorpayOrder represents an order resource returned by the Razorpay API
type RazorpayOrder struct {
	ID        string                 `json:"id"`
	Entity    string                 `json:"entity"`
	Amount    int64                  `json:"amount"`
	Currency  string                 `json:"currency"`
	Receipt   string                 `json:"receipt"`
	Status    string                 `json:"status"`
	Notes     map[string]interface{} `json:"notes"`
	CreatedAt int64                  `json:"created_at"`
}

// razorpayOrderRequest is the payload for creating a gateway order
type razorpayOrderRequest struct {
	Amount         int64                  `json:"amount"` // In paise
	Currency       string                 `json:"currency"`
	Receipt        string                 `json:"receipt"`
	PaymentCapture int                    `json:"payment_capture"`
	Notes          map[string]interface{} `json:"notes,omitempty"`
}

// RazorpayClient is a thin HTTP client for the Razorpay API
type RazorpayClient struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewRazorpayClient creates a Razorpay API client from configuration
func NewRazorpayClient(cfg *config.Config) *RazorpayClient {
	return &RazorpayClient{
		keyID:     cfg.External.Razorpay.KeyID,
		keySecret: cfg.External.Razorpay.KeySecret,
		baseURL:   cfg.External.Razorpay.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// KeyID returns the public API key, needed by browser checkout
func (r *RazorpayClient) KeyID() string {
	return r.keyID
}

// CreateOrder creates a gateway order for the given amount in paise.
// payment_capture is enabled so successful payments settle automatically.
func (r *RazorpayClient) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (*RazorpayOrder, error) {
	req := razorpayOrderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1,
		Notes:          notes,
	}

	response, err := r.makeAPICall("POST", "/orders", req)
	if err != nil {
		return nil, err
	}

	var razorpayOrder RazorpayOrder
	if err := json.Unmarshal(response, &razorpayOrder); err != nil {
		return nil, fmt.Errorf("failed to parse Razorpay order response: %w", err)
	}

	return &razorpayOrder, nil
}

// makeAPICall makes HTTP calls to Razorpay API
func (r *RazorpayClient) makeAPICall(method, endpoint string, data interface{}) ([]byte, error) {
	if r.keyID == "" || r.keySecret == "" {
		return nil, fmt.Errorf("razorpay API credentials not configured")
	}

	var reqBody []byte
	var err error

	if data != nil {
		reqBody, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request data: %w", err)
		}
	}

	req, err := http.NewRequest(method, r.baseURL+endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.keyID, r.keySecret)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make API call: %w", err)
	}
	defer resp.Body.Close()

	var respBody bytes.Buffer
	if _, err := respBody.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("API call failed with status %d: %s", resp.StatusCode, respBody.String())
	}

	return respBody.Bytes(), nil
}

// VerifySignature checks a Razorpay payment signature. The expected value is
// the hex HMAC-SHA256 of "<order_id>|<payment_id>" keyed with the API secret.
func VerifySignature(razorpayOrderID, razorpayPaymentID, signature, keySecret string) bool {
	payload := razorpayOrderID + "|" + razorpayPaymentID

	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
