// Package payhere implements the PayHere checkout signature contract: the
// gateway never shares a session, it only agrees on MD5 hashes over the
// merchant credentials, so both sides can verify each other offline.
package payhere

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Notify status codes per the gateway docs.
const (
	CodeSuccess     = 2
	CodePending     = 0
	CodeCancelled   = -1
	CodeFailed      = -2
	CodeChargedback = -3
)

type Gateway struct {
	MerchantID string
	secret     string
}

func New(merchantID, merchantSecret string) *Gateway {
	return &Gateway{MerchantID: merchantID, secret: merchantSecret}
}

func md5Upper(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CheckoutFields is what the client posts to the gateway's checkout form.
type CheckoutFields struct {
	MerchantID string `json:"merchant_id"`
	OrderID    string `json:"order_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Hash       string `json:"hash"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// BuildPaymentRequest signs the checkout:
// hash = UPPER(MD5(merchantId + orderId + amount + currency + UPPER(MD5(secret)))).
func (g *Gateway) BuildPaymentRequest(orderID string, amount float64, currency string, cust Customer) CheckoutFields {
	amt := formatAmount(amount)
	hash := md5Upper(g.MerchantID + orderID + amt + currency + md5Upper(g.secret))
	return CheckoutFields{
		MerchantID: g.MerchantID,
		OrderID:    orderID,
		Amount:     amt,
		Currency:   currency,
		Hash:       hash,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		Email:      cust.Email,
		Phone:      cust.Phone,
	}
}

// Notification is the server-to-server callback payload.
type Notification struct {
	MerchantID string `form:"merchant_id"`
	OrderID    string `form:"order_id"`
	Amount     string `form:"payhere_amount"`
	Currency   string `form:"payhere_currency"`
	StatusCode int    `form:"status_code"`
	MD5Sig     string `form:"md5sig"`
}

// VerifyNotification recomputes the callback signature; the status code is
// part of the signed payload so it cannot be tampered with.
func (g *Gateway) VerifyNotification(n Notification) bool {
	expected := md5Upper(n.MerchantID + n.OrderID + n.Amount + n.Currency +
		fmt.Sprintf("%d", n.StatusCode) + md5Upper(g.secret))
	return n.MerchantID == g.MerchantID && n.MD5Sig == expected
}

func IsSuccessCode(code int) bool {
	return code == CodeSuccess
}
