package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// verifyPaymentRequest is the body of POST /payments/verify, mirroring what
// the payment provider hands the checkout page after capture.
type verifyPaymentRequest struct {
	OrderID         string `json:"orderId"`
	ProviderOrderID string `json:"providerOrderId"`
	PaymentID       string `json:"paymentId"`
	Signature       string `json:"signature"`
}

// verifyPaymentResponse is the body returned for a verified payment.
type verifyPaymentResponse struct {
	Status string `json:"status"`
}

// VerifyPayment handles POST /api/v1/payments/verify - checks the provider
// signature and records the payment against the order. The signature is
// HMAC-SHA256 over "<providerOrderId>|<paymentId>" with the shared secret.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	if _, ok := callerFrom(ctx); !ok {
		return ctx.JSON(http.StatusUnauthorized, errorBody{
			Code:    http.StatusUnauthorized,
			Message: "missing caller identity",
		})
	}

	var req verifyPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	if !validSignature(s.paymentSecret, req.ProviderOrderID, req.PaymentID, req.Signature) {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid payment signature",
		})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, req.PaymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, verifyPaymentResponse{Status: "verified"})
}

// validSignature checks the provider signature in constant time.
func validSignature(secret, providerOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
