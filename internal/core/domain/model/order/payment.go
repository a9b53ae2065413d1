package order

import (
	"fmt"

	"okada/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for the order.
type PaymentMethod string

const (
	PaymentMTNMoney    PaymentMethod = "mtn_money"
	PaymentOrangeMoney PaymentMethod = "orange_money"
	PaymentCash        PaymentMethod = "cash"
)

// Validate checks the method against the supported providers.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMTNMoney, PaymentOrangeMoney, PaymentCash:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a supported payment method", string(m)))
	}
}

// PaymentStatus tracks settlement of the order total.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate checks the status against the known settlement states.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", string(s)))
	}
}
