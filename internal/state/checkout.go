package state

import (
	"slices"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/shopspring/decimal"
)

// CheckoutStep is a page of the checkout wizard.
type CheckoutStep int

const (
	StepReview CheckoutStep = iota + 1
	StepPayment
	StepConfirm
)

var stepTitles = map[CheckoutStep]string{
	StepReview:  "Review",
	StepPayment: "Payment",
	StepConfirm: "Confirm",
}

func (s CheckoutStep) String() string {
	if title, ok := stepTitles[s]; ok {
		return title
	}
	return "Unknown"
}

// Checkout is a running wizard. It moves forward only.
type Checkout struct {
	Step  CheckoutStep
	Items []models.CartItem
	// Explicit is set when checkout was started for a given item list
	// instead of the cart; the cart is then left alone on completion.
	Explicit bool
}

func (c Checkout) clone() Checkout {
	c.Items = slices.Clone(c.Items)
	return c
}

// Total is the amount charged at the confirm step.
func (c Checkout) Total() decimal.Decimal {
	return models.Total(c.Items)
}

// ItemsBySource is the review step listing.
func (c Checkout) ItemsBySource() []models.SourceGroup {
	return models.GroupBySource(c.Items)
}

// IsFinalStep reports whether the next action places the order.
func (c Checkout) IsFinalStep() bool {
	return c.Step == StepConfirm
}
