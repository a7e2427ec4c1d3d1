package services

import (
	"fmt"
	"log"

	"vendo/internal/apperrors"
	"vendo/internal/coins"
	"vendo/internal/models"
	"vendo/internal/repositories"
)

// PurchasePublisher publishes a purchase-completed event. Satisfied by the
// RabbitMQ client; nil-able for tests and local runs.
type PurchasePublisher interface {
	PublishPurchaseCompleted(event map[string]interface{}) error
}

// PurchaseResult is the outcome of a successful buy: the updated product,
// the returned coins (largest first) and the amount spent.
type PurchaseResult struct {
	Product  models.Product `json:"product"`
	Change   []int          `json:"change"`
	Spending int            `json:"spending"`
}

// PurchaseService executes the buy flow. The whole flow runs inside one
// database transaction: stock decrement and deposit debit commit together
// or not at all.
type PurchaseService struct {
	txManager repositories.TxManager
	publisher PurchasePublisher
}

// NewPurchaseService creates a new PurchaseService. publisher may be nil.
func NewPurchaseService(txManager repositories.TxManager, publisher PurchasePublisher) *PurchaseService {
	return &PurchaseService{
		txManager: txManager,
		publisher: publisher,
	}
}

// Buy purchases quantity units of the product for the buyer. The buyer's
// whole deposit is consumed: the cost is debited and the remainder comes
// back as change, so the balance is always zero afterwards.
//
// Order of checks matters and each is a separate exit: role, quantity,
// product existence, stock, funds. Product and buyer rows are loaded with
// write locks so two concurrent buys cannot both pass the stock check
// against a stale amount.
func (s *PurchaseService) Buy(buyer *models.User, productID string, quantity int) (*PurchaseResult, error) {
	if !buyer.IsBuyer() {
		return nil, fmt.Errorf("only buyers can purchase: %w", apperrors.ErrForbidden)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be a positive integer: %w", apperrors.ErrInvalidInput)
	}

	var result PurchaseResult
	err := s.txManager.WithinTransaction(func(r repositories.Repositories) error {
		product, err := r.Products.GetByIDForUpdate(productID)
		if err != nil {
			return err
		}

		if quantity > product.Amount {
			return fmt.Errorf("requested %d of %d available: %w", quantity, product.Amount, apperrors.ErrInsufficientStock)
		}

		totalCost := product.Cost * quantity

		user, err := r.Users.GetByIDForUpdate(buyer.ID)
		if err != nil {
			return err
		}
		if user.Deposit < totalCost {
			return fmt.Errorf("deposit %d does not cover cost %d: %w", user.Deposit, totalCost, apperrors.ErrInsufficientFunds)
		}

		remaining := user.Deposit - totalCost
		change, err := coins.MakeChange(remaining)
		if err != nil {
			// Unreachable with the fixed denomination set unless a product
			// cost is not a multiple of 5; treat as a configuration bug.
			log.Printf("FATAL change computation failed for remainder %d: %v", remaining, err)
			return err
		}

		product.Amount -= quantity
		user.Deposit = 0
		if err := r.Products.Update(product); err != nil {
			return err
		}
		if err := r.Users.Update(user); err != nil {
			return err
		}

		result = PurchaseResult{
			Product:  *product,
			Change:   change,
			Spending: totalCost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishPurchase(buyer, &result)
	return &result, nil
}

// publishPurchase emits the purchase event. Best effort: a broker failure
// never fails a purchase that already committed.
func (s *PurchaseService) publishPurchase(buyer *models.User, result *PurchaseResult) {
	if s.publisher == nil {
		return
	}

	event := map[string]interface{}{
		"buyerID":   buyer.ID,
		"productID": result.Product.ID,
		"spending":  result.Spending,
		"change":    result.Change,
	}
	if err := s.publisher.PublishPurchaseCompleted(event); err != nil {
		log.Printf("Warning: failed to publish purchase event for product %s: %v", result.Product.ID, err)
	} else {
		log.Printf("Successfully published purchase event for product %s", result.Product.ID)
	}
}
