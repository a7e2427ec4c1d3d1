package services

import (
	"fmt"

	"vendo/internal/apperrors"
	"vendo/internal/coins"
	"vendo/internal/models"
	"vendo/internal/repositories"
)

// WalletService handles the buyer deposit ledger: inserting coins and
// resetting the balance.
type WalletService struct {
	userRepo repositories.UserRepository
}

// NewWalletService creates a new WalletService.
func NewWalletService(userRepo repositories.UserRepository) *WalletService {
	return &WalletService{
		userRepo: userRepo,
	}
}

// Deposit adds a single coin of the given value to the buyer's balance and
// returns the new balance. Only buyers hold a deposit, and only the
// accepted coin values are allowed.
func (s *WalletService) Deposit(actor *models.User, amount int) (int, error) {
	if !actor.IsBuyer() {
		return 0, fmt.Errorf("only buyers can deposit: %w", apperrors.ErrForbidden)
	}
	if amount <= 0 || !coins.IsValidDenomination(amount) {
		return 0, fmt.Errorf("coin value %d not accepted: %w", amount, apperrors.ErrInvalidDenomination)
	}

	user, err := s.userRepo.GetByID(actor.ID)
	if err != nil {
		return 0, err
	}

	user.Deposit += amount
	if err := s.userRepo.Update(user); err != nil {
		return 0, fmt.Errorf("failed to persist deposit: %w", err)
	}
	return user.Deposit, nil
}

// Reset zeroes the buyer's balance. Resetting an already-zero balance is a
// no-op success.
func (s *WalletService) Reset(actor *models.User) (int, error) {
	if !actor.IsBuyer() {
		return 0, fmt.Errorf("only buyers can reset their deposit: %w", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.GetByID(actor.ID)
	if err != nil {
		return 0, err
	}

	if user.Deposit == 0 {
		return 0, nil
	}

	user.Deposit = 0
	if err := s.userRepo.Update(user); err != nil {
		return 0, fmt.Errorf("failed to persist deposit reset: %w", err)
	}
	return user.Deposit, nil
}
