package services

import (
	"fmt"

	"vendo/internal/apperrors"
	"vendo/internal/models"
	"vendo/internal/repositories"
)

// ProductService handles business logic related to products, including the
// ownership rule: only the seller who created a product may change or
// delete it.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// authorizeMutation enforces the ownership rule for update and delete.
// Wrong role and wrong owner both come back as ErrForbidden; the caller
// cannot tell them apart.
func authorizeMutation(actor *models.User, product *models.Product) error {
	if !actor.IsSeller() || actor.ID != product.SellerID {
		return fmt.Errorf("user %s may not mutate product %s: %w", actor.ID, product.ID, apperrors.ErrForbidden)
	}
	return nil
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product owned by actor. Creation needs only
// the SELLER role; there is no ownership check because the product does
// not exist yet.
func (s *ProductService) CreateProduct(actor *models.User, product *models.Product) error {
	if !actor.IsSeller() {
		return fmt.Errorf("only sellers can create products: %w", apperrors.ErrForbidden)
	}
	product.SellerID = actor.ID
	return s.repo.Create(product)
}

// UpdateProduct updates name, cost and amount of an existing product on
// behalf of actor. Ownership is checked against the stored record, not the
// request payload.
func (s *ProductService) UpdateProduct(actor *models.User, id string, name string, cost, amount int) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authorizeMutation(actor, product); err != nil {
		return nil, err
	}

	product.Name = name
	product.Cost = cost
	product.Amount = amount
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID on behalf of actor.
func (s *ProductService) DeleteProduct(actor *models.User, id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := authorizeMutation(actor, product); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
