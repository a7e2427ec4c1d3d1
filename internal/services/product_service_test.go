package services_test

import (
	"testing"

	"vendo/internal/apperrors"
	"vendo/internal/models"
	"vendo/internal/repositories"
	"vendo/internal/services"

	"github.com/stretchr/testify/assert"
)

func seedProduct(t *testing.T, repo repositories.ProductRepository, sellerID string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     "Sparkling Water",
		Cost:     50,
		Amount:   10,
		SellerID: sellerID,
	}
	assert.NoError(t, repo.Create(product))
	return product
}

func TestProductService_CreateRequiresSeller(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	productService := services.NewProductService(productRepo)

	seller := &models.User{ID: "seller-1", Role: models.RoleSeller}
	buyer := &models.User{ID: "buyer-1", Role: models.RoleBuyer}

	product := models.Product{Name: "Chocolate Bar", Cost: 10, Amount: 5}
	err := productService.CreateProduct(seller, &product)
	assert.NoError(t, err)
	assert.Equal(t, seller.ID, product.SellerID)

	err = productService.CreateProduct(buyer, &models.Product{Name: "Chips", Cost: 5, Amount: 1})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestProductService_UpdateOnlyByOwner(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	productService := services.NewProductService(productRepo)

	owner := &models.User{ID: "seller-1", Role: models.RoleSeller}
	otherSeller := &models.User{ID: "seller-2", Role: models.RoleSeller}
	buyer := &models.User{ID: "buyer-1", Role: models.RoleBuyer}
	product := seedProduct(t, productRepo, owner.ID)

	// Another seller is denied, same as a buyer.
	_, err := productService.UpdateProduct(otherSeller, product.ID, "Hijacked", 5, 1)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = productService.UpdateProduct(buyer, product.ID, "Hijacked", 5, 1)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	stored, err := productRepo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Sparkling Water", stored.Name)

	updated, err := productService.UpdateProduct(owner, product.ID, "Still Water", 45, 20)
	assert.NoError(t, err)
	assert.Equal(t, "Still Water", updated.Name)
	assert.Equal(t, 45, updated.Cost)
	assert.Equal(t, 20, updated.Amount)
}

func TestProductService_DeleteOnlyByOwner(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	productService := services.NewProductService(productRepo)

	owner := &models.User{ID: "seller-1", Role: models.RoleSeller}
	otherSeller := &models.User{ID: "seller-2", Role: models.RoleSeller}
	product := seedProduct(t, productRepo, owner.ID)

	err := productService.DeleteProduct(otherSeller, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = productRepo.GetByID(product.ID)
	assert.NoError(t, err)

	err = productService.DeleteProduct(owner, product.ID)
	assert.NoError(t, err)

	_, err = productRepo.GetByID(product.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductService_MutateMissingProduct(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	productService := services.NewProductService(productRepo)
	seller := &models.User{ID: "seller-1", Role: models.RoleSeller}

	_, err := productService.UpdateProduct(seller, "no-such-id", "Name", 5, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = productService.DeleteProduct(seller, "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
