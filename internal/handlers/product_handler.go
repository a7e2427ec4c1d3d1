package handlers

import (
	"log"

	"vendo/internal/models"
	"vendo/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog and the buy
// operation.
type ProductHandler struct {
	productService  *services.ProductService
	purchaseService *services.PurchaseService
	validate        *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, purchaseService *services.PurchaseService) *ProductHandler {
	return &ProductHandler{
		productService:  productService,
		purchaseService: purchaseService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	productRoutes.Post("/:id/buy", h.HandleBuyProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return respondDomainError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(product)
}

// ProductRequest represents the request body for creating or updating a
// product.
type ProductRequest struct {
	Name   string `json:"name" validate:"required,min=3,max=100"`
	Cost   int    `json:"cost" validate:"gte=0"`
	Amount int    `json:"amount" validate:"gte=0"`
}

// HandleCreateProduct creates a new product owned by the caller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return badRequest(c, msgInvalidInput)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, msgInvalidInput)
	}

	product := models.Product{
		Name:   req.Name,
		Cost:   req.Cost,
		Amount: req.Amount,
	}
	if err := h.productService.CreateProduct(principal(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product on behalf of the caller.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return badRequest(c, msgInvalidInput)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, msgInvalidInput)
	}

	product, err := h.productService.UpdateProduct(principal(c), c.Params("id"), req.Name, req.Cost, req.Amount)
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return respondDomainError(c, err)
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product on behalf of the caller.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.productService.DeleteProduct(principal(c), c.Params("id")); err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// BuyRequest represents the request body for a purchase.
type BuyRequest struct {
	Quantity int `json:"quantity"`
}

// HandleBuyProduct purchases a quantity of the product for the caller.
// A body that does not parse as an integer quantity is invalid input, not
// a server error.
func (h *ProductHandler) HandleBuyProduct(c *fiber.Ctx) error {
	var req BuyRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing buy request body: %v", err)
		return badRequest(c, msgInvalidInput)
	}

	result, err := h.purchaseService.Buy(principal(c), c.Params("id"), req.Quantity)
	if err != nil {
		return respondDomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"response": result,
	})
}
