package services_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"vendo/internal/apperrors"
	"vendo/internal/models"
	"vendo/internal/repositories"
	"vendo/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

// TestMain is used to setup the test environment.
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository) *services.AuthService {
	txManager := repositories.NewMockTxManager(userRepo, productRepo)
	return services.NewAuthService(userRepo, txManager, testJWTSecret)
}

func TestAuthService_RegisterUser(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	authService := newAuthService(userRepo, repositories.NewMockProductRepository())

	user := &models.User{
		Username: "test@example.com",
		Password: "password123",
		// Deposit deliberately non-zero: registration must ignore it.
		Deposit: 500,
	}

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleBuyer, user.Role) // default role
	assert.Equal(t, 0, user.Deposit)
	assert.True(t, user.Active)
	assert.NotEqual(t, "password123", user.Password) // stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	// Username already taken
	err = authService.RegisterUser(&models.User{Username: "test@example.com", Password: "password456"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username 'test@example.com' already taken")
}

func TestAuthService_RegisterSeller(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	authService := newAuthService(userRepo, repositories.NewMockProductRepository())

	user := &models.User{
		Username: "seller@example.com",
		Password: "password123",
		Role:     models.RoleSeller,
	}
	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleSeller, user.Role)
}

func TestAuthService_RegisterUnknownRole(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	authService := newAuthService(userRepo, repositories.NewMockProductRepository())

	err := authService.RegisterUser(&models.User{
		Username: "admin@example.com",
		Password: "password123",
		Role:     "ADMIN",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAuthService_LoginUser(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	authService := newAuthService(userRepo, repositories.NewMockProductRepository())

	registered := &models.User{
		Username: "test@example.com",
		Password: "password123",
	}
	assert.NoError(t, authService.RegisterUser(registered))

	// Successful login yields a token carrying id, username and role.
	token, err := authService.LoginUser("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, registered.ID, claims["user_id"])
	assert.Equal(t, "test@example.com", claims["username"])
	assert.Equal(t, models.RoleBuyer, claims["role"])

	// Wrong password
	_, err = authService.LoginUser("test@example.com", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	// Unknown user gets the same generic message
	_, err = authService.LoginUser("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestAuthService_ValidateToken(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	authService := newAuthService(userRepo, repositories.NewMockProductRepository())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"username": "test@example.com",
		"role":     models.RoleBuyer,
		"exp":      jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, models.RoleBuyer, claims["role"])

	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
}

func TestAuthService_RemoveSellerCascadesProducts(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	productRepo := repositories.NewMockProductRepository()
	authService := newAuthService(userRepo, productRepo)

	seller := newSeller(t, userRepo)
	owned := &models.Product{Name: "Cola Can", Cost: 50, Amount: 5, SellerID: seller.ID}
	foreign := &models.Product{Name: "Water Bottle", Cost: 25, Amount: 5, SellerID: "other-seller"}
	assert.NoError(t, productRepo.Create(owned))
	assert.NoError(t, productRepo.Create(foreign))

	assert.NoError(t, authService.RemoveUser(seller))

	_, err := userRepo.GetByID(seller.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The seller's catalog goes with the account; other sellers' products stay.
	_, err = productRepo.GetByID(owned.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = productRepo.GetByID(foreign.ID)
	assert.NoError(t, err)
}

func TestAuthService_RemoveBuyerLeavesProducts(t *testing.T) {
	userRepo := repositories.NewMockUserRepository()
	productRepo := repositories.NewMockProductRepository()
	authService := newAuthService(userRepo, productRepo)

	buyer := newBuyer(t, userRepo, 100)
	product := &models.Product{Name: "Cola Can", Cost: 50, Amount: 5, SellerID: "seller-1"}
	assert.NoError(t, productRepo.Create(product))

	assert.NoError(t, authService.RemoveUser(buyer))

	_, err := userRepo.GetByID(buyer.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = productRepo.GetByID(product.ID)
	assert.NoError(t, err)
}
