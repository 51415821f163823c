package app

import (
	"fmt"

	productHTTP "github.com/danilo/sellora-commerce/internal/product/http"
	productRepository "github.com/danilo/sellora-commerce/internal/product/repository"
	productUsecase "github.com/danilo/sellora-commerce/internal/product/usecase"
)

// ProductRepository returns the product repository based on database driver.
func (c *Container) ProductRepository() (productUsecase.ProductRepository, error) {
	var err error
	c.productRepoInit.Do(func() {
		c.productRepo, err = c.initProductRepository()
		if err != nil {
			c.initErrors["productRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productRepo"]; exists {
		return nil, storedErr
	}
	return c.productRepo, nil
}

// ProductUseCase returns the product use case.
func (c *Container) ProductUseCase() (productUsecase.UseCase, error) {
	var err error
	c.productUseCaseInit.Do(func() {
		c.productUseCase, err = c.initProductUseCase()
		if err != nil {
			c.initErrors["productUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// ProductHandler returns the HTTP handler for product catalog operations.
func (c *Container) ProductHandler() (*productHTTP.ProductHandler, error) {
	var err error
	c.productHandlerInit.Do(func() {
		c.productHandler, err = c.initProductHandler()
		if err != nil {
			c.initErrors["productHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productHandler"]; exists {
		return nil, storedErr
	}
	return c.productHandler, nil
}

// initProductRepository creates the product repository based on the database driver.
func (c *Container) initProductRepository() (productUsecase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return productRepository.NewPostgreSQLProductRepository(db), nil
	case "mysql":
		return productRepository.NewMySQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProductUseCase creates the product use case with all its dependencies.
func (c *Container) initProductUseCase() (productUsecase.UseCase, error) {
	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	return productUsecase.NewProductUseCase(productRepo), nil
}

// initProductHandler creates the product HTTP handler with all its dependencies.
func (c *Container) initProductHandler() (*productHTTP.ProductHandler, error) {
	productUseCase, err := c.ProductUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get product use case for product handler: %w", err)
	}

	logger := c.Logger()

	return productHTTP.NewProductHandler(productUseCase, logger), nil
}
