package app

import (
	"fmt"

	orderHTTP "github.com/danilo/sellora-commerce/internal/order/http"
	orderRepository "github.com/danilo/sellora-commerce/internal/order/repository"
	orderUsecase "github.com/danilo/sellora-commerce/internal/order/usecase"
)

// OrderRepository returns the order aggregate repository based on database driver.
func (c *Container) OrderRepository() (orderUsecase.OrderTotalWriter, error) {
	var err error
	c.orderRepoInit.Do(func() {
		c.orderRepo, err = c.initOrderRepository()
		if err != nil {
			c.initErrors["orderRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderRepo"]; exists {
		return nil, storedErr
	}
	return c.orderRepo, nil
}

// OrderItemRepository returns the order item repository based on database driver.
func (c *Container) OrderItemRepository() (orderUsecase.OrderItemRepository, error) {
	var err error
	c.orderItemRepoInit.Do(func() {
		c.orderItemRepo, err = c.initOrderItemRepository()
		if err != nil {
			c.initErrors["orderItemRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderItemRepo"]; exists {
		return nil, storedErr
	}
	return c.orderItemRepo, nil
}

// OrderUseCase returns the order use case.
func (c *Container) OrderUseCase() (orderUsecase.OrderUseCaseInterface, error) {
	var err error
	c.orderUseCaseInit.Do(func() {
		c.orderUseCase, err = c.initOrderUseCase()
		if err != nil {
			c.initErrors["orderUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderUseCase"]; exists {
		return nil, storedErr
	}
	return c.orderUseCase, nil
}

// OrderItemUseCase returns the order item use case.
func (c *Container) OrderItemUseCase() (orderUsecase.OrderItemUseCaseInterface, error) {
	var err error
	c.orderItemUseCaseInit.Do(func() {
		c.orderItemUseCase, err = c.initOrderItemUseCase()
		if err != nil {
			c.initErrors["orderItemUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderItemUseCase"]; exists {
		return nil, storedErr
	}
	return c.orderItemUseCase, nil
}

// OrderHandler returns the HTTP handler for order operations.
func (c *Container) OrderHandler() (*orderHTTP.OrderHandler, error) {
	var err error
	c.orderHandlerInit.Do(func() {
		c.orderHandler, err = c.initOrderHandler()
		if err != nil {
			c.initErrors["orderHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderHandler"]; exists {
		return nil, storedErr
	}
	return c.orderHandler, nil
}

// OrderItemHandler returns the HTTP handler for order item operations.
func (c *Container) OrderItemHandler() (*orderHTTP.OrderItemHandler, error) {
	var err error
	c.orderItemHandlerInit.Do(func() {
		c.orderItemHandler, err = c.initOrderItemHandler()
		if err != nil {
			c.initErrors["orderItemHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderItemHandler"]; exists {
		return nil, storedErr
	}
	return c.orderItemHandler, nil
}

// initOrderRepository creates the order repository based on the database driver.
func (c *Container) initOrderRepository() (orderUsecase.OrderTotalWriter, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for order repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return orderRepository.NewPostgreSQLOrderRepository(db), nil
	case "mysql":
		return orderRepository.NewMySQLOrderRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOrderItemRepository creates the order item repository based on the database driver.
func (c *Container) initOrderItemRepository() (orderUsecase.OrderItemRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for order item repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return orderRepository.NewPostgreSQLOrderItemRepository(db), nil
	case "mysql":
		return orderRepository.NewMySQLOrderItemRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOrderUseCase creates the order use case with all its dependencies.
func (c *Container) initOrderUseCase() (orderUsecase.OrderUseCaseInterface, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for order use case: %w", err)
	}

	orderRepo, err := c.OrderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order repository for order use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for order use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for order use case: %w", err)
	}

	baseUseCase := orderUsecase.NewOrderUseCase(txManager, orderRepo, userRepo, productRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for order use case: %w", err)
		}
		return orderUsecase.NewOrderUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initOrderItemUseCase creates the order item use case with all its dependencies.
func (c *Container) initOrderItemUseCase() (orderUsecase.OrderItemUseCaseInterface, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for order item use case: %w", err)
	}

	itemRepo, err := c.OrderItemRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order item repository for order item use case: %w", err)
	}

	orderRepo, err := c.OrderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order repository for order item use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for order item use case: %w", err)
	}

	return orderUsecase.NewOrderItemUseCase(txManager, itemRepo, orderRepo, productRepo), nil
}

// initOrderHandler creates the order HTTP handler with all its dependencies.
func (c *Container) initOrderHandler() (*orderHTTP.OrderHandler, error) {
	orderUseCase, err := c.OrderUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get order use case for order handler: %w", err)
	}

	logger := c.Logger()

	return orderHTTP.NewOrderHandler(orderUseCase, logger), nil
}

// initOrderItemHandler creates the order item HTTP handler with all its dependencies.
func (c *Container) initOrderItemHandler() (*orderHTTP.OrderItemHandler, error) {
	orderItemUseCase, err := c.OrderItemUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get order item use case for order item handler: %w", err)
	}

	logger := c.Logger()

	return orderHTTP.NewOrderItemHandler(orderItemUseCase, logger), nil
}
