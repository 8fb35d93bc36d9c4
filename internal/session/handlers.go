package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/vasiliy-maslov/craftcart/internal/cart"
	"github.com/vasiliy-maslov/craftcart/internal/catalog"
	"github.com/vasiliy-maslov/craftcart/internal/money"
	"github.com/vasiliy-maslov/craftcart/internal/order"
)

func (s *Session) ViewCatalog(ctx context.Context) error {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}

	s.console.Println("\nProduct Catalog:")
	for _, p := range products {
		s.console.Println(p)
	}
	return nil
}

// AddToCart keeps asking for products until the user stops. Unknown ids are
// reported and asked for again.
func (s *Session) AddToCart(ctx context.Context) error {
	for {
		productID, err := s.console.Int("Enter Product ID to add to cart: ")
		if err != nil {
			return err
		}

		p, err := s.catalog.GetProduct(ctx, productID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			s.console.Println("Product not found.")
			continue
		}
		if err != nil {
			return err
		}

		qty, err := s.askQuantity()
		if err != nil {
			return err
		}

		item, merged, err := s.cart.Add(p, qty)
		if errors.Is(err, cart.ErrInvalidQuantity) {
			s.console.Printf("Cannot add %d more of %s.\n", qty, p.Name)
			s.logger.Debug().Err(err).Int("product_id", p.ID).Msg("session: cart add rejected")
			continue
		}
		if err != nil {
			return err
		}
		if merged {
			s.console.Printf("Updated %s to quantity %d\n", item.Product.Name, item.Quantity)
		} else {
			s.console.Printf("Added: %s\n", item.Product.Name)
		}
		s.logger.Debug().Int("product_id", p.ID).Int("quantity", item.Quantity).Bool("merged", merged).Msg("session: cart updated")

		more, err := s.console.Confirm("Add another product? (yes/no): ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (s *Session) askQuantity() (int, error) {
	for {
		qty, err := s.console.Int("Enter quantity: ")
		if err != nil {
			return 0, err
		}
		if qty >= 1 {
			return qty, nil
		}
		s.console.Println("Quantity must be at least 1.")
	}
}

// ViewCart lists the cart with 1-based positions and optionally removes one
// product by id.
func (s *Session) ViewCart(_ context.Context) error {
	if s.cart.IsEmpty() {
		s.console.Println("Cart is empty.")
		return nil
	}

	s.console.Println("\nCurrent Cart Items:")
	for i, item := range s.cart.Items() {
		s.console.Printf("%d. %s (x%d) - %s\n", i+1, item.Product.Name, item.Quantity, money.Format(item.LineTotal()))
	}

	remove, err := s.console.Confirm("Do you want to remove any item? (yes/no): ")
	if err != nil || !remove {
		return err
	}

	productID, err := s.console.Int("Enter product ID to remove: ")
	if err != nil {
		return err
	}

	if err := s.cart.Remove(productID); err != nil {
		if errors.Is(err, cart.ErrItemNotInCart) {
			s.console.Println("Item not found in cart.")
			return nil
		}
		return err
	}
	s.console.Println("Item removed from cart.")
	return nil
}

// PlaceOrder turns the cart into an order and empties the cart.
func (s *Session) PlaceOrder(ctx context.Context) error {
	if s.cart.IsEmpty() {
		s.console.Println("Your cart is empty. Add products first.")
		return nil
	}

	o, err := s.orders.PlaceOrder(ctx, s.Username, s.cart.Items())
	if errors.Is(err, order.ErrEmptyOrder) || errors.Is(err, order.ErrInvalidItem) {
		s.console.Println("Order could not be placed. Please review your cart.")
		s.logger.Debug().Err(err).Msg("session: order rejected")
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: place order: %w", err)
	}

	s.console.Printf("Order placed! Your Order ID is: %d\n", o.ID)
	s.cart.Clear()
	s.logger.Info().Int("order_id", o.ID).Msg("session: cart checked out")
	return nil
}

func (s *Session) TrackOrder(ctx context.Context) error {
	o, err := s.lookupOrder(ctx, "Enter your Order ID: ", "Order not found.")
	if err != nil || o == nil {
		return err
	}
	return o.WriteStatus(s.console.Out(), s.now())
}

func (s *Session) PrintInvoice(ctx context.Context) error {
	o, err := s.lookupOrder(ctx, "Enter Order ID for invoice: ", "No such order.")
	if err != nil || o == nil {
		return err
	}
	return o.WriteInvoice(s.console.Out(), s.now())
}

// lookupOrder returns nil without error when the order does not exist, after
// printing notFound.
func (s *Session) lookupOrder(ctx context.Context, prompt, notFound string) (*order.Order, error) {
	id, err := s.console.Int(prompt)
	if err != nil {
		return nil, err
	}

	o, err := s.orders.GetOrderByID(ctx, id)
	if errors.Is(err, order.ErrOrderNotFound) {
		s.console.Println(notFound)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Session) Exit() {
	s.console.Printf("Thanks for shopping with CraftCart, %s!\n", s.Username)
	s.logger.Info().Msg("session: user exited")
}
