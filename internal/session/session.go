// Package session runs the interactive shopping menu for one logged-in user.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/craftcart/internal/cart"
	"github.com/vasiliy-maslov/craftcart/internal/catalog"
	"github.com/vasiliy-maslov/craftcart/internal/console"
	"github.com/vasiliy-maslov/craftcart/internal/order"
)

// Deps are the collaborators a Session needs.
type Deps struct {
	Catalog  catalog.Service
	Orders   order.Service
	Prompter *console.Prompter
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Session holds the state of one shopping run: who is logged in, the live
// cart, and the services that own the catalog and the placed orders.
type Session struct {
	ID       uuid.UUID
	Username string

	catalog catalog.Service
	orders  order.Service
	cart    *cart.Cart
	console *console.Prompter
	now     func() time.Time
	logger  zerolog.Logger
}

func New(deps Deps) (*Session, error) {
	if deps.Catalog == nil || deps.Orders == nil || deps.Prompter == nil {
		return nil, errors.New("session: catalog, orders and prompter are required")
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("session: failed to generate session id: %w", err)
	}

	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	return &Session{
		ID:      id,
		catalog: deps.Catalog,
		orders:  deps.Orders,
		cart:    cart.New(),
		console: deps.Prompter,
		now:     now,
		logger:  log.With().Stringer("session_id", id).Logger(),
	}, nil
}

// Cart exposes the live cart.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Login asks for a username and password. Any credentials are accepted and
// the password is not kept.
func (s *Session) Login() error {
	s.console.Println(" Welcome to CraftCart Pro")

	username, err := s.console.Line("Enter username: ")
	if err != nil {
		return err
	}
	if _, err := s.console.Line("Enter password: "); err != nil {
		return err
	}

	s.Username = username
	s.logger = s.logger.With().Str("user", username).Logger()
	s.logger.Info().Msg("session: user logged in")

	s.console.Printf("Login successful. Hello, %s!\n", username)
	return nil
}

// Run logs the user in and serves the menu until Exit is chosen or input
// ends. Exhausted input is treated as a normal exit.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, io.EOF) {
		s.logger.Info().Msg("session: input closed")
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	if err := s.Login(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.showMenu()
		choice, err := s.console.Int("Choose an option: ")
		if err != nil {
			return err
		}

		cont, err := s.Dispatch(ctx, Command(choice))
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

func (s *Session) showMenu() {
	s.console.Println("\n-----CraftCart Menu-----")
	for _, cmd := range Commands() {
		s.console.Printf("%d. %s\n", int(cmd), cmd)
	}
}

// Dispatch runs the handler for cmd. It returns false once the session
// should end.
func (s *Session) Dispatch(ctx context.Context, cmd Command) (bool, error) {
	s.logger.Debug().Stringer("command", cmd).Int("choice", int(cmd)).Msg("session: dispatch")

	if !cmd.Valid() {
		s.console.Println("Invalid option.")
		return true, nil
	}

	var err error
	switch cmd {
	case CommandViewCatalog:
		err = s.ViewCatalog(ctx)
	case CommandAddToCart:
		err = s.AddToCart(ctx)
	case CommandViewCart:
		err = s.ViewCart(ctx)
	case CommandPlaceOrder:
		err = s.PlaceOrder(ctx)
	case CommandTrackOrder:
		err = s.TrackOrder(ctx)
	case CommandPrintInvoice:
		err = s.PrintInvoice(ctx)
	case CommandExit:
		s.Exit()
		return false, nil
	}

	return true, err
}
