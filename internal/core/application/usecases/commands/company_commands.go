package commands

import (
	"context"
	"errors"

	"portops/internal/core/domain/model/company"
	"portops/internal/pkg/guard"
)

var ErrCreateCompanyCommandIsNotConstructed = errors.New(
	"CreateCompanyCommand must be created via NewCreateCompanyCommand constructor",
)

// CreateCompanyCommand represents a request to register a shipping company.
type CreateCompanyCommand struct { //nolint:recvcheck //using for validation
	name    string
	country string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateCompanyCommand creates a command to register a company. Field
// invariants are enforced by the Company constructor.
func NewCreateCompanyCommand(name, country, email, phone, address string) (CreateCompanyCommand, error) {
	return CreateCompanyCommand{
		name:    name,
		country: country,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyCommandIsNotConstructed)
}

// CompanyCommandHandler handles company registration.
type CompanyCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompanyCommandHandler creates a handler for company write operations.
func NewCompanyCommandHandler(uowFactory UoWFactory) CompanyCommandHandler {
	return CompanyCommandHandler{uowFactory: uowFactory}
}

// HandleCreate registers a new company and returns it with its storage ID.
func (h CompanyCommandHandler) HandleCreate(
	ctx context.Context, cmd CreateCompanyCommand,
) (*company.Company, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newCompany, err := company.NewCompany(cmd.name, cmd.country, cmd.email, cmd.phone, cmd.address)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CompanyRepository().Add(ctx, newCompany); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCompany, nil
}
