package commands

import (
	"context"

	"evcharge/internal/domain/client"
	"evcharge/internal/infra"
	"evcharge/internal/pkg/errs"
)

var ErrDuplicateClientEmail = errs.New("a client with this email already exists")

type RegisterClientCommand struct {
	Name  string
	Email string
}

type ClientCommands interface {
	Register(ctx context.Context, cmd RegisterClientCommand) (*client.Client, error)
}

type clientCommandsImpl struct {
	clientRepo ClientRepository
}

func NewClientCommands(clientRepo ClientRepository) ClientCommands {
	return &clientCommandsImpl{clientRepo: clientRepo}
}

func (u *clientCommandsImpl) Register(ctx context.Context, cmd RegisterClientCommand) (*client.Client, error) {
	entity, err := client.NewClient(cmd.Name, cmd.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.clientRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateClientEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}
