package request

import (
	"evcharge/internal/usecase/commands"
)

type RegisterClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (r RegisterClientRequest) ToCommand() commands.RegisterClientCommand {
	return commands.RegisterClientCommand{
		Name:  r.Name,
		Email: r.Email,
	}
}
