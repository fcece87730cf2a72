//go:build unit || integration

package builder

import (
	"evcharge/internal/domain/client"
	reqdto "evcharge/internal/handler/dto/request"
)

type ClientBuilder struct {
	Name  string
	Email string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		Name:  "Ada Driver",
		Email: "ada@example.com",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) BuildDomain() (*client.Client, error) {
	return client.NewClient(b.Name, b.Email)
}

func (b *ClientBuilder) BuildRegisterRequestDTO() reqdto.RegisterClientRequest {
	return reqdto.RegisterClientRequest{
		Name:  b.Name,
		Email: b.Email,
	}
}
