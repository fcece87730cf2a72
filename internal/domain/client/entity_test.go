//go:build unit

package client_test

import (
	"testing"

	"evcharge/internal/domain/client"
	"evcharge/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("valid client", func(t *testing.T) {
		c, err := builder.NewClientBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Ada Driver", c.Name())
		assert.Equal(t, "ada@example.com", c.Email())
	})

	t.Run("email is normalized to lower case", func(t *testing.T) {
		c, err := builder.NewClientBuilder().
			With(func(b *builder.ClientBuilder) { b.Email = " Ada@Example.COM " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", c.Email())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := builder.NewClientBuilder().
			With(func(b *builder.ClientBuilder) { b.Name = "  " }).
			BuildDomain()
		assert.ErrorIs(t, err, client.ErrEmptyName)
	})

	t.Run("address without at sign rejected", func(t *testing.T) {
		_, err := builder.NewClientBuilder().
			With(func(b *builder.ClientBuilder) { b.Email = "ada.example.com" }).
			BuildDomain()
		assert.ErrorIs(t, err, client.ErrInvalidEmail)
	})
}
