package auth

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-task-manager/models"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalFromContext(t *testing.T) {
	ctx := context.Background()

	_, ok := PrincipalFromContext(ctx)
	assert.False(t, ok)
	assert.False(t, IsAuthenticated(ctx))

	ctx = WithPrincipal(ctx, models.Principal{Subject: "42"})

	p, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "42", p.Subject)
	assert.True(t, IsAuthenticated(ctx))
}

type foreignKey string

func TestPrincipalFromContext_ForeignKeyIgnored(t *testing.T) {
	ctx := context.WithValue(context.Background(), foreignKey("principal"), models.Principal{Subject: "1"})

	assert.False(t, IsAuthenticated(ctx))
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "principal", principalCtxKey.String())
}
