package access

import (
	"testing"

	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanUseTool(t *testing.T) {
	freeTool, ok := models.ToolByName("dig")
	require.True(t, ok)
	paidTool, ok := models.ToolByName("sslscan")
	require.True(t, ok)

	free := &models.Principal{Username: "alice"}
	paid := &models.Principal{Username: "bob", IsPaid: true}

	tests := []struct {
		name      string
		principal *models.Principal
		tool      models.Tool
		want      bool
	}{
		{name: "nil principal", principal: nil, tool: freeTool, want: false},
		{name: "free user free tool", principal: free, tool: freeTool, want: true},
		{name: "free user paid tool", principal: free, tool: paidTool, want: false},
		{name: "paid user free tool", principal: paid, tool: freeTool, want: true},
		{name: "paid user paid tool", principal: paid, tool: paidTool, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanUseTool(tc.principal, tc.tool))
		})
	}
}

func TestCanGenerateKey(t *testing.T) {
	free := &models.Principal{Username: "alice"}
	paid := &models.Principal{Username: "bob", IsPaid: true}

	t.Run("free key any tier", func(t *testing.T) {
		assert.NoError(t, CanGenerateKey(free, models.KeyTypeFree))
		assert.NoError(t, CanGenerateKey(paid, models.KeyTypeFree))
	})

	t.Run("paid key requires subscription", func(t *testing.T) {
		err := CanGenerateKey(free, models.KeyTypePaid)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrUnauthorized)

		assert.NoError(t, CanGenerateKey(paid, models.KeyTypePaid))
	})

	t.Run("nil principal", func(t *testing.T) {
		assert.ErrorIs(t, CanGenerateKey(nil, models.KeyTypeFree), common.ErrNotAuthenticated)
	})

	t.Run("unknown key type", func(t *testing.T) {
		err := CanGenerateKey(paid, models.KeyType("platinum"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrUnauthorized)
	})
}

func TestRouteByPath(t *testing.T) {
	r, ok := RouteByPath("/admin")
	require.True(t, ok)
	assert.True(t, r.AdminOnly)
	assert.False(t, r.Public)

	r, ok = RouteByPath(LoginPath)
	require.True(t, ok)
	assert.True(t, r.Public)

	_, ok = RouteByPath("/no-such-page")
	assert.False(t, ok)
}
