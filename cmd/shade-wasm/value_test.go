package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shade/internal/infrastructure/host"
	"github.com/bnema/shade/internal/ui/theme"
)

func TestValueObject(t *testing.T) {
	p := theme.Mount(context.Background(), theme.DefaultConfig(), host.None())
	defer p.Unmount()

	obj := valueObject(p.Value())
	assert.Equal(t, "system", obj["mode"])
	assert.Equal(t, "light", obj["theme"])
	assert.Equal(t, "light", obj["systemTheme"])
	assert.Equal(t, []any{"light", "dark", "system"}, obj["modes"])
	assert.Equal(t, false, obj["isLoading"])
}
