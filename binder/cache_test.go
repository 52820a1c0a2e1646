package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/seam/binder"
	"go.trai.ch/seam/domain"
)

func TestViewCache_PutGet(t *testing.T) {
	viewA := &struct{ name string }{"a"}
	viewB := &struct{ name string }{"b"}

	tests := []struct {
		name    string
		enabled bool
		putKey  domain.ContextKey
		getKey  domain.ContextKey
		want    domain.View
		wantOK  bool
	}{
		{
			name:    "roundtrip with explicit key",
			enabled: true,
			putKey:  "main",
			getKey:  "main",
			want:    viewA,
			wantOK:  true,
		},
		{
			name:    "zero key stores under default context",
			enabled: true,
			putKey:  "",
			getKey:  domain.DefaultContext,
			want:    viewA,
			wantOK:  true,
		},
		{
			name:    "default context retrievable via zero key",
			enabled: true,
			putKey:  domain.DefaultContext,
			getKey:  "",
			want:    viewA,
			wantOK:  true,
		},
		{
			name:    "miss on unknown key",
			enabled: true,
			putKey:  "main",
			getKey:  "detail",
			wantOK:  false,
		},
		{
			name:    "put is a no-op while disabled",
			enabled: false,
			putKey:  "main",
			getKey:  "main",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := binder.NewViewCache(tt.enabled)
			c.Put(tt.putKey, viewA)

			got, ok := c.Get(tt.getKey)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Same(t, tt.want, got)
			}
		})
	}

	t.Run("overwrite replaces prior entry", func(t *testing.T) {
		c := binder.NewViewCache(true)
		c.Put("main", viewA)
		c.Put("main", viewB)

		got, ok := c.Get("main")
		assert.True(t, ok)
		assert.Same(t, viewB, got)
		assert.Equal(t, 1, c.Len())
	})
}

func TestViewCache_DisableClears(t *testing.T) {
	viewA := &struct{ name string }{"a"}
	viewB := &struct{ name string }{"b"}

	c := binder.NewViewCache(true)
	c.Put("main", viewA)
	c.Put("detail", viewB)
	assert.Equal(t, 2, c.Len())

	c.Configure(false)

	assert.False(t, c.Enabled())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("main")
	assert.False(t, ok)
	_, ok = c.Get("detail")
	assert.False(t, ok)
}

func TestViewCache_ReenableStartsEmpty(t *testing.T) {
	viewA := &struct{ name string }{"a"}

	c := binder.NewViewCache(true)
	c.Put("main", viewA)
	c.Configure(false)
	c.Configure(true)

	_, ok := c.Get("main")
	assert.False(t, ok)

	// New entries are accepted again.
	c.Put("main", viewA)
	got, ok := c.Get("main")
	assert.True(t, ok)
	assert.Same(t, viewA, got)
}

func TestViewCache_GetUnaffectedByEnabledState(t *testing.T) {
	viewA := &struct{ name string }{"a"}

	c := binder.NewViewCache(true)
	c.Put("main", viewA)

	// Entries cached before a disable are gone, but an entry cached while
	// enabled stays retrievable for as long as caching remains enabled.
	got, ok := c.Get("main")
	assert.True(t, ok)
	assert.Same(t, viewA, got)
}
