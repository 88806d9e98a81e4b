package core

import (
	"context"
	"testing"
)

type limitConfig struct {
	Limit int
}

type labelConfig struct {
	Label string
}

func TestWithConfig(t *testing.T) {
	t.Run("stores config in context", func(t *testing.T) {
		ctx := context.Background()
		cfg := &limitConfig{Limit: 7}

		newCtx := WithConfig(ctx, cfg)
		if newCtx == ctx {
			t.Error("WithConfig() should return new context")
		}

		got, ok := GetConfig[*limitConfig](newCtx)
		if !ok {
			t.Fatal("GetConfig() returned false, want true")
		}
		if got != cfg {
			t.Errorf("GetConfig() = %v, want %v", got, cfg)
		}
	})

	t.Run("later config of same type wins", func(t *testing.T) {
		ctx := WithConfig(context.Background(), &limitConfig{Limit: 1})
		ctx = WithConfig(ctx, &limitConfig{Limit: 2})

		got, _ := GetConfig[*limitConfig](ctx)
		if got.Limit != 2 {
			t.Errorf("GetConfig().Limit = %d, want 2", got.Limit)
		}
	})

	t.Run("different types are independent", func(t *testing.T) {
		ctx := WithConfig(context.Background(), &limitConfig{Limit: 3})
		ctx = WithConfig(ctx, &labelConfig{Label: "rows"})

		limit, ok1 := GetConfig[*limitConfig](ctx)
		label, ok2 := GetConfig[*labelConfig](ctx)
		if !ok1 || limit.Limit != 3 {
			t.Errorf("limitConfig not found or wrong value")
		}
		if !ok2 || label.Label != "rows" {
			t.Errorf("labelConfig not found or wrong value")
		}
	})
}

func TestConfigOr(t *testing.T) {
	def := &limitConfig{Limit: 7}

	if got := ConfigOr(context.Background(), def); got != def {
		t.Errorf("ConfigOr() without config = %v, want default", got)
	}

	set := &limitConfig{Limit: 12}
	ctx := WithConfig(context.Background(), set)
	if got := ConfigOr(ctx, def); got != set {
		t.Errorf("ConfigOr() = %v, want attached config", got)
	}
}
