package types

import (
	"bytes"
	"testing"
)

func TestContextConsumeTick(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	ctx.Ticks = 2

	if !ctx.ConsumeTick() {
		t.Fatalf("expected budget to remain after first tick")
	}
	if ctx.ConsumeTick() {
		t.Fatalf("expected budget to be exhausted after second tick")
	}
}

func TestContextWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(&buf)
	ctx.Output.Write([]byte("hello"))
	if buf.String() != "hello" {
		t.Errorf("expected output written through Context.Output, got %q", buf.String())
	}
}
