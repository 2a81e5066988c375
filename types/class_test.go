package types

import "testing"

func TestMethodResolutionWalksInheritanceChain(t *testing.T) {
	base := NewClass("Animal", []*Method{
		{Name: "speak", Params: nil},
		{Name: "eat", Params: []string{"food"}},
	}, nil)
	derived := NewClass("Dog", []*Method{
		{Name: "speak", Params: nil},
	}, base)

	m, ok := derived.GetMethod("speak")
	if !ok || m.Name != "speak" {
		t.Fatalf("expected Dog's own speak() to win")
	}
	// Confirm it's Dog's own method, not Animal's, by identity.
	if m != derived.Methods[0] {
		t.Errorf("GetMethod returned a different speak method than Dog's own")
	}

	m, ok = derived.GetMethod("eat")
	if !ok || m != base.Methods[1] {
		t.Fatalf("expected eat() to resolve to Animal's method via inheritance")
	}

	if _, ok := derived.GetMethod("fly"); ok {
		t.Errorf("expected fly() to be unresolved")
	}
}

func TestHasMethodChecksArityAfterNameMatch(t *testing.T) {
	base := NewClass("Base", []*Method{
		{Name: "f", Params: []string{"x"}},
	}, nil)
	derived := NewClass("Derived", nil, base)

	if !derived.HasMethod("f", 1) {
		t.Errorf("expected f/1 to resolve via base class")
	}
	// Per spec: arity is checked only at call time, and a wrong-arity name
	// match is not retried against the base class.
	if derived.HasMethod("f", 0) {
		t.Errorf("expected f/0 to be rejected even though f/1 exists on the base")
	}
}

func TestInstancesShareFieldMutations(t *testing.T) {
	cls := NewClass("Box", nil, nil)
	a := NewInstance(cls)
	b := a // second handle to the same instance

	a.Fields.Set("x", NewNumber(1))
	v, ok := b.Fields.Get("x")
	if !ok || v.(Number).Val != 1 {
		t.Fatalf("expected mutation through a to be visible through b")
	}
}
