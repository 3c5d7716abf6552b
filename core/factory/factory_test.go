package factory

import (
	"errors"
	"testing"
)

type sample struct{ A int }

type sampleConf struct {
	A int `json:"a"`
}

// Test registry registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample]()
	if err := reg.Register("s", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{A: c.A}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"a": 3}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.A != 3 {
		t.Fatalf("expected 3 got %d", inst.A)
	}
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.Register("y", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "y"}); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestRegistry_FactoryErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry[int]()
	_ = reg.Register("bad", func(map[string]any) (int, error) { return 0, boom })
	if _, err := reg.Create(ModuleConfig{Type: "bad"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry[int]()
	_ = reg.Register("b", func(map[string]any) (int, error) { return 0, nil })
	_ = reg.Register("a", func(map[string]any) (int, error) { return 0, nil })
	names := reg.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestDecode_WeakTypesAndUnknownKeys(t *testing.T) {
	var c sampleConf
	if err := Decode(map[string]any{"a": "7"}, &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.A != 7 {
		t.Fatalf("expected 7 got %d", c.A)
	}
	if err := Decode(map[string]any{"b": 1}, &c); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
