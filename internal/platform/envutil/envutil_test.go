package envutil

import (
	"reflect"
	"testing"
)

func TestString(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_STR", "  value ")
	if got := String("STOREFRONT_TEST_STR", "def", nil); got != "value" {
		t.Fatalf("got %q", got)
	}
	if got := String("STOREFRONT_TEST_MISSING", "def", nil); got != "def" {
		t.Fatalf("got %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_INT", "42")
	if got := Int("STOREFRONT_TEST_INT", 1, nil); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("STOREFRONT_TEST_INT", "forty-two")
	if got := Int("STOREFRONT_TEST_INT", 1, nil); got != 1 {
		t.Fatalf("got %d", got)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"on": true, "TRUE": true, "0": false, "no": false, "maybe": true}
	for raw, want := range cases {
		t.Setenv("STOREFRONT_TEST_BOOL", raw)
		if got := Bool("STOREFRONT_TEST_BOOL", true, nil); got != want {
			t.Fatalf("%q: got %v want %v", raw, got, want)
		}
	}
}

func TestList(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_LIST", "a, b,,c ")
	got := List("STOREFRONT_TEST_LIST", nil, nil)
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("got %v", got)
	}
	t.Setenv("STOREFRONT_TEST_LIST", " , ")
	if got := List("STOREFRONT_TEST_LIST", []string{"d"}, nil); !reflect.DeepEqual(got, []string{"d"}) {
		t.Fatalf("got %v", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_FLOAT", "0.25")
	if got := Float("STOREFRONT_TEST_FLOAT", 1, nil); got != 0.25 {
		t.Fatalf("got %v", got)
	}
	t.Setenv("STOREFRONT_TEST_FLOAT", "half")
	if got := Float("STOREFRONT_TEST_FLOAT", 0.1, nil); got != 0.1 {
		t.Fatalf("got %v", got)
	}
}
