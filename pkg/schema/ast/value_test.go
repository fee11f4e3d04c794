package ast

import (
	"reflect"
	"testing"
)

func TestValue_Get(t *testing.T) {
	m := Mapping(
		Pair("a", Scalar("1")),
		Pair("b", Sequence(Scalar("x"), Scalar("y"))),
	)

	if v, ok := m.Get("a"); !ok || v.Text != "1" {
		t.Errorf("Get(a) = %v, %v; want scalar 1, true", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
	if _, ok := Scalar("s").Get("a"); ok {
		t.Error("Get on scalar = true, want false")
	}

	var nilValue *Value
	if _, ok := nilValue.Get("a"); ok {
		t.Error("Get on nil = true, want false")
	}
}

func TestValue_KeysPreserveOrder(t *testing.T) {
	m := Mapping(
		Pair("zeta", Scalar("1")),
		Pair("alpha", Scalar("2")),
		Pair("mid", Scalar("3")),
	)

	want := []string{"zeta", "alpha", "mid"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestValue_DuplicateKeysFirstWins(t *testing.T) {
	m := Mapping(
		Pair("a", Scalar("first")),
		Pair("a", Scalar("second")),
	)

	if v, _ := m.Get("a"); v.Text != "first" {
		t.Errorf("Get(a) = %q, want first occurrence", v.Text)
	}
}

func TestValue_Len(t *testing.T) {
	tests := []struct {
		name  string
		value *Value
		want  int
	}{
		{"scalar", Scalar("x"), 0},
		{"empty sequence", Sequence(), 0},
		{"sequence", Sequence(Scalar("a"), Scalar("b")), 2},
		{"mapping", Mapping(Pair("a", Scalar("1"))), 1},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValue_KindPredicates(t *testing.T) {
	if !Scalar("x").IsScalar() || Scalar("x").IsMapping() || Scalar("x").IsSequence() {
		t.Error("scalar predicates wrong")
	}
	if !Sequence().IsSequence() || !Mapping().IsMapping() {
		t.Error("composite predicates wrong")
	}

	var nilValue *Value
	if nilValue.IsScalar() || nilValue.IsSequence() || nilValue.IsMapping() {
		t.Error("nil value must satisfy no predicate")
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		value *Value
		want  string
	}{
		{Scalar("high"), "high"},
		{Sequence(), "<sequence>"},
		{Mapping(), "<mapping>"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLocation_String(t *testing.T) {
	loc := Location{File: "settings.yaml", Line: 12, Column: 3}
	if got := loc.String(); got != "settings.yaml:12:3" {
		t.Errorf("String() = %q", got)
	}
	if !loc.IsValid() {
		t.Error("IsValid() = false, want true")
	}

	empty := Location{}
	if got := empty.String(); got != "<unknown>" {
		t.Errorf("String() = %q, want <unknown>", got)
	}
	if empty.IsValid() {
		t.Error("IsValid() = true, want false")
	}
}
