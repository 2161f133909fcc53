package types

import "testing"

func TestIsAssignableFrom_ExactPrimitiveMatch(t *testing.T) {
	if !TypeInt.IsAssignableFrom(TypeInt) {
		t.Error("Int should be assignable from Int")
	}
	if TypeInt.IsAssignableFrom(TypeString) {
		t.Error("Int should not be assignable from String")
	}
}

func TestIsAssignableFrom_UnionTargetAcceptsAnyMember(t *testing.T) {
	target := NewUnion(TypeInt, TypeString)

	if !target.IsAssignableFrom(TypeInt) {
		t.Error("Union(Int | String) should accept an Int value")
	}
	if !target.IsAssignableFrom(TypeString) {
		t.Error("Union(Int | String) should accept a String value")
	}
	if target.IsAssignableFrom(TypeBoolean) {
		t.Error("Union(Int | String) should not accept a Boolean value")
	}
}

func TestIsAssignableFrom_UnionSourceRequiresEveryMemberToFit(t *testing.T) {
	source := NewUnion(TypeInt, TypeString)

	if TypeInt.IsAssignableFrom(source) {
		t.Error("Int should not accept a value that could be a String")
	}

	wideTarget := NewUnion(TypeInt, TypeString, TypeBoolean)
	if !wideTarget.IsAssignableFrom(source) {
		t.Error("Union(Int | String | Boolean) should accept Union(Int | String)")
	}
}

func TestIsAssignableFrom_AsymmetricUnionCases(t *testing.T) {
	// A Union target is assignable from a narrower, single type (existential).
	union := NewUnion(TypeInt, TypeFloat)
	if !union.IsAssignableFrom(TypeInt) {
		t.Error("Union(Int | Float) should be assignable from Int")
	}
	// But the reverse is false: a single type cannot be assigned from a
	// union that might not fit it (universal quantification on the source).
	if TypeInt.IsAssignableFrom(union) {
		t.Error("Int should not be assignable from Union(Int | Float)")
	}
}

func TestNewUnion_FlattensNestedUnions(t *testing.T) {
	inner := NewUnion(TypeInt, TypeString)
	outer := NewUnion(inner, TypeBoolean)

	if len(outer.Members) != 3 {
		t.Fatalf("expected a flattened 3-member union, got %d: %v", len(outer.Members), outer.Members)
	}
}

func TestFromTagName(t *testing.T) {
	cases := map[string]Type{
		"int":   TypeInt,
		"float": TypeFloat,
		"str":   TypeString,
		"bool":  TypeBoolean,
		"null":  TypeNull,
	}
	for name, want := range cases {
		got, ok := FromTagName(name)
		if !ok || !got.Equal(want) {
			t.Errorf("FromTagName(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
	if _, ok := FromTagName("union"); ok {
		t.Error(`FromTagName("union") should report false: Union has no tag of its own`)
	}
}

func TestType_String(t *testing.T) {
	if got := TypeInt.String(); got != "Int" {
		t.Errorf("TypeInt.String() = %q, want %q", got, "Int")
	}
	union := NewUnion(TypeInt, TypeString)
	if got := union.String(); got != "Union(Int | String)" {
		t.Errorf("union.String() = %q, want %q", got, "Union(Int | String)")
	}
}
