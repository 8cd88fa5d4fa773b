package bx

import "testing"

// TestKindEncoding pins the exact tag values; they are a public
// contract.
func TestKindEncoding(t *testing.T) {
	tests := []struct {
		kind Kind
		want Kind
	}{
		{KZero, 0x00}, {KOne, 0x01}, {KLog, 0x04}, {KIll, 0x06},
		{KComp, 0x08}, {KVar, 0x09},
		{KNor, 0x10}, {KOr, 0x11}, {KNand, 0x12}, {KAnd, 0x13},
		{KXnor, 0x14}, {KXor, 0x15}, {KNeq, 0x16}, {KEq, 0x17},
		{KNimpl, 0x18}, {KImpl, 0x19}, {KNite, 0x1A}, {KIte, 0x1B},
	}
	for _, tc := range tests {
		if tc.kind != tc.want {
			t.Errorf("kind encoding: got 0x%02X want 0x%02X", uint8(tc.kind), uint8(tc.want))
		}
	}
}

func TestKindPredicates(t *testing.T) {
	atoms := []Kind{KZero, KOne, KLog, KIll, KComp, KVar}
	ops := []Kind{KNor, KOr, KNand, KAnd, KXnor, KXor, KNeq, KEq, KNimpl, KImpl, KNite, KIte}

	for _, k := range atoms {
		if !k.IsAtom() || k.IsOp() {
			t.Errorf("kind 0x%02X should be an atom", uint8(k))
		}
	}
	for _, k := range ops {
		if !k.IsOp() || k.IsAtom() {
			t.Errorf("kind 0x%02X should be an operator", uint8(k))
		}
	}

	for _, k := range []Kind{KZero, KOne, KLog, KIll} {
		if !k.IsConst() {
			t.Errorf("kind 0x%02X should be a constant", uint8(k))
		}
	}
	if !KZero.IsKnown() || !KOne.IsKnown() {
		t.Error("0 and 1 are known constants")
	}
	if !KLog.IsUnknown() || !KIll.IsUnknown() {
		t.Error("X and ? are unknown constants")
	}
	if !KComp.IsLit() || !KVar.IsLit() {
		t.Error("complement and variable are literals")
	}
	for _, k := range []Kind{KNor, KOr, KNand, KAnd, KXnor, KXor, KNeq, KEq} {
		if !k.IsNary() {
			t.Errorf("kind 0x%02X should be n-ary", uint8(k))
		}
	}
	for _, k := range []Kind{KNimpl, KImpl, KNite, KIte} {
		if k.IsNary() {
			t.Errorf("kind 0x%02X should be fixed-arity", uint8(k))
		}
	}

	for _, k := range []Kind{KOne, KVar, KOr, KAnd, KXor, KEq, KImpl, KIte} {
		if !k.IsPos() || k.IsNeg() {
			t.Errorf("kind 0x%02X should be positive", uint8(k))
		}
	}
	for _, k := range []Kind{KZero, KComp, KNor, KNand, KXnor, KNeq, KNimpl, KNite} {
		if !k.IsNeg() || k.IsPos() {
			t.Errorf("kind 0x%02X should be negative", uint8(k))
		}
	}
}

// TestKindDual checks the dual mapping used by Not: every operator
// pair differs in the polarity bit only, and the unknown constants are
// fixed points.
func TestKindDual(t *testing.T) {
	pairs := [][2]Kind{
		{KZero, KOne}, {KComp, KVar},
		{KNor, KOr}, {KNand, KAnd}, {KXnor, KXor}, {KNeq, KEq},
		{KNimpl, KImpl}, {KNite, KIte},
	}
	for _, p := range pairs {
		if p[0].dual() != p[1] || p[1].dual() != p[0] {
			t.Errorf("dual of 0x%02X/0x%02X broken", uint8(p[0]), uint8(p[1]))
		}
	}
	if KLog.dual() != KLog || KIll.dual() != KIll {
		t.Error("X and ? must be their own duals")
	}
}
