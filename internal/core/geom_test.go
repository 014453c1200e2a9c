package core

import (
	"errors"
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 1, 3, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{4, 2, true},
		{5, 1, false},
		{2, 3, false},
		{1, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name string
		area Rect
		w, h int
		want Rect
	}{
		{"fits", NewRect(0, 1, 10, 6), 4, 2, NewRect(3, 3, 4, 2)},
		{"exact", NewRect(5, 5, 4, 4), 4, 4, NewRect(5, 5, 4, 4)},
		{"odd slack rounds left", NewRect(0, 0, 5, 5), 2, 2, NewRect(1, 1, 2, 2)},
		{"overhang", NewRect(0, 0, 2, 2), 4, 4, NewRect(-1, -1, 4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.area.Centered(tt.w, tt.h); got != tt.want {
				t.Errorf("Centered = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInUnit(t *testing.T) {
	tests := []struct {
		p        float64
		expected bool
	}{
		{0, true},
		{1, true},
		{0.5, true},
		{-0.0001, false},
		{1.0001, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tc := range tests {
		if got := InUnit(tc.p); got != tc.expected {
			t.Errorf("InUnit(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	err := Invalidf("tree density %v outside [0,1]", 1.5)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected %v to match ErrInvalidParameter", err)
	}
	if errors.Is(err, ErrEmptyInput) {
		t.Errorf("invalid parameter error should not match ErrEmptyInput")
	}
	if err.Error() != "[INVALID_PARAMETER] tree density 1.5 outside [0,1]" {
		t.Errorf("unexpected message %q", err.Error())
	}

	empty := ValidationError{Code: CodeEmptyInput, Message: "image has no pixels"}
	if !errors.Is(empty, ErrEmptyInput) {
		t.Error("empty input error should match ErrEmptyInput")
	}

	mismatch := ValidationError{Code: CodeDimensionMismatch, Message: "5x5 vs 4x4"}
	if !errors.Is(mismatch, ErrInvalidParameter) {
		t.Error("dimension mismatch should match ErrInvalidParameter")
	}

	var ve ValidationError
	if !errors.As(err, &ve) || ve.Code != CodeInvalidParameter {
		t.Errorf("errors.As gave %+v", ve)
	}
}
