// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type testStruct struct {
	Name  string `json:"name" validate:"required,min=2,max=10"`
	Count int    `json:"count" validate:"min=1,max=5"`
	Mode  string `json:"mode" validate:"omitempty,oneof=fast slow"`
	Plain int    `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     testStruct
		wantField string
		wantMsg   string
	}{
		{"valid", testStruct{Name: "ok", Count: 1}, "", ""},
		{"required", testStruct{Count: 1}, "name", "name is required"},
		{"string min", testStruct{Name: "a", Count: 1}, "name", "name must be at least 2 characters"},
		{"string max", testStruct{Name: "abcdefghijk", Count: 1}, "name", "name must be at most 10 characters"},
		{"numeric max", testStruct{Name: "ok", Count: 6}, "count", "count must be at most 5"},
		{"oneof", testStruct{Name: "ok", Count: 1, Mode: "warp"}, "mode", "mode must be one of: fast slow"},
		{"go name without json tag", testStruct{Name: "ok", Count: 1, Plain: -1}, "Plain", "Plain must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_Combined(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&testStruct{})
	if verr == nil {
		t.Fatal("expected errors")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(verr.Errors()))
	}
	msg := verr.Error()
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "; ") {
		t.Errorf("Error() = %q", msg)
	}

	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty RequestValidationError should read 'validation failed'")
	}
}
