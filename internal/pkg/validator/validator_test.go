package validator

import (
	"errors"
	"testing"
)

type signupBody struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Status   string `validate:"omitempty,oneof=active pending suspended"`
}

func TestStructValid(t *testing.T) {
	err := Struct(&signupBody{Username: "bob", Email: "bob@agrihero6.com", Status: "active"})
	if err != nil {
		t.Errorf("Struct = %v, want nil", err)
	}
}

func TestStructFieldMessages(t *testing.T) {
	err := Struct(&signupBody{Username: "ab", Email: "not-an-email", Status: "banned"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error has type %T", err)
	}

	// Field names follow the API's JSON convention of a leading lower case
	want := map[string]string{
		"username": "must be at least 3 characters",
		"email":    "must be a valid email address",
		"status":   "must be one of: active, pending, suspended",
	}
	for field, msg := range want {
		if got := verr.Fields[field]; got != msg {
			t.Errorf("Fields[%q] = %q, want %q", field, got, msg)
		}
	}
}

func TestStructRequired(t *testing.T) {
	err := Struct(&signupBody{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error has type %T", err)
	}
	if verr.Fields["username"] != "is required" || verr.Fields["email"] != "is required" {
		t.Errorf("Fields = %v", verr.Fields)
	}
	if _, ok := verr.Fields["status"]; ok {
		t.Error("omitempty field reported on empty value")
	}
}
