package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:        "alice",
		Password:        "password123",
		ConfirmPassword: "password123",
		Email:           "alice@example.com",
		MobileNo:        "5551234567",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *RegisterRequest)
	}{
		{"missing username", func(r *RegisterRequest) { r.Username = "" }},
		{"password too short", func(r *RegisterRequest) { r.Password = "short"; r.ConfirmPassword = "short" }},
		{"confirmation mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "different123" }},
		{"missing confirmation", func(r *RegisterRequest) { r.ConfirmPassword = "" }},
		{"invalid email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }},
		{"missing mobile", func(r *RegisterRequest) { r.MobileNo = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Username: "alice", Password: "password123"}
	assert.NoError(t, req.Validate())

	req = LoginRequest{Username: "alice"}
	assert.Error(t, req.Validate())

	req = LoginRequest{Password: "password123"}
	assert.Error(t, req.Validate())
}
