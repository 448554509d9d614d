package utils_test

import (
	"testing"

	"github.com/brsantos/burgerhall/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{name: "valid plain", cpf: "52998224725", valid: true},
		{name: "valid formatted", cpf: "529.982.247-25", valid: true},
		{name: "valid second sample", cpf: "111.444.777-35", valid: true},
		{name: "empty", cpf: "", valid: false},
		{name: "whitespace only", cpf: "   ", valid: false},
		{name: "too short", cpf: "5299822472", valid: false},
		{name: "too long", cpf: "529982247255", valid: false},
		{name: "no digits", cpf: "abc.def.ghi-jk", valid: false},
		{name: "repeated digits", cpf: "11111111111", valid: false},
		{name: "repeated digits formatted", cpf: "000.000.000-00", valid: false},
		{name: "first check digit mutated", cpf: "52998224735", valid: false},
		{name: "second check digit mutated", cpf: "52998224726", valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.valid, utils.ValidateCPF(test.cpf))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "simple", email: "user@example.com", valid: true},
		{name: "dotted local part", email: "first.last@sub.domain.org", valid: true},
		{name: "hyphen and underscore", email: "a_b-c@mail.co", valid: true},
		{name: "empty", email: "", valid: false},
		{name: "whitespace only", email: "  ", valid: false},
		{name: "no at sign", email: "plainaddress", valid: false},
		{name: "no domain dot", email: "user@nodot", valid: false},
		{name: "empty local part", email: "@example.com", valid: false},
		{name: "trailing space", email: "user@example.com ", valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.valid, utils.ValidateEmail(test.email))
		})
	}
}
