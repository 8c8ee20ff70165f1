package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIndianPhone(t *testing.T) {
	valid := []string{"9876543210", "6000000000", "7123456789", "8999999999"}
	for _, phone := range valid {
		assert.True(t, IsValidIndianPhone(phone), phone)
	}

	invalid := []string{"", "1234567890", "5876543210", "987654321", "98765432100", "98765abcde", "+919876543210"}
	for _, phone := range invalid {
		assert.False(t, IsValidIndianPhone(phone), phone)
	}
}

func TestIsValidPincode(t *testing.T) {
	valid := []string{"560102", "110001", "400058"}
	for _, pin := range valid {
		assert.True(t, IsValidPincode(pin), pin)
	}

	invalid := []string{"", "56010", "5601021", "ABC123", "56 102"}
	for _, pin := range invalid {
		assert.False(t, IsValidPincode(pin), pin)
	}
}
