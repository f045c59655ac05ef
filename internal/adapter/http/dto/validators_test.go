package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct(t *testing.T) {
	req := CreateSettlementRequest{
		Currency:  "  aed  ",
		Reference: `<script>alert("x")</script>`,
		BankCode:  " ENBD ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "aed", req.Currency)
	assert.Equal(t, "ENBD", req.BankCode)
	assert.NotContains(t, req.Reference, "<script>")
}

func TestSanitizeStruct_NonStruct(t *testing.T) {
	s := "unchanged"
	SanitizeStruct(&s)
	assert.Equal(t, "unchanged", s)

	SanitizeStruct(nil)
}

func TestSafeStringPattern(t *testing.T) {
	assert.True(t, safeStringRe.MatchString("ENBD"))
	assert.True(t, safeStringRe.MatchString("bank.ops-1_a"))
	assert.False(t, safeStringRe.MatchString("EN BD"))
	assert.False(t, safeStringRe.MatchString("bank';--"))
	assert.False(t, safeStringRe.MatchString(""))
}
