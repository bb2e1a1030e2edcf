package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasKey(t *testing.T) {
	checker := NewHasKey()

	d := checkStatement(t, checker, `{"A": 3}.has_key("A")`)
	assertDiag(t, d, "W601", 1, 8)

	assert.Nil(t, checkStatement(t, checker, `"A" in {"A": 3}`))
}

func TestRaiseComma(t *testing.T) {
	checker := NewRaiseComma()

	d := checkStatement(t, checker, `raise ValueError, "message"`)
	assertDiag(t, d, "W602", 1, 16)

	assert.Nil(t, checkStatement(t, checker, `raise ValueError("message")`))
}

func TestNotEqual(t *testing.T) {
	checker := NewNotEqual()

	d := checkStatement(t, checker, "a <> b")
	assertDiag(t, d, "W603", 1, 2)

	assert.Nil(t, checkStatement(t, checker, "a != b"))
	assert.Nil(t, checkStatement(t, checker, "a > b"))
	assert.Nil(t, checkStatement(t, checker, "a < b"))
}

func TestBackticks(t *testing.T) {
	checker := NewBackticks()

	d := checkStatement(t, checker, "print `{}`")
	assertDiag(t, d, "W604", 1, 6)

	assert.Nil(t, checkStatement(t, checker, "print repr({})"))
}
