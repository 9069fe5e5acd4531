package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true) })
	assert.PanicsWithValue(t, "failed assertion", func() { Assert(false) })
	assert.PanicsWithValue(t, "set is full", func() { Assert(false, "set is full") })
	assert.PanicsWithValue(t, "bad id 7", func() { Assert(false, fmt.Sprintf("bad id %d", 7)) })
}
