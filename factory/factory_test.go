package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Ptr(t *testing.T) {
	p := Ptr(42)
	assert.Equal(t, 42, *p)
}

func Test_Clone(t *testing.T) {
	assert.Nil(t, Clone[string](nil))

	v := "name"
	c := Clone(&v)
	assert.Equal(t, v, *c)
	assert.NotSame(t, &v, c)
}

func Test_SentinelOf(t *testing.T) {
	assert.Equal(t, 0, SentinelOf[int]())
	assert.Equal(t, "", SentinelOf[string]())
}

func Test_MustSet(t *testing.T) {
	v := "set"
	assert.Equal(t, "set", MustSet(&v, "Name", "WithName"))

	assert.PanicsWithValue(t, "Name is required - use WithName()", func() {
		MustSet[string](nil, "Name", "WithName")
	})
}
