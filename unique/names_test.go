package unique

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Get(t *testing.T) {
	names := NewNames("p")

	assert.Equal(t, "e", names.Get("e"))
	assert.Equal(t, "e1", names.Get("e"))
	assert.Equal(t, "e2", names.Get("e"))
	assert.Equal(t, "p1", names.Get("p"))
}

func Test_Reserved(t *testing.T) {
	names := NewNames("ctx", "res")

	assert.Equal(t, "ctx1", names.Get("ctx"))
	assert.Equal(t, "res1", names.Get("res"))
	assert.Equal(t, "id", names.Get("id"))
}
