package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, SplitNonEmpty(" http://a, ,http://b ,", ","))
	assert.Nil(t, SplitNonEmpty("", ","))
}
