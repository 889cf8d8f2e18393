package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionCodeValidator(t *testing.T) {
	RegisterGinValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	for _, code := range []string{"84", "01", "2A", "COM", "1"} {
		assert.NoError(t, v.Var(code, "regioncode"), "code %q", code)
	}

	for _, code := range []string{"", "8 4", "abcd", "84-1", "auvergne"} {
		assert.Error(t, v.Var(code, "regioncode"), "code %q", code)
	}
}
