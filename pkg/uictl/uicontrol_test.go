package uictl_test

import (
	"testing"

	"github.com/alkime/paramctl/pkg/uictl"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float32(0), uictl.Clamp[float32](-0.25, 0, 1))
	assert.Equal(t, float32(1), uictl.Clamp[float32](1.5, 0, 1))
	assert.Equal(t, float32(0.5), uictl.Clamp[float32](0.5, 0, 1))
	assert.Equal(t, 3, uictl.Clamp(7, -3, 3))
}
