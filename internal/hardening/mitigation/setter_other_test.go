//go:build !windows

package mitigation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpyw/winharden/internal/hardening/mitigation"
)

func TestProcessSetter_Unsupported(t *testing.T) {
	t.Parallel()

	reporter := &fakeReporter{}

	assert.False(t, mitigation.NewApplier(mitigation.ProcessSetter(), reporter).Apply())
	assert.Equal(t, []string{"SetProcessImageLoadPolicy"}, reporter.labels)
	assert.True(t, errors.Is(reporter.errs[0], errors.ErrUnsupported))
}
