package mitigation_test

import (
	"syscall"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/winharden/internal/hardening/mitigation"
)

// recordingSetter records every attempted policy and fails on failAt.
type recordingSetter struct {
	attempts []mitigation.Kind
	failAt   mitigation.Kind
	err      error
}

func (s *recordingSetter) SetPolicy(p mitigation.Policy) error {
	s.attempts = append(s.attempts, p.Kind)
	if s.err != nil && p.Kind == s.failAt {
		return s.err
	}

	return nil
}

type fakeReporter struct {
	labels []string
	errs   []error
}

func (r *fakeReporter) Report(label string, err error) {
	r.labels = append(r.labels, label)
	r.errs = append(r.errs, err)
}

var wantOrder = []mitigation.Kind{
	mitigation.KindImageLoad,
	mitigation.KindFontDisable,
	mitigation.KindDynamicCode,
	mitigation.KindChildProcess,
	mitigation.KindSignature,
	mitigation.KindSystemCallDisable,
	mitigation.KindStrictHandleCheck,
}

func TestPolicies(t *testing.T) {
	t.Parallel()

	policies := mitigation.Policies()
	require.Len(t, policies, 7)

	kinds := lo.Map(policies, func(p mitigation.Policy, _ int) mitigation.Kind { return p.Kind })
	assert.Equal(t, wantOrder, kinds)

	flags := lo.Map(policies, func(p mitigation.Policy, _ int) uint32 { return p.Flags })
	assert.Equal(t, []uint32{0x3, 0x1, 0x1, 0x1, 0x1, 0x1, 0x3}, flags)

	for _, p := range policies {
		assert.Len(t, p.FlagNames, lo.Ternary(p.Flags == 0x3, 2, 1), p.Label())
		assert.NotEmpty(t, p.Summary, p.Label())
	}
}

func TestPolicies_FreshSlice(t *testing.T) {
	t.Parallel()

	first := mitigation.Policies()
	first[0].Flags = 0

	assert.Equal(t, mitigation.ImageLoadNoRemoteImages|mitigation.ImageLoadNoLowMandatoryLabelImages,
		mitigation.Policies()[0].Flags)
}

func TestPolicy_Label(t *testing.T) {
	t.Parallel()

	labels := lo.Map(mitigation.Policies(), func(p mitigation.Policy, _ int) string { return p.Label() })
	assert.Equal(t, []string{
		"SetProcessImageLoadPolicy",
		"SetProcessFontDisablePolicy",
		"SetProcessDynamicCodePolicy",
		"SetProcessChildProcessPolicy",
		"SetProcessSignaturePolicy",
		"SetProcessSystemCallDisablePolicy",
		"SetProcessStrictHandleCheckPolicy",
	}, labels)
}

func TestKind_String_Unknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ProcessMitigationPolicy(0)", mitigation.Kind(0).String())
}

func TestApplier_Apply_AllSucceed(t *testing.T) {
	t.Parallel()

	setter := &recordingSetter{}
	reporter := &fakeReporter{}

	assert.True(t, mitigation.NewApplier(setter, reporter).Apply())
	assert.Equal(t, wantOrder, setter.attempts)
	assert.Empty(t, reporter.labels)
}

func TestApplier_Apply_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	for k, failing := range wantOrder {
		t.Run(failing.String(), func(t *testing.T) {
			t.Parallel()

			setter := &recordingSetter{failAt: failing, err: syscall.Errno(5)}
			reporter := &fakeReporter{}

			assert.False(t, mitigation.NewApplier(setter, reporter).Apply())

			assert.Equal(t, wantOrder[:k+1], setter.attempts, "later policies must not be attempted")
			assert.Equal(t, []string{"Set" + failing.String()}, reporter.labels)
			assert.ErrorIs(t, reporter.errs[0], syscall.Errno(5))
		})
	}
}
