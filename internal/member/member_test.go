package member_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mupshaw/gopond/internal/member"
	"github.com/mupshaw/gopond/internal/section"
)

func resolvedMember(t *testing.T) *member.Member {
	t.Helper()
	props, err := section.Resolve("W12X14", 30)
	require.NoError(t, err)
	return member.New("B1", 30, 0.25, member.SimplySupported, props)
}

func TestStations(t *testing.T) {
	m := resolvedMember(t)
	stations := m.Stations()

	require.Len(t, stations, 101)
	assert.Zero(t, stations[0])
	assert.InDelta(t, 30.0, stations[100], 1e-12)
	assert.InDelta(t, 15.0, stations[50], 1e-9)

	for i := 1; i < len(stations); i++ {
		assert.Greater(t, stations[i], stations[i-1])
	}
}

func TestElevationsFollowSlope(t *testing.T) {
	m := resolvedMember(t)
	elevations := m.Elevations()

	require.Len(t, elevations, 101)
	assert.Zero(t, elevations[0])
	// 30 ft at 0.25 in/ft rises 7.5 in.
	assert.InDelta(t, 7.5, elevations[100], 1e-9)
}

func TestFlatMemberElevations(t *testing.T) {
	props, err := section.Resolve("W12X14", 30)
	require.NoError(t, err)
	m := member.New("B1", 30, 0, member.SimplySupported, props)

	for _, e := range m.Elevations() {
		assert.Zero(t, e)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*member.Member)
		valid  bool
	}{
		{name: "valid", mutate: func(*member.Member) {}, valid: true},
		{name: "flat roof is legal", mutate: func(m *member.Member) { m.Slope = 0 }, valid: true},
		{name: "zero span", mutate: func(m *member.Member) { m.Span = 0 }},
		{name: "negative span", mutate: func(m *member.Member) { m.Span = -10 }},
		{name: "negative slope", mutate: func(m *member.Member) { m.Slope = -0.25 }},
		{name: "unresolved section", mutate: func(m *member.Member) { m.Section = section.Properties{Designation: "W12X14"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := resolvedMember(t)
			tt.mutate(m)
			err := m.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *member.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestParseSupportType(t *testing.T) {
	tests := []struct {
		in      string
		want    member.SupportType
		wantErr bool
	}{
		{in: "simple", want: member.SimplySupported},
		{in: "simply-supported", want: member.SimplySupported},
		{in: "cantilever", want: member.Cantilever},
		{in: "continuous", want: member.Continuous},
		{in: "fixed", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := member.ParseSupportType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportTypeRoundTrip(t *testing.T) {
	for _, s := range []member.SupportType{member.SimplySupported, member.Cantilever, member.Continuous} {
		got, err := member.ParseSupportType(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
