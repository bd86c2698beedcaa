package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := Version
	resetParsedVersion()
	Version = v
	t.Cleanup(func() {
		Version = original
		resetParsedVersion()
	})
}

func TestParsed_ValidSemver(t *testing.T) {
	tests := []struct {
		version    string
		wantMajor  uint64
		wantPrerel string
	}{
		{"v1.0.0", 1, ""},
		{"v1.2.3", 1, ""},
		{"v0.1.0", 0, ""},
		{"v1.0.0-beta.1", 1, "beta.1"},
		{"2.0.0-rc.2", 2, "rc.2"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			withVersion(t, tt.version)

			v := Parsed()
			assert.NotNil(t, v)
			assert.Equal(t, tt.wantMajor, v.Major())
			assert.Equal(t, tt.wantPrerel, v.Prerelease())
			assert.Equal(t, tt.wantPrerel != "", IsPrerelease())
			assert.False(t, IsDevBuild())
		})
	}
}

func TestParsed_InvalidVersion(t *testing.T) {
	for _, v := range []string{"dev", "unknown", "", "v1.0.0.0"} {
		t.Run(v, func(t *testing.T) {
			withVersion(t, v)

			assert.Nil(t, Parsed())
			assert.True(t, IsDevBuild())
			assert.False(t, IsPrerelease())
		})
	}
}

func TestSameMajor(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "1.4.2", true},
		{"v1.0.0", "1.0.0", true},
		{"1.0.0", "2.0.0", false},
		{"", "1.0.0", false},
		{"1.0.0", "garbage", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SameMajor(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestInfo(t *testing.T) {
	withVersion(t, "1.2.3")
	origCommit := Commit
	Commit = "abcdef1234567"
	defer func() { Commit = origCommit }()

	info := Info()
	assert.Contains(t, info, "ashsha 1.2.3")
	assert.Contains(t, info, "(abcdef1)")
	assert.Equal(t, "1.2.3", Short())
}
