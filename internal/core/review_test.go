package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"test.ps1", true},
		{"test.psm1", true},
		{"test.psd1", true},
		{"test.PS1", true},
		{"Module.PsM1", true},
		{"archive.tar.ps1", true},
		{"script.ps1.txt", false},
		{"test.txt", false},
		{"testfile", false},
		{"", false},
		{".ps1", true},
		{"trailingdot.", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedFile(tt.filename))
		})
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "deploy.ps1", BaseName("C:\\Users\\ops\\deploy.ps1"))
	assert.Equal(t, "deploy.ps1", BaseName("/tmp/scripts/deploy.ps1"))
	assert.Equal(t, "deploy.ps1", BaseName("deploy.ps1"))
}

func TestReviewResult_IsError(t *testing.T) {
	assert.False(t, ReviewResult{Text: "fine"}.IsError())
	assert.True(t, ReviewResult{Text: "boom", Failure: &ReviewFailure{Kind: FailureUpstream}}.IsError())
}

func TestAllowedExtensionList(t *testing.T) {
	assert.Equal(t, ".ps1, .psm1, .psd1", AllowedExtensionList())
}
