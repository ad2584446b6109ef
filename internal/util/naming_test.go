package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "script.ps1", want: "script.ps1"},
		{name: "spaces", in: "My Script  File.ps1", want: "My_Script_File.ps1"},
		{name: "unix traversal", in: "../../etc/passwd", want: "etc_passwd"},
		{name: "windows path", in: `C:\Users\admin\deploy.ps1`, want: "C_Users_admin_deploy.ps1"},
		{name: "accents decomposed", in: "café.psm1", want: "cafe.psm1"},
		{name: "non-latin dropped", in: "скрипт.ps1", want: "ps1"},
		{name: "special chars stripped", in: "a$b%c!.psd1", want: "abc.psd1"},
		{name: "hidden file", in: ".profile.ps1", want: "profile.ps1"},
		{name: "only dots", in: "...", want: "unnamed"},
		{name: "empty", in: "", want: "unnamed"},
		{name: "fullwidth", in: "ｔｅｓｔ.ps1", want: "test.ps1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeFilename_KeepsExtensionWhenTruncating(t *testing.T) {
	long := strings.Repeat("a", 300) + ".ps1"

	got := SanitizeFilename(long)

	assert.Len(t, got, 255)
	assert.True(t, strings.HasSuffix(got, ".ps1"))
}
