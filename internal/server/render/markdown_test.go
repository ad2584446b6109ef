package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown_HTML(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "headings and lists",
			in:          "# Overall assessment\n\n1. Good\n2. Needs work\n",
			wantContain: []string{"<h1", "Overall assessment", "<ol>", "<li>Good</li>"},
		},
		{
			name:        "fenced code keeps language class",
			in:          "```powershell\nGet-Process\n```\n",
			wantContain: []string{"<pre><code class=\"language-powershell\">", "Get-Process"},
		},
		{
			name:        "script tags removed",
			in:          "Hello <script>alert(1)</script> world",
			wantContain: []string{"Hello"},
			wantAbsent:  []string{"<script"},
		},
		{
			name:        "javascript links neutralised",
			in:          "[click](javascript:alert(1))",
			wantAbsent:  []string{"javascript:"},
		},
		{
			name:        "gfm tables",
			in:          "| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantContain: []string{"<table>", "<td>1</td>"},
		},
	}

	m := NewMarkdown()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.HTML(tt.in)
			require.NoError(t, err)
			for _, s := range tt.wantContain {
				assert.Contains(t, string(got), s)
			}
			for _, s := range tt.wantAbsent {
				assert.NotContains(t, string(got), s)
			}
		})
	}
}
