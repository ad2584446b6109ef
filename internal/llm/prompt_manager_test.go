package llm

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptManager_RenderReview(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	data := ReviewData{Language: "PowerShell", Standards: "STD-TEXT", Code: "Get-Process"}

	tests := []struct {
		name        string
		key         PromptKey
		wantContain []string
		wantAbsent  []string
	}{
		{
			name: "baseline",
			key:  CodeReviewPrompt,
			wantContain: []string{
				"CODING STANDARDS:\nSTD-TEXT",
				"POWERSHELL CODE TO REVIEW:\nGet-Process",
				"1. Overall assessment (Good/Needs Improvement/Poor)",
				"2. Specific issues found",
				"3. Recommendations for improvement",
				"4. Compliments for good practice",
				"Format your response in clear sections.",
			},
			wantAbsent: []string{"Security analysis"},
		},
		{
			name: "enhanced",
			key:  EnhancedReviewPrompt,
			wantContain: []string{
				"STD-TEXT",
				"Get-Process",
				"Overall assessment",
				"line number",
				"Security analysis",
				"Performance notes",
				"Best-practice compliance",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pm.Render(tt.key, DefaultProvider, data)
			require.NoError(t, err)
			for _, s := range tt.wantContain {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.wantAbsent {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestPromptManager_ProviderFallback(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	azure, err := pm.Render(ReviewErrorPrompt, ModelProvider("azure"), ErrorData{Error: "boom"})
	require.NoError(t, err)
	assert.Contains(t, azure, "Azure OpenAI service is properly configured")

	ollama, err := pm.Render(ReviewErrorPrompt, ModelProvider("ollama"), ErrorData{Error: "boom"})
	require.NoError(t, err)
	assert.Contains(t, ollama, "Ollama server")
	assert.Contains(t, ollama, "boom")

	// No provider-specific code_review template exists.
	_, err = pm.Get(CodeReviewPrompt, ModelProvider("gemini"))
	assert.NoError(t, err)
}

func TestPromptManager_UnknownKey(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	_, err = pm.Render(PromptKey("nope"), DefaultProvider, nil)
	assert.Error(t, err)
}

func TestPromptManager_RegisterRejectsBadTemplate(t *testing.T) {
	pm := &PromptManager{prompts: make(map[PromptKey]map[ModelProvider]*template.Template)}
	assert.Error(t, pm.register("broken", DefaultProvider, "{{.Unclosed"))
}
