package extractfx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No file: every value falls back to its default.
	config, err := LoadConfig(filepath.Join(t.TempDir(), DefaultConfigFile))
	require.NoError(t, err)
	require.Equal(t, "std::format", config.FunctionName)
	require.False(t, config.LineDirectives)
	require.Contains(t, config.Extensions, ".cpp")
	require.Contains(t, config.Extensions, ".hpp")
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extractfx.yaml")
	content := `function_name: "fmt::format"
line_directives: true
extensions: [".cc", ".hh"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "fmt::format", config.FunctionName)
	require.True(t, config.LineDirectives)
	require.Equal(t, []string{".cc", ".hh"}, config.Extensions)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extractfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("line_directives: true\n"), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.True(t, config.LineDirectives)
	require.Equal(t, "std::format", config.FunctionName)
	require.NotEmpty(t, config.Extensions)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extractfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format_name: oops\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"asterisk not last", `function_name: "for*mat"` + "\n"},
		{"extension without dot", `extensions: ["cpp"]` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "extractfx.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			require.ErrorIs(t, err, ErrConfigValidation)
		})
	}
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("EXTRACTFX_FUNCTION", "std::vformat*")

	path := filepath.Join(t.TempDir(), "extractfx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("function_name: \"${EXTRACTFX_FUNCTION}\"\n"), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "std::vformat*", config.FunctionName)
}
