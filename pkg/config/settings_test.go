package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/comconfig/pkg/testutil"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{name: "upper case level", mutate: func(s *Settings) { s.Log.Level = "DEBUG" }},
		{name: "json encoding", mutate: func(s *Settings) { s.Log.Encoding = "json" }},
		{name: "unknown level", mutate: func(s *Settings) { s.Log.Level = "trace" }, wantErr: "log.level"},
		{name: "unknown encoding", mutate: func(s *Settings) { s.Log.Encoding = "logfmt" }, wantErr: "log.encoding"},
		{name: "unknown format", mutate: func(s *Settings) { s.Output.Format = "toml" }, wantErr: "output.format"},
		{name: "negative sampling", mutate: func(s *Settings) { s.Tracing.SamplingRate = -0.1 }, wantErr: "sampling_rate"},
		{name: "sampling above one", mutate: func(s *Settings) { s.Tracing.SamplingRate = 1.5 }, wantErr: "sampling_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSettingsKeepsDefaults(t *testing.T) {
	path := testutil.WriteFile(t, "partial.yaml", []byte("tracing:\n  enabled: true\n"))

	s, err := LoadSettings(path)
	require.NoError(t, err)

	want := Defaults()
	want.Tracing.Enabled = true
	assert.Equal(t, want, s)
}

func TestLoadSettingsSubstitutesEnvironment(t *testing.T) {
	t.Setenv("COMCONFIG_TEST_FORMAT", "json")
	path := testutil.WriteFile(t, "env.yaml", []byte("output:\n  format: ${COMCONFIG_TEST_FORMAT}\n"))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, s.Output.Format)
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	path := testutil.WriteFile(t, "invalid.yaml", []byte("output:\n  format: xml\n"))

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings")
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := Load(t.TempDir()+"/absent.yaml", Defaults())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := testutil.WriteFile(t, "broken.yaml", []byte("log: [unclosed\n"))
		err := Load(path, Defaults())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("COMCONFIG_A", "alpha")

	assert.Equal(t, "x: alpha", substituteEnvVars("x: ${COMCONFIG_A}"))
	assert.Equal(t, "x: ", substituteEnvVars("x: ${COMCONFIG_UNSET_VARIABLE}"))
	assert.Equal(t, "x: ${open", substituteEnvVars("x: ${open"))
}
