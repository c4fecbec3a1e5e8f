package config_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ajitpratap0/comconfig/pkg/config"
)

// ExampleDefaults shows the settings used when no file is given.
func ExampleDefaults() {
	s := config.Defaults()

	fmt.Printf("Log Level: %s\n", s.Log.Level)
	fmt.Printf("Output Format: %s\n", s.Output.Format)
	fmt.Printf("Tracing: %v\n", s.Tracing.Enabled)

	// Output:
	// Log Level: info
	// Output Format: yaml
	// Tracing: false
}

// ExampleSettings_Validate shows how an unknown value is reported.
func ExampleSettings_Validate() {
	s := config.Defaults()
	s.Output.Format = "xml"

	fmt.Println(s.Validate())

	// Output:
	// output.format "xml" is not one of yaml, json
}

// ExampleLoadSettings demonstrates loading a settings file with environment
// variable substitution.
func ExampleLoadSettings() {
	dir, err := os.MkdirTemp("", "comconfig-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	os.Setenv("EXAMPLE_LOG_LEVEL", "debug")
	defer os.Unsetenv("EXAMPLE_LOG_LEVEL")

	path := filepath.Join(dir, "comconfig.yaml")
	content := "log:\n  level: ${EXAMPLE_LOG_LEVEL}\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		log.Fatal(err)
	}

	s, err := config.LoadSettings(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Log Level: %s\n", s.Log.Level)
	fmt.Printf("Log Encoding: %s\n", s.Log.Encoding)
	fmt.Printf("Output Format: %s\n", s.Output.Format)

	// Output:
	// Log Level: debug
	// Log Encoding: console
	// Output Format: json
}
