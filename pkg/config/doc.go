// Package config holds the settings of the comconfig command line tool.
//
// Settings are read from an optional YAML file with ${VAR_NAME}
// environment substitution:
//
//	log:
//	  level: ${COMCONFIG_LOG_LEVEL}
//	  encoding: json
//	output:
//	  format: json
//	tracing:
//	  enabled: true
//
// Flags and COMCONFIG_* environment variables are bound on top by the
// command through viper. None of these settings change how a deployment
// descriptor is interpreted; they only control logging, rendering and span
// export of the tool.
package config
