// Package comconfig loads the deployment descriptor of the LoLa
// shared-memory IPC middleware.
//
// A descriptor is a FlatBuffer file generated at build time. It declares the
// service types a process knows about, the service instances it offers or
// consumes, process-wide settings and tracing settings. At startup the
// process calls loader.CreateConfiguration once and receives an immutable
// configuration.Configuration:
//
//	import "github.com/ajitpratap0/comconfig/pkg/loader"
//
//	cfg := loader.CreateConfiguration("etc/mw_com_config.bin")
//	deployment, ok := cfg.ServiceInstance(specifier)
//
// # Pipeline
//
// The descriptor passes through these stages, each in its own package:
//
//	pkg/mmap          - read-only mapping of the file, released after the load
//	pkg/wire          - schema, generated accessors and the structural verifier
//	pkg/loader        - section mappers and the fail-fast policy
//	pkg/configuration - the immutable model and its assembler
//
// Nothing reads the buffer before the verifier accepted it, and the
// resulting model owns every string and slice it holds.
//
// # Failure
//
// A descriptor that cannot be read, fails verification, lacks a required
// field or violates a domain rule is a deployment defect. The loader logs
// one fatal diagnostic through pkg/logger, tagged with context "lola", and
// terminates the process. It never returns a partial configuration.
//
// # Supporting Packages
//
//	pkg/cfgerrors     - error categories carried to the fatal diagnostic
//	pkg/logger        - global zap logger
//	pkg/metrics       - Prometheus load counters and histograms
//	pkg/observability - OpenTelemetry span around each load
//	pkg/config        - settings of the comconfig command
//	cmd/comconfig     - validate and inspect descriptors from the shell
//
// # Development
//
// Run tests:
//
//	go test ./...
//	go run ./cmd/comconfig validate path/to/mw_com_config.bin
package comconfig
