// Ulna builds small C projects from a declarative TOML configuration.
//
// Usage:
//
//	# Build with the default development profile
//	ulna build
//
//	# Optimized build with detailed output
//	ulna build --mode release --verbose
//
//	# Emit configuration diagnostics as JSON for tooling
//	ulna build --diagnostics json
package main

func main() {
	Execute()
}
