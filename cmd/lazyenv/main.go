// Lazyenv declares, validates, and resolves environment-backed
// configuration from a YAML schema file.
//
// Usage:
//
//	# Validate the environment against a schema (eager validation)
//	lazyenv validate --schema lazyenv.yaml
//
//	# Resolve every field and print the values
//	lazyenv resolve --schema lazyenv.yaml
//	lazyenv resolve --schema lazyenv.yaml --format json
//
//	# Watch the .env overlay and revalidate on change
//	lazyenv watch --schema lazyenv.yaml
//
//	# Show version information
//	lazyenv version
package main

func main() {
	Execute()
}
