// Marlin is a consistency checker for MARBL settings and diagnostics
// dictionaries.
//
// It parses YAML (or JSON) dictionary files into an ordered value tree
// and checks their structure: category ordering against _order, the
// required per-variable keys, and the frequency/operator pairing rules
// for diagnostics.
//
// Usage:
//
//	# Check a settings dictionary
//	marlin validate settings settings.yaml
//
//	# Check a diagnostics dictionary, machine-readable output
//	marlin validate diags diagnostics.yaml --format json
//
//	# Re-validate on every save, with metrics
//	marlin watch --settings settings.yaml --diags diagnostics.yaml
//
//	# Show past validation runs
//	marlin history list --schema settings
//
//	# Show version information
//	marlin version
package main

func main() {
	Execute()
}
