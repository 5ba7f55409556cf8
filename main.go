// =============================================================================
// CBI Payment Export - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CBI Payment Export CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   cbiexport generate      - Export payment input files to CBI XML
//   cbiexport validate      - Report validation problems without exporting
//   cbiexport version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/               : CLI command definitions (Cobra)
//   - internal/sepa      : Payment domain model, grouping, schema renderer
//   - internal/xmltree   : XML element tree and serializer
//   - internal/loader    : CSV/XLSX input loading
//   - internal/export    : Per-file export pipeline
//   - internal/config    : YAML configuration
//   - pkg/fileutil       : Shared file handling helpers
//
// =============================================================================

package main

import (
	"github.com/treasuryops/cbi-export/cmd"
)

func main() {
	cmd.Execute()
}
