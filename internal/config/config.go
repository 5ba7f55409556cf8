// =============================================================================
// CBI Payment Export - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers two concerns:
//
//   1. Pipeline settings: input/output/archive directories and logging.
//   2. The creditor identity: the collecting party every generated payment
//      request is initiated by. Treasury deployments run one creditor per
//      configuration file.
//
// Values left out of the file fall back to documented defaults. Creditor
// identity fields are not validated here: the domain model collects its own
// violations so a misconfigured identity is reported together with any data
// problems at render time.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/treasuryops/cbi-export/internal/sepa"
)

// Config holds the application configuration.
type Config struct {
	// InputDir is the directory scanned for payment input files (CSV or
	// XLSX). Default: "./input".
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory generated XML files are written to.
	// Default: "./output".
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is where processed input files are moved after a
	// successful export. Default: "./input_archive".
	InputArchiveDir string `yaml:"input_archive_dir"`

	// LogLevel controls logging verbosity: "debug", "info", "warn",
	// "error". Default: "info".
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log output format: "text" or "json".
	// Default: "text".
	LogFormat string `yaml:"log_format"`

	// Creditor is the collecting party identity used for every message.
	Creditor CreditorConfig `yaml:"creditor"`
}

// CreditorConfig is the creditor identity as configured. It maps onto
// sepa.CreditorAccount via Account.
type CreditorConfig struct {
	// Name is the creditor name placed in the initiating party and
	// debtor blocks.
	Name string `yaml:"name"`

	// IBAN is the creditor account.
	IBAN string `yaml:"iban"`

	// BIC is optional.
	BIC string `yaml:"bic"`

	// NationalBankCode is the clearing system member id (ABI).
	NationalBankCode string `yaml:"national_bank_code"`

	// CreditorIdentifier and CreditorIssuer form the optional creditor
	// scheme identity. The scheme block is emitted only when an
	// identifier is configured.
	CreditorIdentifier string `yaml:"creditor_identifier"`
	CreditorIssuer     string `yaml:"creditor_issuer"`
}

// Default returns the configuration defaults applied before the file is
// read.
func Default() *Config {
	return &Config{
		InputDir:        "./input",
		OutputDir:       "./output",
		InputArchiveDir: "./input_archive",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads and parses the configuration file at path, applying defaults
// for any setting the file leaves out.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Account converts the configured creditor identity into the domain
// account. The scheme identity sub-record is attached only when a creditor
// identifier is configured.
func (c CreditorConfig) Account() sepa.CreditorAccount {
	account := sepa.CreditorAccount{
		Account: sepa.Account{
			Name: c.Name,
			IBAN: c.IBAN,
			BIC:  c.BIC,
		},
		NationalBankCode: c.NationalBankCode,
	}

	if c.CreditorIdentifier != "" {
		account.Scheme = &sepa.SchemeIdentity{
			CreditorIdentifier: c.CreditorIdentifier,
			CreditorIssuer:     c.CreditorIssuer,
		}
	}

	return account
}
