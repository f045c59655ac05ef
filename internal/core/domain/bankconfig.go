package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"daes-settlement-engine/pkg/apperror"
)

// swiftPattern validates a SWIFT/BIC code: 6 letters, 2 alphanumerics and an
// optional 3-character branch suffix.
var swiftPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// BankDestinationConfig is reference data describing where funds for a given
// currency should be wired. Seeded at service start and looked up by bank
// code; the settlement flow never mutates it.
type BankDestinationConfig struct {
	BankCode        string            `json:"bank_code"`
	BankName        string            `json:"bank_name"`
	BeneficiaryName string            `json:"beneficiary_name"`
	SwiftCode       string            `json:"swift_code"`
	IBANsByCurrency map[string]string `json:"ibans_by_currency"`
	Active          bool              `json:"active"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// NewBankDestinationConfig validates and constructs a bank destination entry.
func NewBankDestinationConfig(bankCode, bankName, beneficiaryName, swiftCode string, ibans map[string]string, active bool) (*BankDestinationConfig, error) {
	code := strings.ToUpper(strings.TrimSpace(bankCode))
	if code == "" {
		return nil, apperror.Validation("bank code is required")
	}
	if strings.TrimSpace(bankName) == "" {
		return nil, apperror.Validation("bank name is required")
	}
	if strings.TrimSpace(beneficiaryName) == "" {
		return nil, apperror.Validation("beneficiary name is required")
	}
	swift := strings.ToUpper(strings.TrimSpace(swiftCode))
	if !swiftPattern.MatchString(swift) {
		return nil, apperror.Validation("SWIFT code does not match BIC format")
	}
	if len(ibans) == 0 {
		return nil, apperror.Validation("at least one currency IBAN is required")
	}

	normalized := make(map[string]string, len(ibans))
	for currency, iban := range ibans {
		validated, err := NewIBAN(iban)
		if err != nil {
			return nil, err
		}
		normalized[strings.ToUpper(currency)] = validated.String()
	}

	now := time.Now().UTC()
	return &BankDestinationConfig{
		BankCode:        code,
		BankName:        strings.TrimSpace(bankName),
		BeneficiaryName: strings.TrimSpace(beneficiaryName),
		SwiftCode:       swift,
		IBANsByCurrency: normalized,
		Active:          active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// IsActive reports whether the destination accepts new instructions.
func (b *BankDestinationConfig) IsActive() bool {
	return b.Active
}

// SupportsCurrency reports whether an IBAN is configured for the currency.
func (b *BankDestinationConfig) SupportsCurrency(currency Currency) bool {
	_, ok := b.IBANsByCurrency[currency.Code()]
	return ok
}

// IBANFor returns the destination IBAN for the currency.
func (b *BankDestinationConfig) IBANFor(currency Currency) (string, bool) {
	iban, ok := b.IBANsByCurrency[currency.Code()]
	return iban, ok
}

// SupportedCurrencies returns the sorted currency codes this bank accepts.
func (b *BankDestinationConfig) SupportedCurrencies() []string {
	codes := make([]string, 0, len(b.IBANsByCurrency))
	for code := range b.IBANsByCurrency {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
