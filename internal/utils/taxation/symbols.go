package taxation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
)

// stockPurchasePattern matches legacy descriptions of the form "Stock Purchase: <Name> (<SYMBOL>)".
var stockPurchasePattern = regexp.MustCompile(`Stock Purchase: (.+) \((.+)\)`)

// ExtractSymbolFromDescription recovers an instrument symbol from a free-text stock purchase description.
//
// This is a best-effort compatibility path for rows written before transactions carried a dedicated
// symbol column. It returns false when the description does not have the expected shape.
func ExtractSymbolFromDescription(description string) (string, bool) {
	match := stockPurchasePattern.FindStringSubmatch(description)
	if match == nil {
		return "", false
	}
	symbol := strings.TrimSpace(match[2])
	if symbol == "" {
		return "", false
	}
	return symbol, true
}

// SymbolFor returns the instrument symbol of a stock purchase transaction.
// The dedicated Symbol field wins; the description is only parsed when it is empty.
func SymbolFor(txn domain.Transaction) (string, bool) {
	if !txn.IsStockPurchase() {
		return "", false
	}
	if symbol := strings.TrimSpace(txn.Symbol); symbol != "" {
		return symbol, true
	}
	return ExtractSymbolFromDescription(txn.Description)
}

// CollectSymbols returns the distinct, sorted symbols of all stock purchases in transactions,
// plus a diagnostic for every stock purchase whose symbol could not be recovered.
func CollectSymbols(transactions []domain.Transaction) ([]string, []domain.Diagnostic) {
	seen := make(map[string]struct{})
	var diagnostics []domain.Diagnostic

	for _, txn := range transactions {
		if !txn.IsStockPurchase() {
			continue
		}
		symbol, ok := SymbolFor(txn)
		if !ok {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:     domain.MalformedDescription,
				RecordID: txn.TransactionID,
				Reason:   fmt.Sprintf("invalid stock purchase description format: %q", txn.Description),
			})
			continue
		}
		seen[symbol] = struct{}{}
	}

	symbols := make([]string, 0, len(seen))
	for symbol := range seen {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols, diagnostics
}
