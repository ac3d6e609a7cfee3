package catalog

// AmountKeywords are the labels that signal a monetary total nearby, scanned
// with fuzzy matching against each line.
var AmountKeywords = []string{
	"total", "grand total", "amount", "to pay", "amount to be paid", "balance",
	"net amount", "final amount", "payable", "due", "subtotal", "bill amount",
	"invoice amount", "payment due", "amount due", "total due", "total payable",
	"total amount", "sum total", "net total", "gross amount", "charge", "fee",
	"price", "cost", "payment", "outstanding", "balance due", "to be paid",
}

// KeywordPriorities ranks amount keywords by specificity. More specific labels
// beat generic ones when several match in the same document.
var KeywordPriorities = map[string]int{
	"amount to be paid": 100,
	"total amount":      95,
	"grand total":       95,
	"total":             90,
	"amount due":        85,
	"total due":         85,
	"net amount":        80,
	"balance":           75,
	"due":               70,
	"amount":            65,
	"payable":           60,
	"payment":           55,
	"cost":              50,
	"price":             50,
	"fee":               45,
	"charge":            45,
}

// DefaultKeywordPriority applies to amount keywords missing from the table.
const DefaultKeywordPriority = 50

// CurrencySymbol maps a symbol or code fragment found in text to its ISO 4217
// code. Ordered: detection walks the slice and takes the first hit, and the
// yen sign maps to INR because OCR routinely reads ₹ as ¥.
type CurrencySymbol struct {
	Symbol string
	Code   string
}

var CurrencySymbols = []CurrencySymbol{
	{"₹", "INR"},
	{"¥", "INR"},
	{"rs", "INR"},
	{"inr", "INR"},
	{"$", "USD"},
	{"€", "EUR"},
	{"£", "GBP"},
}

// CodeForSymbol resolves one symbol to its ISO code, defaulting to INR for
// unknown symbols the adjacency regex might still capture.
func CodeForSymbol(symbol string) string {
	for _, cs := range CurrencySymbols {
		if cs.Symbol == symbol {
			return cs.Code
		}
	}
	return "INR"
}

// DateKeywords are the labels that anchor the keyword tier of date resolution.
var DateKeywords = []string{
	"date:", "date", "dated", "bill date", "invoice date", "order date", "transaction date",
}

// MonthNumbers resolves three-letter month-name prefixes for the manual
// day/month-name/year parse path.
var MonthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}
