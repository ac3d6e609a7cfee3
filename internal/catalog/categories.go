package catalog

import (
	"github.com/receiptiq/receiptiq/constants"
)

// CategoryKeywords holds the content keywords that fix a document's category
// before any vendor lookup. Order matters: the first keyword that clears the
// threshold wins, so catalog order is the documented tie-break.
type CategoryKeywords struct {
	Category constants.Category
	Keywords []string
}

var Categories = []CategoryKeywords{
	{constants.Electricity, []string{"electricity", "electric", "power", "energy", "utility", "bescom", "tneb", "msedcl"}},
	{constants.InternetTelecom, []string{"internet", "broadband", "telecom", "mobile", "phone", "wifi", "data"}},
	{constants.Groceries, []string{"grocery", "supermarket", "fresh", "mart", "food"}},
	{constants.Restaurant, []string{"restaurant", "cafe", "hotel", "dining", "food court"}},
	{constants.Transportation, []string{"taxi", "uber", "ola", "fuel", "petrol", "gas", "transport"}},
	{constants.Healthcare, []string{"hospital", "clinic", "medical", "pharmacy", "health"}},
	{constants.Shopping, []string{"mall", "shop", "retail", "store", "fashion"}},
	{constants.Banking, []string{"bank", "atm", "financial", "credit", "debit"}},
}

// NameSniffKeywords categorize a suffix-extracted vendor name when no category
// was detected from the document body.
var NameSniffKeywords = []struct {
	Category constants.Category
	Words    []string
}{
	{constants.Transportation, []string{"petroleum", "oil", "fuel", "gas"}},
	{constants.Electricity, []string{"electric", "power", "energy"}},
	{constants.Banking, []string{"bank", "financial"}},
	{constants.Healthcare, []string{"hospital", "medical", "health"}},
}
