package catalog

import (
	"github.com/receiptiq/receiptiq/constants"
)

// VendorEntry maps a lower-case keyword that may appear in OCR text to the
// canonical vendor name emitted in records.
type VendorEntry struct {
	Keyword string
	Name    string
}

// CategoryVendors groups vendor entries by expense category. Slices, not maps:
// scans must be deterministic, and ties keep the first entry found.
type CategoryVendors struct {
	Category constants.Category
	Entries  []VendorEntry
}

// Vendors is the static keyword -> canonical-name table, grouped by category.
// Loaded once, read-only for the process lifetime.
var Vendors = []CategoryVendors{
	{constants.Electricity, []VendorEntry{
		{"bescom", "BESCOM"},
		{"tneb", "TNEB"},
		{"msedcl", "MSEDCL"},
		{"adani", "Adani Electricity"},
		{"ntpc", "NTPC Limited"},
		{"tata power", "Tata Power"},
		{"nhpc", "NHPC Limited"},
		{"power grid", "Power Grid Corporation"},
		{"cesc", "CESC Limited"},
		{"cspdcl", "Chhattisgarh State Power Distribution Company Limited"},
		{"gujarat urja", "Gujarat Urja Vikas Nigam Limited"},
		{"hpsebl", "Himachal Pradesh State Electricity Board Limited"},
		{"jvvnl", "Jaipur Vidyut Vitran Nigam Limited"},
		{"kerala seb", "Kerala State Electricity Board"},
		{"mescom", "Mangalore Electricity Supply Company Limited"},
		{"hesco", "Hubli Electricity Supply Company Limited"},
		{"mahavitran", "Maharashtra State Electricity Distribution Company Limited"},
		{"pspcl", "Punjab State Power Corporation Limited"},
		{"tangedco", "Tamil Nadu Generation and Distribution Corporation Limited"},
		{"tsnpdcl", "Telangana Northern Power Distribution Company Limited"},
		{"tspdcl", "Telangana Southern Power Distribution Company Limited"},
		{"uppcl", "Uttar Pradesh Power Corporation Limited"},
		{"upcl", "Uttarakhand Power Corporation Limited"},
		{"wbseb", "West Bengal State Electricity Board"},
		{"reliance energy", "Reliance Energy Limited"},
		{"torrent power", "Torrent Power Limited"},
		{"adani power", "Adani Power Limited"},
		{"jsw energy", "JSW Energy Limited"},
		{"renew power", "ReNew Power"},
		{"coned", "Con Edison"},
		{"duke", "Duke Energy"},
		{"southern", "Southern Company"},
	}},
	{constants.InternetTelecom, []VendorEntry{
		{"jio", "Jio"},
		{"airtel", "Airtel"},
		{"vodafone", "Vodafone Idea (Vi)"},
		{"bsnl", "BSNL"},
		{"mtnl", "MTNL"},
		{"hathway", "Hathway"},
		{"excitel", "Excitel Broadband"},
		{"railwire", "RailWire (RailTel Corporation of India)"},
		{"tata play fiber", "Tata Play Fiber"},
		{"you broadband", "YOU Broadband"},
		{"spectra", "Spectra"},
		{"tikona", "Tikona Infinet"},
		{"den networks", "DEN Networks"},
		{"gtpl", "GTPL Hathway"},
		{"asianet broadband", "Asianet Broadband"},
		{"netplus", "Netplus Broadband"},
		{"comcast", "Comcast"},
		{"verizon", "Verizon"},
		{"tmobile", "T-Mobile"},
	}},
	{constants.Groceries, []VendorEntry{
		{"reliance fresh", "Reliance Fresh"},
		{"dmart", "DMart"},
		{"more", "More Supermarket"},
		{"spencer", "Spencer's Retail"},
		{"big bazaar", "Big Bazaar"},
		{"lulu", "Lulu Hypermarket"},
		{"hypercity", "HyperCity"},
		{"heritage fresh", "Heritage Fresh"},
		{"star bazaar", "Star Bazaar"},
		{"easyday", "Easyday"},
		{"natures basket", "Nature's Basket"},
		{"nilgiris", "Nilgiris"},
		{"foodworld", "Foodworld"},
		{"bigbasket", "BigBasket"},
		{"jiomart", "JioMart"},
		{"amazon fresh", "Amazon Fresh"},
		{"grofers", "Grofers (now Blinkit)"},
		{"7eleven", "7-Eleven"},
		{"ratnadeep", "Ratnadeep Supermarket"},
		{"vishal mega mart", "Vishal Mega Mart"},
		{"foodhall", "Foodhall"},
		{"walmart", "Walmart"},
		{"kroger", "Kroger"},
		{"costco", "Costco"},
		{"target", "Target"},
	}},
	{constants.Restaurant, []VendorEntry{
		{"mcdonalds", "McDonald's"},
		{"kfc", "KFC"},
		{"pizza hut", "Pizza Hut"},
		{"dominos", "Domino's Pizza"},
		{"subway", "Subway"},
		{"starbucks", "Starbucks"},
		{"cafe coffee day", "Cafe Coffee Day"},
		{"barista", "Barista"},
		{"burger king", "Burger King"},
		{"taco bell", "Taco Bell"},
		{"restaurant", "Restaurant"},
		{"cafe", "Cafe"},
		{"hotel", "Hotel Restaurant"},
		{"dhaba", "Dhaba"},
		{"food court", "Food Court"},
	}},
	{constants.Transportation, []VendorEntry{
		{"uber", "Uber"},
		{"ola", "Ola"},
		{"rapido", "Rapido"},
		{"auto", "Auto Rickshaw"},
		{"taxi", "Taxi"},
		{"metro", "Metro"},
		{"train", "Train"},
		{"petrol pump", "Petrol Pump"},
		{"fuel", "Fuel Station"},
		{"iocl", "Indian Oil"},
		{"bpcl", "BPCL"},
		{"shell", "Shell"},
		{"essar", "Essar Oil"},
		{"reliance petrol", "Reliance Petrol"},
	}},
	{constants.Healthcare, []VendorEntry{
		{"hospital", "Hospital"},
		{"clinic", "Clinic"},
		{"pharmacy", "Pharmacy"},
		{"medical", "Medical Center"},
		{"apollo", "Apollo Hospital"},
		{"fortis", "Fortis Hospital"},
		{"aiims", "AIIMS"},
		{"medplus", "MedPlus"},
		{"apollo pharmacy", "Apollo Pharmacy"},
		{"guardian", "Guardian Pharmacy"},
		{"wellness", "Wellness Center"},
		{"diagnostic", "Diagnostic Center"},
	}},
	{constants.Shopping, []VendorEntry{
		{"mall", "Shopping Mall"},
		{"shop", "Shop"},
		{"store", "Store"},
		{"retail", "Retail Store"},
		{"fashion", "Fashion Store"},
		{"clothing", "Clothing Store"},
		{"electronics", "Electronics Store"},
		{"mobile", "Mobile Store"},
		{"book", "Book Store"},
		{"gift", "Gift Shop"},
		{"jewellery", "Jewellery Store"},
		{"footwear", "Footwear Store"},
	}},
	{constants.Banking, []VendorEntry{
		{"sbi", "State Bank of India"},
		{"hdfc", "HDFC Bank"},
		{"icici", "ICICI Bank"},
		{"axis", "Axis Bank"},
		{"pnb", "Punjab National Bank"},
		{"bank", "Bank"},
		{"atm", "ATM"},
		{"branch", "Bank Branch"},
		{"cooperative", "Cooperative Bank"},
	}},
	{constants.Education, []VendorEntry{
		{"school", "School"},
		{"college", "College"},
		{"university", "University"},
		{"institute", "Institute"},
		{"academy", "Academy"},
		{"coaching", "Coaching Center"},
		{"tuition", "Tuition Center"},
		{"library", "Library"},
		{"bookstore", "Book Store"},
	}},
}

// VendorsFor returns the entries for one category, or nil if the category has
// no catalog.
func VendorsFor(category constants.Category) []CategoryVendors {
	for _, cv := range Vendors {
		if cv.Category == category {
			return []CategoryVendors{cv}
		}
	}
	return nil
}

// BusinessSuffixes are the legal-entity tokens the suffix fallback looks for
// in header lines when no catalog vendor matched.
var BusinessSuffixes = []string{
	"ltd", "limited", "pvt", "private", "corp", "corporation",
	"inc", "incorporated", "llc", "llp", "co", "company",
}
