package textmatch

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "bescom", "bescom", 100},
		{"case insensitive", "DMart", "dmart", 100},
		{"one substitution", "data", "date", 75},
		{"empty left", "", "bescom", 0},
		{"empty right", "bescom", "", 0},
		{"both empty", "", "", 0},
		{"whitespace only", "   ", "bescom", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"exact substring", "mart", "dmart groceries", 100},
		{"substring either order", "dmart groceries", "mart", 100},
		{"identical", "total", "total", 100},
		{"empty", "", "anything", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartialRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("PartialRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	// Near-matches score high but below the exact-substring ceiling.
	if got := PartialRatio("bill date", "bil date: 20-06-2025"); got < 70 {
		t.Errorf("PartialRatio(ocr-mangled label) = %d, want >= 70", got)
	}
	if got := PartialRatio("data", "invoice date : 01-07-2025"); got >= 85 {
		t.Errorf("PartialRatio(different word) = %d, want < 85", got)
	}
}

func TestTokenSortRatio(t *testing.T) {
	if got := TokenSortRatio("tata power", "power tata"); got != 100 {
		t.Errorf("TokenSortRatio(reordered tokens) = %d, want 100", got)
	}
	if got := TokenSortRatio("", "power tata"); got != 0 {
		t.Errorf("TokenSortRatio(empty) = %d, want 0", got)
	}
}

func TestBestScore(t *testing.T) {
	// PartialRatio dominates when the keyword is embedded in a longer text.
	if got := BestScore("airtel", "welcome to airtel broadband"); got != 100 {
		t.Errorf("BestScore(embedded keyword) = %d, want 100", got)
	}
	if got := BestScore("", ""); got != 0 {
		t.Errorf("BestScore(empty) = %d, want 0", got)
	}
}

func TestDeterminism(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := BestScore("grand total", "grand total rs. 1,250.50"); got != 100 {
			t.Fatalf("BestScore not deterministic: got %d on run %d", got, i)
		}
	}
}
