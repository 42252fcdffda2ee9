package inference

import "testing"

func TestLooksLikeMoney(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"$19.99", true},
		{"€45", true},
		{"£12.50", true},
		{"120 USD", true},
		{"Price: 42", true},
		{"Total cost is unknown", true},
		{"19.99 usd", true},
		{"25.00 dollars", true},
		{"Widget description", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeMoney(tt.text); got != tt.want {
			t.Errorf("LooksLikeMoney(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestContainsEmail(t *testing.T) {
	if !ContainsEmail("reach us at sales@example.com today") {
		t.Error("ContainsEmail should detect an embedded address")
	}
	if ContainsEmail("no address here") {
		t.Error("ContainsEmail should not fire on plain text")
	}
	if ContainsEmail("not@anemail") {
		t.Error("ContainsEmail requires a dotted domain")
	}
}

func TestContainsPhone(t *testing.T) {
	if !ContainsPhone("call +1 (555) 123-4567 now") {
		t.Error("ContainsPhone should detect a formatted number")
	}
	if !ContainsPhone("020 7946 0958") {
		t.Error("ContainsPhone should detect a spaced number")
	}
	if ContainsPhone("only 42 items left") {
		t.Error("ContainsPhone should not fire on short numbers")
	}
}

func TestIsProductHeading(t *testing.T) {
	for _, tag := range []string{"h1", "h2", "h3", "h4"} {
		if !IsProductHeading(tag) {
			t.Errorf("IsProductHeading(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"h5", "h6", "div", "span", "p"} {
		if IsProductHeading(tag) {
			t.Errorf("IsProductHeading(%q) = true, want false", tag)
		}
	}
}

func TestPromptGates(t *testing.T) {
	if !PromptWantsPrice("Get me the PRICE of each laptop") {
		t.Error("PromptWantsPrice should be case-insensitive")
	}
	if PromptWantsPrice("list the article headlines") {
		t.Error("PromptWantsPrice should not fire without a price hint")
	}

	if !PromptWantsTitle("extract product names") {
		t.Error("PromptWantsTitle should fire on 'product'")
	}

	if !PromptWantsContact("find contact details") {
		t.Error("PromptWantsContact should fire on 'contact'")
	}
	if !PromptWantsContact("grab every email on the page") {
		t.Error("PromptWantsContact should fire on 'email'")
	}
	if PromptWantsContact("get me the titles") {
		t.Error("PromptWantsContact should not fire on a title prompt")
	}
}
