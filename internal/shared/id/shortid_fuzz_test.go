package id

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParsePrefixedID tests the ParsePrefixedID function with random inputs
func FuzzParsePrefixedID(f *testing.F) {
	// Seed corpus with valid and invalid cases
	seeds := []string{
		"att_xK9mP2vL3nQ",
		"att_abc123",
		"iss_test",
		"usr_user123",
		"",
		"nounderscore",
		"_leadingunderscore",
		"trailing_",
		"multiple_under_scores_here",
		"__double__underscore__",
		"a_b",
		"*_special",
		"中文_测试",
		strings.Repeat("a", 1000) + "_" + strings.Repeat("b", 1000),
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(input) {
			return
		}

		prefix, shortID, err := ParsePrefixedID(input)

		// If no underscore, should return error
		if !strings.Contains(input, "_") {
			if err == nil {
				t.Errorf("ParsePrefixedID(%q) should return error for input without underscore", input)
			}
			return
		}

		// If has underscore, check the parsing is correct
		if err == nil {
			// Verify the parsed values can reconstruct the original (up to first underscore)
			if !strings.HasPrefix(input, prefix+"_") {
				t.Errorf("ParsePrefixedID(%q) returned prefix=%q which doesn't match input", input, prefix)
			}
			// Verify shortID is the rest after first underscore
			parts := strings.SplitN(input, "_", 2)
			if len(parts) == 2 && shortID != parts[1] {
				t.Errorf("ParsePrefixedID(%q) returned shortID=%q, expected %q", input, shortID, parts[1])
			}
		}
	})
}

// FuzzValidatePrefix tests the ValidatePrefix function
func FuzzValidatePrefix(f *testing.F) {
	// Seed corpus
	seeds := []struct {
		prefixedID     string
		expectedPrefix string
	}{
		{"att_test", "att"},
		{"att_test", "iss"},
		{"iss_abc", "iss"},
		{"iss_abc", "usr"},
		{"", "att"},
		{"nounderscore", "att"},
		{"att_", "att"},
		{"_test", ""},
	}

	for _, seed := range seeds {
		f.Add(seed.prefixedID, seed.expectedPrefix)
	}

	f.Fuzz(func(t *testing.T, prefixedID, expectedPrefix string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(prefixedID) || !utf8.ValidString(expectedPrefix) {
			return
		}

		err := ValidatePrefix(prefixedID, expectedPrefix)

		// If the ID doesn't have underscore, should error
		if !strings.Contains(prefixedID, "_") {
			if err == nil {
				t.Errorf("ValidatePrefix(%q, %q) should return error for ID without underscore", prefixedID, expectedPrefix)
			}
			return
		}

		// If has correct prefix, should not error
		if strings.HasPrefix(prefixedID, expectedPrefix+"_") && err != nil {
			t.Errorf("ValidatePrefix(%q, %q) returned unexpected error: %v", prefixedID, expectedPrefix, err)
		}

		// If has wrong prefix, should error
		if !strings.HasPrefix(prefixedID, expectedPrefix+"_") && err == nil {
			actualPrefix := strings.SplitN(prefixedID, "_", 2)[0]
			if actualPrefix != expectedPrefix {
				t.Errorf("ValidatePrefix(%q, %q) should return error for wrong prefix", prefixedID, expectedPrefix)
			}
		}
	})
}

// FuzzFormatWithPrefix tests the FormatWithPrefix function
func FuzzFormatWithPrefix(f *testing.F) {
	seeds := []struct {
		prefix  string
		shortID string
	}{
		{"att", "abc123"},
		{"", "abc123"},
		{"att", ""},
		{"", ""},
		{"iss", "test_with_underscore"},
		{"*special*", "id"},
		{"中文", "测试"},
	}

	for _, seed := range seeds {
		f.Add(seed.prefix, seed.shortID)
	}

	f.Fuzz(func(t *testing.T, prefix, shortID string) {
		// Skip invalid UTF-8
		if !utf8.ValidString(prefix) || !utf8.ValidString(shortID) {
			return
		}

		result := FormatWithPrefix(prefix, shortID)

		// Empty shortID should return empty string
		if shortID == "" {
			if result != "" {
				t.Errorf("FormatWithPrefix(%q, %q) = %q, expected empty string", prefix, shortID, result)
			}
			return
		}

		// Non-empty shortID should return prefix_shortID format
		expected := prefix + "_" + shortID
		if result != expected {
			t.Errorf("FormatWithPrefix(%q, %q) = %q, expected %q", prefix, shortID, result, expected)
		}
	})
}

// FuzzGenerate tests the Generate function
func FuzzGenerate(f *testing.F) {
	// Seed with various lengths
	lengths := []int{0, 1, 2, 5, 10, 12, 20, 50, 100}
	for _, l := range lengths {
		f.Add(l)
	}

	f.Fuzz(func(t *testing.T, length int) {
		// Generate should handle any length
		result, err := Generate(length)

		// Should not return error
		if err != nil {
			t.Errorf("Generate(%d) returned error: %v", length, err)
			return
		}

		// If length <= 0, should use default length
		expectedLen := length
		if expectedLen <= 0 {
			expectedLen = DefaultLength
		}

		if len(result) != expectedLen {
			t.Errorf("Generate(%d) returned string of length %d, expected %d", length, len(result), expectedLen)
		}

		// All characters should be from the alphabet
		for _, c := range result {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate(%d) returned invalid character %q", length, c)
			}
		}
	})
}

// TestGenerateUniqueness tests that generated IDs are unique
func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	iterations := 10000

	for i := 0; i < iterations; i++ {
		id, err := Generate(DefaultLength)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if seen[id] {
			t.Errorf("Generate produced duplicate ID: %s", id)
		}
		seen[id] = true
	}
}

// TestNewAttachmentIDFormat tests that attachment IDs round-trip through
// the prefix helpers.
func TestNewAttachmentIDFormat(t *testing.T) {
	id, err := NewAttachmentID()
	if err != nil {
		t.Fatalf("NewAttachmentID failed: %v", err)
	}

	if !strings.HasPrefix(id, PrefixAttachment+"_") {
		t.Errorf("generated ID %q doesn't have expected prefix %q_", id, PrefixAttachment)
	}

	shortID, err := ParseAttachmentID(id)
	if err != nil {
		t.Errorf("failed to parse generated ID %q: %v", id, err)
	}
	if len(shortID) != DefaultLength {
		t.Errorf("short ID length %d doesn't match default %d", len(shortID), DefaultLength)
	}
}
