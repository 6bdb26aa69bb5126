package entity

import "strings"

// NormalizeEmail lower-cases and trims an email address so lookups and the
// uniqueness check are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSlug lower-cases and trims a slug before lookup or storage.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// NormalizeCategory canonicalizes a category string: trimmed, lower-cased,
// hyphens replaced with spaces. "Foreign-Affairs" and "foreign affairs" both
// map to the same stored value. The result is not guaranteed to be a member
// of the allowed set; callers check with ValidCategory.
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	return strings.ReplaceAll(c, "-", " ")
}
