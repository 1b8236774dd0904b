// Package business holds the single business profile printed on receipts.
package business

import "strings"

// Profile is the header/footer text shown on every receipt. All fields are
// optional; empty fields are omitted from the rendered document.
type Profile struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
	Website string
	Footer  string
}

// Default is returned when no profile has been saved yet.
func Default() Profile {
	return Profile{
		Name:   "My Business",
		Footer: "Thank you for your purchase!",
	}
}

// FooterLines splits the footer message into printable lines.
func (p Profile) FooterLines() []string {
	if strings.TrimSpace(p.Footer) == "" {
		return nil
	}

	return strings.Split(p.Footer, "\n")
}
