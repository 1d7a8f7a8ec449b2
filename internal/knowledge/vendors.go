package knowledge

import "strings"

// Alias maps a lowercase query token to a canonical vendor display name.
type Alias struct {
	Token  string
	Vendor string
}

// aliases is the fixed vendor alias table. Order matters: vendor detection
// and the broadcast fallback both preserve this iteration order.
var aliases = []Alias{
	{Token: "cisco", Vendor: "Cisco"},
	{Token: "juniper", Vendor: "Juniper"},
	{Token: "palo alto", Vendor: "Palo Alto"},
	{Token: "fortinet", Vendor: "Fortinet"},
	{Token: "f5", Vendor: "F5"},
}

// Aliases returns the alias table in its canonical order.
func Aliases() []Alias {
	out := make([]Alias, len(aliases))
	copy(out, aliases)
	return out
}

// VendorNames returns the canonical vendor display names in alias-table order.
func VendorNames() []string {
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		out = append(out, a.Vendor)
	}
	return out
}

// isVendorName reports whether key names a vendor, ignoring case. The tree
// parser uses it to stop a walk from descending into a sibling vendor's
// subtree should such a key ever appear nested.
func isVendorName(key string) bool {
	for _, a := range aliases {
		if strings.EqualFold(key, a.Vendor) {
			return true
		}
	}
	return false
}
