package onepux

import "github.com/dmitrijs2005/puxvault/internal/model"

// Category UUIDs that select category-specific classification rules.
const (
	categoryServer        = "110"
	categoryAPICredential = "112"
)

// Category describes how items of one interchange category are grouped.
type Category struct {
	DisplayName string
	Icon        model.Icon
}

// categories maps the fixed 1PUX category identifiers to display groups.
// Unknown identifiers fall back to the enclosing vault group.
var categories = map[string]Category{
	"001": {DisplayName: "Logins", Icon: model.IconKey},
	"002": {DisplayName: "Credit Cards", Icon: model.IconCard},
	"003": {DisplayName: "Secure Notes", Icon: model.IconNote},
	"004": {DisplayName: "Identities", Icon: model.IconIdentity},
	"005": {DisplayName: "Passwords", Icon: model.IconKey},
	"006": {DisplayName: "Documents", Icon: model.IconDocument},
	"100": {DisplayName: "Software Licenses", Icon: model.IconCertificate},
	"101": {DisplayName: "Bank Accounts", Icon: model.IconBank},
	"102": {DisplayName: "Databases", Icon: model.IconDatabase},
	"103": {DisplayName: "Driver Licenses", Icon: model.IconIdentity},
	"104": {DisplayName: "Outdoor Licenses", Icon: model.IconCertificate},
	"105": {DisplayName: "Memberships", Icon: model.IconMembership},
	"106": {DisplayName: "Passports", Icon: model.IconPassport},
	"107": {DisplayName: "Reward Programs", Icon: model.IconStar},
	"108": {DisplayName: "Social Security Numbers", Icon: model.IconIdentity},
	"109": {DisplayName: "Wireless Routers", Icon: model.IconWireless},
	"110": {DisplayName: "Servers", Icon: model.IconServer},
	"111": {DisplayName: "Email Accounts", Icon: model.IconTerminal},
	"112": {DisplayName: "API Credentials", Icon: model.IconTerminal},
	"113": {DisplayName: "Medical Records", Icon: model.IconHealth},
	"114": {DisplayName: "SSH Keys", Icon: model.IconKeyPair},
	"115": {DisplayName: "Crypto Wallets", Icon: model.IconWallet},
}

// lookupCategory resolves a category identifier, reporting whether it is a
// recognized value.
func lookupCategory(id string) (Category, bool) {
	c, ok := categories[id]
	return c, ok
}
