// Package ledger abstracts the external token ledger consumed by all asset
// modules: token issuance, balance transfers, native payments and the shared
// operation clock. The ledger owns atomicity; callers never re-validate
// balances.
package ledger

type TokenConfig struct {
	Total         uint64 `json:"total"`
	Decimals      uint32 `json:"decimals"`
	DefaultFrozen bool   `json:"defaultFrozen"`

	Manager  string `json:"manager"`
	Reserve  string `json:"reserve"`
	Freeze   string `json:"freeze"`
	Clawback string `json:"clawback"`

	UnitName string `json:"unitName"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Note     string `json:"note"`
}

type Authorities struct {
	Manager  string `json:"manager"`
	Reserve  string `json:"reserve"`
	Freeze   string `json:"freeze"`
	Clawback string `json:"clawback"`
}

type Ledger interface {
	// CreateToken allocates a new token id and credits the total supply to
	// the reserve identity.
	CreateToken(cfg TokenConfig) (tokenId string, err error)

	TransferToken(tokenId string, amount uint64, from, to string) error

	// SendPayment moves native currency between identities.
	SendPayment(amount uint64, from, to string) error

	// ReconfigureToken updates authorities without changing supply or URL.
	ReconfigureToken(tokenId string, auth Authorities) error

	// UpdateTokenURL repoints a token's document URL.
	UpdateTokenURL(tokenId, url string) error

	Balance(tokenId, owner string) (uint64, error)

	// Now is the ledger time shared by all modules within one operation.
	Now() int64
}
