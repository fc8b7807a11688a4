package schema

// Creator is an identity allowed to create new asset records.
type Creator struct {
	Identity    string `gorm:"index:idx1"`
	Available   bool   `gorm:"index:idx2"` // true means effective
	Description string
}

type IpRateWhitelist struct {
	OriginOrIP  string // e.g "188.0.2.2"
	Available   bool   `gorm:"index:idx3"` // true means effective
	Description string
}

type Param struct {
	ApiRateLimit      int // requests per minute, 0 disables the limiter
	DistributionBatch int
}
