// Package subscriber models the balance-check result assembled from the
// partner subscriber API. Nothing here is cached: every check recomputes the
// full status from the upstream responses (or their canned substitutes).
package subscriber

// Provenance tells operators whether displayed data came from the live
// partner API or a synthesized substitute. There is no error value: every
// upstream failure is recovered by substitution, so a status always carries
// one of these two.
type Provenance string

const (
	ProvenanceReal Provenance = "real"
	ProvenanceMock Provenance = "mock"
)

// PartnerPackage mirrors one element of the partner esim-status response.
// The numeric fields are deliberately loose: the upstream sends package_size
// as a gigabyte count, remaining_data as either a unit-suffixed string or a
// byte count, and used_data sometimes not at all.
type PartnerPackage struct {
	Status         string `json:"status"`
	PackageSize    any    `json:"package_size"`
	RemainingData  any    `json:"remaining_data"`
	UsedData       any    `json:"used_data"`
	ActivationDate string `json:"activation_date"`
	ExpiresAt      string `json:"expires_at"`
	Validity       int    `json:"validity"`
}

// Details mirrors the partner subscriber endpoint response.
type Details struct {
	SubscriberID string `json:"subscriber_id"`
	ICCID        string `json:"iccid"`
	MSISDN       string `json:"msisdn,omitempty"`
}

// Status is the fully derived balance-check result shown to the caller.
// DataUsed + DataRemaining approximates PackageSize whenever the size is
// known; the service never reports a zero/zero usage pair for a sized plan.
type Status struct {
	SubscriberID   string     `json:"subscriber_id"`
	ICCID          string     `json:"iccid"`
	State          string     `json:"status"`
	PackageSize    int64      `json:"package_size_bytes"`
	DataUsed       int64      `json:"data_used_bytes"`
	DataRemaining  int64      `json:"data_remaining_bytes"`
	DataUsedText   string     `json:"data_used"`
	DataLeftText   string     `json:"data_remaining"`
	UsagePercent   int        `json:"usage_percent"`
	RemainingDays  int        `json:"remaining_days"`
	Expired        bool       `json:"expired"`
	ActivationDate string     `json:"activation_date,omitempty"`
	ExpiresAt      string     `json:"expires_at,omitempty"`
	Validity       int        `json:"validity,omitempty"`
	Provenance     Provenance `json:"provenance"`
}
