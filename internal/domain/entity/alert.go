package entity

// AlertCode identifies a triggered alert condition
type AlertCode int

// Alert codes, one per hard-coded rule
const (
	AlertWithdrawOver100         AlertCode = 1100
	AlertConsecutiveWithdraws    AlertCode = 30
	AlertIncreasingDeposits      AlertCode = 300
	AlertAccumulatedDepositsOver AlertCode = 123
)

// AlertResponse represents the outcome of ingesting one event
type AlertResponse struct {
	Alert      bool   `json:"alert"`
	AlertCodes []int  `json:"alert_codes"`
	UserID     uint64 `json:"user_id"`
}

// NewAlertResponse builds the response for the given triggered codes.
// AlertCodes is never nil so it serializes as [] when nothing triggered.
func NewAlertResponse(userID uint64, codes []AlertCode) AlertResponse {
	ints := make([]int, 0, len(codes))
	for _, code := range codes {
		ints = append(ints, int(code))
	}
	return AlertResponse{
		Alert:      len(ints) > 0,
		AlertCodes: ints,
		UserID:     userID,
	}
}
