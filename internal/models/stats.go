package models

// Derived statistics. Never persisted, recomputed per request.

type CollegeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalSignatures     int             `json:"totalSignatures"`
	PendingVerification int             `json:"pendingVerification"`
	VerifiedSignatures  int             `json:"verifiedSignatures"`
	CollegeBreakdown    []CollegeCount  `json:"collegeBreakdown"`
	CommonIssues        []CategoryCount `json:"commonIssues"`
	DailySignatures     []DailyCount    `json:"dailySignatures"`
}

// PublicStats backs the unauthenticated landing page counters.
type PublicStats struct {
	TotalSignatures    int `json:"totalSignatures"`
	VerifiedSignatures int `json:"verifiedSignatures"`
}

type AdminStats struct {
	TotalUsers       int          `json:"totalUsers"`
	TotalPetitions   int          `json:"totalPetitions"`
	VerificationRate float64      `json:"verificationRate"`
	DailySignatures  []DailyCount `json:"dailySignatures"`
}
