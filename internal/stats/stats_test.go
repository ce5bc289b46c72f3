package stats_test

import (
	"testing"
	"time"

	"github.com/dseu-petition/petition-api/internal/models"
	"github.com/dseu-petition/petition-api/internal/stats"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"I cannot find internship opportunities anywhere", "Industry Training"},
		{"my diploma has no value", "Other"},
		{"I want to pursue masters abroad", "Higher Education"},
		{"no job offers and no training either", "Job Prospects"}, // first match wins
		{"PLACEMENT season passed me by", "Job Prospects"},
		{"degree lacks recognition from employers", "Recognition"},
		{"", "Other"},
	}
	for _, c := range cases {
		if got := stats.Classify(c.description); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.description, got, c.want)
		}
	}
}

func TestCollegeBreakdownExcludesRejected(t *testing.T) {
	petitions := []models.Petition{
		{CollegeName: "A", Status: models.StatusPending},
		{CollegeName: "A", Status: models.StatusRejected},
		{CollegeName: "B", Status: models.StatusVerified},
	}
	got := stats.CollegeBreakdown(petitions)
	if len(got) != 2 {
		t.Fatalf("expected 2 colleges, got %d", len(got))
	}
	if got[0].Name != "A" || got[0].Count != 1 {
		t.Errorf("first entry = %+v, want A:1", got[0])
	}
	if got[1].Name != "B" || got[1].Count != 1 {
		t.Errorf("second entry = %+v, want B:1", got[1])
	}
}

func TestCollegeBreakdownFirstSeenOrder(t *testing.T) {
	petitions := []models.Petition{
		{CollegeName: "Z", Status: models.StatusPending},
		{CollegeName: "A", Status: models.StatusPending},
		{CollegeName: "Z", Status: models.StatusVerified},
	}
	got := stats.CollegeBreakdown(petitions)
	if got[0].Name != "Z" || got[0].Count != 2 {
		t.Errorf("expected Z first with count 2, got %+v", got[0])
	}
	if got[1].Name != "A" {
		t.Errorf("expected A second, got %+v", got[1])
	}
}

func TestCommonIssues(t *testing.T) {
	petitions := []models.Petition{
		{ProblemDescription: "no job prospects", Status: models.StatusPending},
		{ProblemDescription: "placement troubles", Status: models.StatusVerified},
		{ProblemDescription: "something unrelated", Status: models.StatusPending},
		{ProblemDescription: "career is ruined", Status: models.StatusRejected}, // excluded
	}
	got := stats.CommonIssues(petitions, 4)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d: %+v", len(got), got)
	}
	if got[0].Category != "Job Prospects" || got[0].Count != 2 {
		t.Errorf("first category = %+v, want Job Prospects:2", got[0])
	}
	if got[0].Percentage != 50.0 {
		t.Errorf("percentage = %v, want 50.0", got[0].Percentage)
	}
	if got[1].Category != stats.OtherCategory || got[1].Count != 1 {
		t.Errorf("second category = %+v, want Other:1", got[1])
	}
	if got[1].Percentage != 25.0 {
		t.Errorf("percentage = %v, want 25.0", got[1].Percentage)
	}
}

func TestCommonIssuesOneDecimal(t *testing.T) {
	petitions := []models.Petition{
		{ProblemDescription: "job", Status: models.StatusPending},
	}
	got := stats.CommonIssues(petitions, 3)
	if got[0].Percentage != 33.3 {
		t.Errorf("percentage = %v, want 33.3", got[0].Percentage)
	}
}

func TestDailyCountsSameDayBucket(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	petitions := []models.Petition{
		{CreatedAt: day.Add(9 * time.Hour)},
		{CreatedAt: day.Add(21 * time.Hour)},
		{CreatedAt: day.AddDate(0, 0, -1)},
	}
	got := stats.DailyCounts(petitions)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	if got[0].Date != "2025-03-09" || got[0].Count != 1 {
		t.Errorf("first bucket = %+v", got[0])
	}
	if got[1].Date != "2025-03-10" || got[1].Count != 2 {
		t.Errorf("second bucket = %+v, want 2025-03-10:2", got[1])
	}
}

func TestVerificationRate(t *testing.T) {
	if got := stats.VerificationRate(0, 0); got != 0 {
		t.Errorf("rate for empty relation = %v, want 0", got)
	}
	if got := stats.VerificationRate(1, 3); got != 33.3 {
		t.Errorf("rate = %v, want 33.3", got)
	}
	if got := stats.VerificationRate(2, 2); got != 100 {
		t.Errorf("rate = %v, want 100", got)
	}
}

func TestNonRejected(t *testing.T) {
	petitions := []models.Petition{
		{Status: models.StatusPending},
		{Status: models.StatusRejected},
		{Status: models.StatusVerified},
	}
	got := stats.NonRejected(petitions)
	if len(got) != 2 {
		t.Fatalf("expected 2 petitions, got %d", len(got))
	}
	for _, p := range got {
		if p.Status == models.StatusRejected {
			t.Errorf("rejected petition not filtered out")
		}
	}
}
