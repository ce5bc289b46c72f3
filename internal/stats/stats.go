// Package stats derives dashboard statistics from petition rows. Everything
// here is a pure function of its input so the same rows always produce the
// same numbers.
package stats

import (
	"math"
	"regexp"
	"sort"

	"github.com/dseu-petition/petition-api/internal/models"
)

// Category pairs a label with the pattern that claims a problem
// description. Categories are evaluated in order and the first match wins,
// so adding one is a data change, not a control-flow change.
type Category struct {
	Label   string
	Pattern *regexp.Regexp
}

var Categories = []Category{
	{"Job Prospects", regexp.MustCompile(`(?i)job|career|employment|placement`)},
	{"Higher Education", regexp.MustCompile(`(?i)higher education|masters|further studies`)},
	{"Recognition", regexp.MustCompile(`(?i)recognition|validity|acceptance`)},
	{"Industry Training", regexp.MustCompile(`(?i)training|internship|practical`)},
}

const OtherCategory = "Other"

// Classify returns the label of the first category whose pattern matches
// the description, or "Other" when none do.
func Classify(description string) string {
	for _, c := range Categories {
		if c.Pattern.MatchString(description) {
			return c.Label
		}
	}
	return OtherCategory
}

// NonRejected filters out rejected petitions.
func NonRejected(petitions []models.Petition) []models.Petition {
	out := make([]models.Petition, 0, len(petitions))
	for _, p := range petitions {
		if p.Status != models.StatusRejected {
			out = append(out, p)
		}
	}
	return out
}

// CollegeBreakdown groups non-rejected petitions by college name. Colleges
// appear in order of first occurrence.
func CollegeBreakdown(petitions []models.Petition) []models.CollegeCount {
	idx := make(map[string]int)
	var out []models.CollegeCount
	for _, p := range petitions {
		if p.Status == models.StatusRejected {
			continue
		}
		if i, ok := idx[p.CollegeName]; ok {
			out[i].Count++
			continue
		}
		idx[p.CollegeName] = len(out)
		out = append(out, models.CollegeCount{Name: p.CollegeName, Count: 1})
	}
	return out
}

// CommonIssues classifies each non-rejected petition into exactly one
// category. Percentages are relative to total (all signatures, any status)
// and rounded to one decimal; categories appear in order of first
// occurrence.
func CommonIssues(petitions []models.Petition, total int) []models.CategoryCount {
	idx := make(map[string]int)
	var out []models.CategoryCount
	for _, p := range petitions {
		if p.Status == models.StatusRejected {
			continue
		}
		label := Classify(p.ProblemDescription)
		if i, ok := idx[label]; ok {
			out[i].Count++
			continue
		}
		idx[label] = len(out)
		out = append(out, models.CategoryCount{Category: label, Count: 1})
	}
	for i := range out {
		if total > 0 {
			out[i].Percentage = round1(float64(out[i].Count) / float64(total) * 100)
		}
	}
	return out
}

// DailyCounts buckets the given petitions by creation date (UTC, day
// granularity), sorted ascending by date string.
func DailyCounts(petitions []models.Petition) []models.DailyCount {
	buckets := make(map[string]int)
	for _, p := range petitions {
		buckets[p.CreatedAt.UTC().Format("2006-01-02")]++
	}
	out := make([]models.DailyCount, 0, len(buckets))
	for date, count := range buckets {
		out = append(out, models.DailyCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// VerificationRate is verified/total as a percentage with one decimal.
// A total of zero yields zero.
func VerificationRate(verified, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(verified) / float64(total) * 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
