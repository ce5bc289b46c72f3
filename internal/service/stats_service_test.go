package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dseu-petition/petition-api/internal/models"
	"github.com/dseu-petition/petition-api/internal/service"
)

type fakeProfileStore struct {
	profiles []models.Profile
}

func (s *fakeProfileStore) Create(_ context.Context, p *models.Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.profiles = append(s.profiles, *p)
	return nil
}

func (s *fakeProfileStore) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].Email == email {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakeProfileStore) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakeProfileStore) Count(_ context.Context) (int64, error) {
	return int64(len(s.profiles)), nil
}

func TestDashboardStats(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	petitions := &fakePetitionStore{petitions: []models.Petition{
		{CollegeName: "A", ProblemDescription: "no job offers", Status: models.StatusPending, CreatedAt: day.Add(8 * time.Hour)},
		{CollegeName: "A", ProblemDescription: "rejected anyway", Status: models.StatusRejected, CreatedAt: day.Add(9 * time.Hour)},
		{CollegeName: "B", ProblemDescription: "want to do masters", Status: models.StatusVerified, CreatedAt: day.AddDate(0, 0, 1)},
	}}
	svc := service.NewStatsService(petitions, &fakeProfileStore{})

	got, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if got.TotalSignatures != 3 {
		t.Errorf("total = %d, want 3", got.TotalSignatures)
	}
	if got.PendingVerification != 1 || got.VerifiedSignatures != 1 {
		t.Errorf("pending/verified = %d/%d, want 1/1", got.PendingVerification, got.VerifiedSignatures)
	}
	if len(got.CollegeBreakdown) != 2 {
		t.Fatalf("college breakdown = %+v, want A:1 B:1", got.CollegeBreakdown)
	}
	if got.CollegeBreakdown[0].Name != "A" || got.CollegeBreakdown[0].Count != 1 {
		t.Errorf("college A = %+v, want count 1 (rejected excluded)", got.CollegeBreakdown[0])
	}
	if got.CollegeBreakdown[1].Name != "B" || got.CollegeBreakdown[1].Count != 1 {
		t.Errorf("college B = %+v, want count 1", got.CollegeBreakdown[1])
	}
	// Rejected petitions are excluded from the daily series here
	if len(got.DailySignatures) != 2 {
		t.Fatalf("daily = %+v, want 2 buckets", got.DailySignatures)
	}
	if got.DailySignatures[0].Date != "2025-04-01" || got.DailySignatures[0].Count != 1 {
		t.Errorf("first bucket = %+v, want 2025-04-01:1", got.DailySignatures[0])
	}
}

func TestPublicStats(t *testing.T) {
	petitions := &fakePetitionStore{petitions: []models.Petition{
		{Status: models.StatusVerified, CreatedAt: time.Now()},
		{Status: models.StatusPending, CreatedAt: time.Now()},
		{Status: models.StatusRejected, CreatedAt: time.Now()},
	}}
	svc := service.NewStatsService(petitions, &fakeProfileStore{})

	got, err := svc.Public(context.Background())
	if err != nil {
		t.Fatalf("public stats: %v", err)
	}
	if got.TotalSignatures != 3 {
		t.Errorf("total = %d, want 3", got.TotalSignatures)
	}
	if got.VerifiedSignatures != 1 {
		t.Errorf("verified = %d, want 1", got.VerifiedSignatures)
	}
}

func TestAdminStats(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	petitions := &fakePetitionStore{petitions: []models.Petition{
		{Status: models.StatusVerified, CreatedAt: day.Add(2 * time.Hour)},
		{Status: models.StatusPending, CreatedAt: day.Add(20 * time.Hour)},
		{Status: models.StatusRejected, CreatedAt: day.Add(22 * time.Hour)},
	}}
	profiles := &fakeProfileStore{profiles: []models.Profile{{Email: "a@x"}, {Email: "b@x"}}}
	svc := service.NewStatsService(petitions, profiles)

	got, err := svc.Admin(context.Background())
	if err != nil {
		t.Fatalf("admin stats: %v", err)
	}
	if got.TotalUsers != 2 {
		t.Errorf("users = %d, want 2", got.TotalUsers)
	}
	if got.TotalPetitions != 3 {
		t.Errorf("petitions = %d, want 3", got.TotalPetitions)
	}
	if got.VerificationRate != 33.3 {
		t.Errorf("rate = %v, want 33.3", got.VerificationRate)
	}
	// Admin series counts every status; all three fall on the same day
	if len(got.DailySignatures) != 1 || got.DailySignatures[0].Count != 3 {
		t.Errorf("daily = %+v, want one bucket of 3", got.DailySignatures)
	}
}

func TestAdminStatsEmptyRelation(t *testing.T) {
	svc := service.NewStatsService(&fakePetitionStore{}, &fakeProfileStore{})
	got, err := svc.Admin(context.Background())
	if err != nil {
		t.Fatalf("admin stats: %v", err)
	}
	if got.VerificationRate != 0 {
		t.Errorf("rate for empty relation = %v, want 0", got.VerificationRate)
	}
	if got.TotalPetitions != 0 {
		t.Errorf("petitions = %d, want 0", got.TotalPetitions)
	}
}
