package service

import (
	"context"

	"github.com/dseu-petition/petition-api/internal/models"
	"github.com/dseu-petition/petition-api/internal/stats"
)

// StatsService recomputes dashboard figures from the petition relation on
// every call. No caching: the relation is the source of truth.
type StatsService struct {
	petitions PetitionStore
	profiles  ProfileStore
}

func NewStatsService(petitions PetitionStore, profiles ProfileStore) *StatsService {
	return &StatsService{petitions: petitions, profiles: profiles}
}

// Dashboard backs the signed-in petition dashboard. Breakdowns and the
// daily series exclude rejected petitions; the headline counts do not.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	total, err := s.petitions.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	pending, err := s.petitions.Count(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}
	verified, err := s.petitions.Count(ctx, models.StatusVerified)
	if err != nil {
		return nil, err
	}
	rows, err := s.petitions.All(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalSignatures:     int(total),
		PendingVerification: int(pending),
		VerifiedSignatures:  int(verified),
		CollegeBreakdown:    stats.CollegeBreakdown(rows),
		CommonIssues:        stats.CommonIssues(rows, int(total)),
		DailySignatures:     stats.DailyCounts(stats.NonRejected(rows)),
	}, nil
}

// Public backs the landing page counters. No breakdowns, no auth.
func (s *StatsService) Public(ctx context.Context) (*models.PublicStats, error) {
	total, err := s.petitions.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	verified, err := s.petitions.Count(ctx, models.StatusVerified)
	if err != nil {
		return nil, err
	}
	return &models.PublicStats{
		TotalSignatures:    int(total),
		VerifiedSignatures: int(verified),
	}, nil
}

// Admin backs the admin dashboard. The daily series covers every petition
// regardless of status.
func (s *StatsService) Admin(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.petitions.All(ctx)
	if err != nil {
		return nil, err
	}

	verified := 0
	for _, p := range rows {
		if p.Status == models.StatusVerified {
			verified++
		}
	}

	return &models.AdminStats{
		TotalUsers:       int(users),
		TotalPetitions:   len(rows),
		VerificationRate: stats.VerificationRate(verified, len(rows)),
		DailySignatures:  stats.DailyCounts(rows),
	}, nil
}
