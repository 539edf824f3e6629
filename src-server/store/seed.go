package store

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"huddle/src-server/model"
)

var demoNames = []string{
	"Sarah Chen",
	"Michael Rodriguez",
	"Emma Thompson",
	"David Kim",
	"Priya Patel",
	"James Wilson",
	"Lisa Zhang",
	"Alex Johnson",
	"Maria Garcia",
	"Tom Anderson",
	"Ava Williams",
	"Ryan Taylor",
	"Sophie Martin",
	"Daniel Lee",
	"Rachel Brown",
	"Chris Davis",
}

var demoGroupNames = []string{
	"SaaS Founders Dinner",
	"FinTech Roundtable",
	"AI/ML Mentorship Circle",
	"HealthTech Innovation Dinner",
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// "Sarah Chen" -> "sarah.chen@example.com"
func demoEmail(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@example.com"
}

// SeedDemoData fills an empty store with demo attendees and groups. It does
// nothing if any attendee already exists.
func SeedDemoData(ctx context.Context, s Store, r *rand.Rand) error {
	existing, err := s.ListAttendees(ctx)
	if err != nil {
		return fmt.Errorf("SeedDemoData: %w", err)
	}
	if len(existing) > 0 {
		slog.Debug("store already has attendees, skip seeding", "count", len(existing))
		return nil
	}

	for _, name := range demoNames {
		if _, err := s.CreateAttendee(ctx, model.AttendeeInput{
			UserType: pick(r, model.UserTypes()),
			Name:     name,
			Email:    demoEmail(name),
			Responses: model.Responses{
				Industry:        pick(r, model.Industries()),
				PreferredFormat: pick(r, model.EventFormats()),
				StartupStage:    pick(r, model.StartupStages()),
				Challenge:       pick(r, model.Challenges()),
			},
		}); err != nil {
			return fmt.Errorf("SeedDemoData: %w", err)
		}
	}
	for _, name := range demoGroupNames {
		if _, err := s.CreateGroup(ctx, model.GroupInput{
			Name:   name,
			Format: pick(r, model.EventFormats()),
		}); err != nil {
			return fmt.Errorf("SeedDemoData: %w", err)
		}
	}

	slog.Info("seeded demo data", "attendees", len(demoNames), "groups", len(demoGroupNames))
	return nil
}
