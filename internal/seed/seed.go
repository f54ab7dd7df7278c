package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/oakmont-ms/library-volunteers/backend/internal/domain"
	"github.com/oakmont-ms/library-volunteers/backend/internal/repository"
	"github.com/oakmont-ms/library-volunteers/backend/internal/utils"
)

var firstNames = []string{
	"Ava", "Ben", "Chloe", "Daniel", "Elena", "Felix", "Grace", "Henry",
	"Isla", "Jonah", "Kira", "Liam", "Maya", "Noah", "Olivia", "Priya",
	"Quinn", "Rosa", "Sam", "Tessa",
}

var lastNames = []string{
	"Adams", "Brooks", "Chen", "Diaz", "Evans", "Foster", "Garcia", "Hart",
	"Iverson", "Jordan", "Kim", "Lopez", "Morris", "Nair", "Okafor", "Patel",
	"Reyes", "Singh", "Torres", "Walsh",
}

// GenerateRandomMonitor builds a monitor account with an English name and a
// username derived from it.
func GenerateRandomMonitor(password string) (*domain.User, error) {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last[:1]), rand.Intn(100))

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     first + " " + last,
		Email:        username + "@students.oakmont.example",
		Role:         domain.RoleMonitor,
	}, nil
}

// DefaultPeriodDefinitions is the standard bell schedule: period 0 before
// first bell, then nine regular periods.
func DefaultPeriodDefinitions() []domain.PeriodDefinition {
	defs := make([]domain.PeriodDefinition, 0, 10)
	defs = append(defs, domain.PeriodDefinition{Period: 0, Duration: 45, StartTime: "07:15", EndTime: "08:00"})

	start := 8 * 60 // minutes past midnight
	for p := int32(1); p <= 9; p++ {
		defs = append(defs, domain.PeriodDefinition{
			Period:    p,
			Duration:  46,
			StartTime: fmt.Sprintf("%02d:%02d", start/60, start%60),
			EndTime:   fmt.Sprintf("%02d:%02d", (start+46)/60, (start+46)%60),
		})
		start += 50
	}
	return defs
}

// SeedShifts fills the next n school days with one or two random monitor
// assignments each.
func SeedShifts(repo *repository.Repository, monitorIDs []int64, n int) (int, error) {
	if len(monitorIDs) == 0 {
		return 0, fmt.Errorf("no monitors to assign")
	}

	created := 0
	attempts := 0
	day := time.Now()
	for created < n && attempts < n*10 {
		attempts++
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		period := int32(rand.Intn(10))
		assigned := []int64{monitorIDs[rand.Intn(len(monitorIDs))]}
		if len(monitorIDs) > 1 && rand.Intn(2) == 0 {
			other := monitorIDs[rand.Intn(len(monitorIDs))]
			if other != assigned[0] {
				assigned = append(assigned, other)
			}
		}

		shift := &domain.Shift{
			Date:   day.Format(utils.DateLayout),
			Period: period,
		}
		if err := repo.CreateShift(shift, assigned); err != nil {
			// duplicate (date, period) rolls are expected, just move on
			continue
		}
		created++
	}

	return created, nil
}

// SeedCalendar inserts one full-day holiday and one partial closure next week.
func SeedCalendar(repo *repository.Repository) error {
	types, err := repo.GetAllEventTypes()
	if err != nil {
		return err
	}

	typeByName := make(map[string]int64)
	for _, t := range types {
		typeByName[t.Name] = t.ID
	}

	nextMonday := time.Now()
	for nextMonday.Weekday() != time.Monday {
		nextMonday = nextMonday.AddDate(0, 0, 1)
	}

	holiday := &domain.CalendarEvent{
		Title:     "Staff Development Day",
		TypeID:    typeByName["Holiday"],
		StartDate: nextMonday.Format(utils.DateLayout),
		EndDate:   nextMonday.Format(utils.DateLayout),
		AllDay:    true,
	}
	if err := repo.CreateEvent(holiday); err != nil {
		return err
	}

	periodStart := int32(6)
	periodEnd := int32(9)
	earlyDismissal := &domain.CalendarEvent{
		Title:       "Early Dismissal",
		TypeID:      typeByName["Closure"],
		StartDate:   nextMonday.AddDate(0, 0, 3).Format(utils.DateLayout),
		EndDate:     nextMonday.AddDate(0, 0, 3).Format(utils.DateLayout),
		PeriodStart: &periodStart,
		PeriodEnd:   &periodEnd,
	}
	return repo.CreateEvent(earlyDismissal)
}

// SeedCheckinCode purges stale codes and issues a fresh one valid for the
// configured window.
func SeedCheckinCode(repo *repository.Repository, validity time.Duration) (*domain.CheckinCode, error) {
	if err := repo.DeleteExpiredCheckinCodes(); err != nil {
		return nil, err
	}

	code := &domain.CheckinCode{
		Code:      utils.GenerateCheckinCode(),
		ExpiresAt: time.Now().Add(validity),
	}
	if err := repo.IssueCheckinCode(code); err != nil {
		return nil, err
	}
	return code, nil
}
