// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"govportal/internal/identity"
	"govportal/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumCitizens int
	LoginDomain string
	ShouldClean bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	if opts.NumCitizens <= 0 {
		opts.NumCitizens = 50
	}
	if opts.LoginDomain == "" {
		opts.LoginDomain = identity.DefaultLoginDomain
	}
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates every seeded table, children first.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"notifications", "inspections", "lawyer_requests", "lawyers",
		"court_sessions", "cases", "warrants", "court_acts", "gov_acts",
		"appointments", "role_change_requests", "verification_requests",
		"profiles",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	log.Println("database cleared")
	return nil
}

// Run seeds a full demo portal: officials, citizens, and a spread of
// requests and registry entries.
func (s *Seeder) Run() error {
	officials, err := s.seedOfficials()
	if err != nil {
		return err
	}
	citizens, err := s.seedCitizens()
	if err != nil {
		return err
	}
	if err := s.seedRequests(citizens); err != nil {
		return err
	}
	if err := s.seedRegistries(officials); err != nil {
		return err
	}
	log.Printf("seeded %d officials, %d citizens", len(officials), len(citizens))
	return nil
}

// seedOfficials creates one profile per privileged role so every review
// surface has a reviewer.
func (s *Seeder) seedOfficials() ([]models.Profile, error) {
	type official struct {
		nickname   string
		govRole    models.GovRole
		leaderRole models.LeaderRole
		officeRole models.OfficeRole
		faction    models.Faction
	}
	blueprint := []official{
		{nickname: "Tech Admin", govRole: models.GovRoleTechAdmin, faction: models.FactionGov},
		{nickname: "Attorney General", govRole: models.GovRoleAttorneyGeneral, faction: models.FactionGov},
		{nickname: "Chief Justice", govRole: models.GovRoleChiefJustice, faction: models.FactionJudicial},
		{nickname: "Governor", leaderRole: models.LeaderRoleGovernor, officeRole: models.OfficeRoleGovernor, faction: models.FactionGov},
		{nickname: "LSPD Chief", leaderRole: models.LeaderRoleChiefLSPD, faction: models.FactionLSPD},
		{nickname: "FIB Director", leaderRole: models.LeaderRoleDirectorFIB, faction: models.FactionFIB},
		{nickname: "Justice Desk", officeRole: models.OfficeRoleMinJustice, faction: models.FactionGov},
		{nickname: "Senior Prosecutor", govRole: models.GovRoleProsecutor, faction: models.FactionGov},
		{nickname: "District Judge", govRole: models.GovRoleJudge, faction: models.FactionJudicial},
	}

	officials := make([]models.Profile, 0, len(blueprint))
	for i, b := range blueprint {
		staticID := fmt.Sprintf("GOV-%03d", i+1)
		p := models.Profile{
			Nickname:   b.nickname,
			StaticID:   staticID,
			Email:      identity.TechnicalLogin(staticID, s.opts.LoginDomain),
			Password:   s.hashPassword("official123"),
			Faction:    b.faction,
			GovRole:    orNone(b.govRole),
			LeaderRole: b.leaderRole,
			OfficeRole: b.officeRole,
			IsVerified: true,
		}
		if err := s.db.Create(&p).Error; err != nil {
			return nil, fmt.Errorf("seed official %s: %w", b.nickname, err)
		}
		officials = append(officials, p)
	}
	return officials, nil
}

func orNone(r models.GovRole) models.GovRole {
	if r == "" {
		return models.GovRoleNone
	}
	return r
}

func (s *Seeder) seedCitizens() ([]models.Profile, error) {
	citizens := make([]models.Profile, 0, s.opts.NumCitizens)
	for i := 0; i < s.opts.NumCitizens; i++ {
		staticID := fmt.Sprintf("%s-%04d", strings.ToUpper(gofakeit.LetterN(2)), s.rng.Intn(10000))
		p := models.Profile{
			Nickname:   gofakeit.Name(),
			StaticID:   staticID,
			Email:      identity.TechnicalLogin(staticID, s.opts.LoginDomain),
			Password:   s.hashPassword("citizen123"),
			Discord:    gofakeit.Username(),
			Faction:    models.FactionCivilian,
			GovRole:    models.GovRoleNone,
			IsVerified: s.rng.Intn(3) == 0,
			CreatedAt:  s.pastTime(90),
		}
		if err := s.db.Create(&p).Error; err != nil {
			// Static IDs are random; collisions just skip a citizen.
			continue
		}
		citizens = append(citizens, p)
	}
	return citizens, nil
}

func (s *Seeder) seedRequests(citizens []models.Profile) error {
	departments := models.Departments
	kinds := models.VerificationKinds

	for _, citizen := range citizens {
		if s.rng.Intn(2) == 0 {
			appt := models.Appointment{
				Department:  departments[s.rng.Intn(len(departments))],
				Subject:     gofakeit.Sentence(6),
				Status:      models.AppointmentStatusPending,
				CreatedByID: citizen.ID,
				CreatedAt:   s.pastTime(30),
			}
			if err := s.db.Create(&appt).Error; err != nil {
				return fmt.Errorf("seed appointment: %w", err)
			}
		}
		if s.rng.Intn(3) == 0 {
			kind := kinds[s.rng.Intn(len(kinds))]
			req := models.VerificationRequest{
				Kind:        kind,
				Comment:     gofakeit.Sentence(8),
				Status:      models.RequestStatusPending,
				CreatedByID: citizen.ID,
				CreatedAt:   s.pastTime(30),
			}
			if kind == models.VerificationKindFactionMember {
				faction := models.Factions[1+s.rng.Intn(len(models.Factions)-1)]
				req.TargetFaction = &faction
			}
			if err := s.db.Create(&req).Error; err != nil {
				return fmt.Errorf("seed verification: %w", err)
			}
		}
	}
	return nil
}

func (s *Seeder) seedRegistries(officials []models.Profile) error {
	var prosecutor, judge models.Profile
	for _, o := range officials {
		switch o.GovRole {
		case models.GovRoleProsecutor:
			prosecutor = o
		case models.GovRoleJudge:
			judge = o
		}
	}

	for i := 0; i < 10; i++ {
		act := models.GovAct{
			Title:     gofakeit.Sentence(4),
			Content:   gofakeit.Paragraph(2, 4, 8, "\n"),
			Status:    models.ActStatusPublished,
			AuthorID:  prosecutor.ID,
			CreatedAt: s.pastTime(60),
		}
		if err := s.db.Create(&act).Error; err != nil {
			return fmt.Errorf("seed gov act: %w", err)
		}
	}
	for i := 0; i < 6; i++ {
		act := models.CourtAct{
			Title:     gofakeit.Sentence(4),
			Content:   gofakeit.Paragraph(2, 4, 8, "\n"),
			Status:    models.ActStatusPublished,
			JudgeID:   judge.ID,
			CreatedAt: s.pastTime(60),
		}
		if err := s.db.Create(&act).Error; err != nil {
			return fmt.Errorf("seed court act: %w", err)
		}
	}
	for i := 0; i < 8; i++ {
		warrant := models.Warrant{
			WarrantNumber: fmt.Sprintf("W-%04d", 1000+i),
			TargetName:    gofakeit.Name(),
			WarrantType:   models.WarrantTypeArrest,
			Reason:        gofakeit.Sentence(10),
			Articles:      models.Articles{fmt.Sprintf("%d.%d", 1+s.rng.Intn(20), 1+s.rng.Intn(9))},
			Status:        models.WarrantStatusActive,
			IssuedByID:    judge.ID,
			CreatedAt:     s.pastTime(20),
		}
		if err := s.db.Create(&warrant).Error; err != nil {
			return fmt.Errorf("seed warrant: %w", err)
		}
	}
	for i := 0; i < 5; i++ {
		record := models.Case{
			Number:      fmt.Sprintf("C-%04d", 2000+i),
			Title:       gofakeit.Sentence(5),
			Description: gofakeit.Paragraph(1, 3, 6, "\n"),
			Status:      models.CaseStatusOpen,
			CreatedByID: prosecutor.ID,
			CreatedAt:   s.pastTime(45),
		}
		if err := s.db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed case: %w", err)
		}
	}
	return nil
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	return time.Now().Add(-time.Duration(s.rng.Intn(maxDays*24)) * time.Hour)
}

func (s *Seeder) hashPassword(plain string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	return string(hashed)
}
