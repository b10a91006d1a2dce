package service

import (
	"context"
	"testing"

	"govportal/internal/models"
	"govportal/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database for services that run
// transactions directly.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Profile{},
		&models.VerificationRequest{},
		&models.RoleChangeRequest{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

type profileRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Profile, error)
	getByEmailFn    func(context.Context, string) (*models.Profile, error)
	getByStaticIDFn func(context.Context, string) (*models.Profile, error)
	getByIDsFn      func(context.Context, []uint) (map[uint]models.Profile, error)
	createFn        func(context.Context, *models.Profile) error
	updateFn        func(context.Context, *models.Profile) error
	listFn          func(context.Context, int, int) ([]models.Profile, error)
	searchByNameFn  func(context.Context, string, int) ([]models.Profile, error)
}

func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *profileRepoStub) GetByStaticID(ctx context.Context, staticID string) (*models.Profile, error) {
	return s.getByStaticIDFn(ctx, staticID)
}
func (s *profileRepoStub) GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Profile, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}
func (s *profileRepoStub) List(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *profileRepoStub) SearchByName(ctx context.Context, query string, limit int) ([]models.Profile, error) {
	return s.searchByNameFn(ctx, query, limit)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.Profile, error) { return &models.Profile{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.Profile, error) { return nil, nil },
		getByStaticIDFn: func(context.Context, string) (*models.Profile, error) { return nil, nil },
		getByIDsFn: func(context.Context, []uint) (map[uint]models.Profile, error) {
			return map[uint]models.Profile{}, nil
		},
		createFn:       func(context.Context, *models.Profile) error { return nil },
		updateFn:       func(context.Context, *models.Profile) error { return nil },
		listFn:         func(context.Context, int, int) ([]models.Profile, error) { return nil, nil },
		searchByNameFn: func(context.Context, string, int) ([]models.Profile, error) { return nil, nil },
	}
}

// profileByID serves a fixed set of profiles keyed by id.
func profileByID(profiles ...models.Profile) *profileRepoStub {
	byID := make(map[uint]models.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	stub := noopProfileRepo()
	stub.getByIDFn = func(_ context.Context, id uint) (*models.Profile, error) {
		p, ok := byID[id]
		if !ok {
			return nil, models.NewNotFoundError("Profile", id)
		}
		return &p, nil
	}
	return stub
}

type notificationRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Notification, error)
	createFn        func(context.Context, *models.Notification) error
	listByProfileFn func(context.Context, uint, bool, int, int) ([]models.Notification, error)
	markReadFn      func(context.Context, uint) error
	markAllReadFn   func(context.Context, uint) error
	deleteFn        func(context.Context, uint) error
	countUnreadFn   func(context.Context, uint) (int64, error)
}

func (s *notificationRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notificationRepoStub) Create(ctx context.Context, notif *models.Notification) error {
	return s.createFn(ctx, notif)
}
func (s *notificationRepoStub) ListByProfile(ctx context.Context, profileID uint, unreadOnly bool, limit, offset int) ([]models.Notification, error) {
	return s.listByProfileFn(ctx, profileID, unreadOnly, limit, offset)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id uint) error {
	return s.markReadFn(ctx, id)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, profileID uint) error {
	return s.markAllReadFn(ctx, profileID)
}
func (s *notificationRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, profileID uint) (int64, error) {
	return s.countUnreadFn(ctx, profileID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Notification, error) {
			return &models.Notification{}, nil
		},
		createFn: func(context.Context, *models.Notification) error { return nil },
		listByProfileFn: func(context.Context, uint, bool, int, int) ([]models.Notification, error) {
			return nil, nil
		},
		markReadFn:    func(context.Context, uint) error { return nil },
		markAllReadFn: func(context.Context, uint) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		countUnreadFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type verificationRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.VerificationRequest, error)
	getByIDForUpdateFn func(*gorm.DB, uint) (*models.VerificationRequest, error)
	createFn           func(context.Context, *models.VerificationRequest) error
	saveFn             func(*gorm.DB, *models.VerificationRequest) error
	listByCreatorFn    func(context.Context, uint) ([]models.VerificationRequest, error)
	listFn             func(context.Context, repository.VerificationFilter) ([]models.VerificationRequest, error)
	countOpenFn        func(context.Context, uint, models.VerificationKind) (int64, error)
}

func (s *verificationRepoStub) GetByID(ctx context.Context, id uint) (*models.VerificationRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *verificationRepoStub) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.VerificationRequest, error) {
	return s.getByIDForUpdateFn(tx, id)
}
func (s *verificationRepoStub) Create(ctx context.Context, req *models.VerificationRequest) error {
	return s.createFn(ctx, req)
}
func (s *verificationRepoStub) Save(tx *gorm.DB, req *models.VerificationRequest) error {
	return s.saveFn(tx, req)
}
func (s *verificationRepoStub) ListByCreator(ctx context.Context, creatorID uint) ([]models.VerificationRequest, error) {
	return s.listByCreatorFn(ctx, creatorID)
}
func (s *verificationRepoStub) List(ctx context.Context, filter repository.VerificationFilter) ([]models.VerificationRequest, error) {
	return s.listFn(ctx, filter)
}
func (s *verificationRepoStub) CountOpen(ctx context.Context, creatorID uint, kind models.VerificationKind) (int64, error) {
	return s.countOpenFn(ctx, creatorID, kind)
}

func noopVerificationRepo() *verificationRepoStub {
	return &verificationRepoStub{
		getByIDFn: func(context.Context, uint) (*models.VerificationRequest, error) {
			return &models.VerificationRequest{}, nil
		},
		getByIDForUpdateFn: func(*gorm.DB, uint) (*models.VerificationRequest, error) {
			return &models.VerificationRequest{}, nil
		},
		createFn: func(context.Context, *models.VerificationRequest) error { return nil },
		saveFn:   func(*gorm.DB, *models.VerificationRequest) error { return nil },
		listByCreatorFn: func(context.Context, uint) ([]models.VerificationRequest, error) {
			return nil, nil
		},
		listFn: func(context.Context, repository.VerificationFilter) ([]models.VerificationRequest, error) {
			return nil, nil
		},
		countOpenFn: func(context.Context, uint, models.VerificationKind) (int64, error) { return 0, nil },
	}
}

type roleChangeRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.RoleChangeRequest, error)
	getByIDForUpdateFn func(*gorm.DB, uint) (*models.RoleChangeRequest, error)
	createFn           func(context.Context, *models.RoleChangeRequest) error
	saveFn             func(*gorm.DB, *models.RoleChangeRequest) error
	listByCreatorFn    func(context.Context, uint) ([]models.RoleChangeRequest, error)
	listFn             func(context.Context, repository.RoleChangeFilter) ([]models.RoleChangeRequest, error)
	countOpenFn        func(context.Context, uint, models.RoleChangeType) (int64, error)
}

func (s *roleChangeRepoStub) GetByID(ctx context.Context, id uint) (*models.RoleChangeRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *roleChangeRepoStub) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.RoleChangeRequest, error) {
	return s.getByIDForUpdateFn(tx, id)
}
func (s *roleChangeRepoStub) Create(ctx context.Context, req *models.RoleChangeRequest) error {
	return s.createFn(ctx, req)
}
func (s *roleChangeRepoStub) Save(tx *gorm.DB, req *models.RoleChangeRequest) error {
	return s.saveFn(tx, req)
}
func (s *roleChangeRepoStub) ListByCreator(ctx context.Context, creatorID uint) ([]models.RoleChangeRequest, error) {
	return s.listByCreatorFn(ctx, creatorID)
}
func (s *roleChangeRepoStub) List(ctx context.Context, filter repository.RoleChangeFilter) ([]models.RoleChangeRequest, error) {
	return s.listFn(ctx, filter)
}
func (s *roleChangeRepoStub) CountOpen(ctx context.Context, creatorID uint, requestType models.RoleChangeType) (int64, error) {
	return s.countOpenFn(ctx, creatorID, requestType)
}

func noopRoleChangeRepo() *roleChangeRepoStub {
	return &roleChangeRepoStub{
		getByIDFn: func(context.Context, uint) (*models.RoleChangeRequest, error) {
			return &models.RoleChangeRequest{}, nil
		},
		getByIDForUpdateFn: func(*gorm.DB, uint) (*models.RoleChangeRequest, error) {
			return &models.RoleChangeRequest{}, nil
		},
		createFn: func(context.Context, *models.RoleChangeRequest) error { return nil },
		saveFn:   func(*gorm.DB, *models.RoleChangeRequest) error { return nil },
		listByCreatorFn: func(context.Context, uint) ([]models.RoleChangeRequest, error) {
			return nil, nil
		},
		listFn: func(context.Context, repository.RoleChangeFilter) ([]models.RoleChangeRequest, error) {
			return nil, nil
		},
		countOpenFn: func(context.Context, uint, models.RoleChangeType) (int64, error) { return 0, nil },
	}
}

type appointmentRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Appointment, error)
	createFn        func(context.Context, *models.Appointment) error
	updateFn        func(context.Context, *models.Appointment) error
	listByCreatorFn func(context.Context, uint) ([]models.Appointment, error)
	listFn          func(context.Context, repository.AppointmentFilter) ([]models.Appointment, error)
}

func (s *appointmentRepoStub) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *appointmentRepoStub) Create(ctx context.Context, appt *models.Appointment) error {
	return s.createFn(ctx, appt)
}
func (s *appointmentRepoStub) Update(ctx context.Context, appt *models.Appointment) error {
	return s.updateFn(ctx, appt)
}
func (s *appointmentRepoStub) ListByCreator(ctx context.Context, creatorID uint) ([]models.Appointment, error) {
	return s.listByCreatorFn(ctx, creatorID)
}
func (s *appointmentRepoStub) List(ctx context.Context, filter repository.AppointmentFilter) ([]models.Appointment, error) {
	return s.listFn(ctx, filter)
}

func noopAppointmentRepo() *appointmentRepoStub {
	return &appointmentRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Appointment, error) {
			return &models.Appointment{}, nil
		},
		createFn:        func(context.Context, *models.Appointment) error { return nil },
		updateFn:        func(context.Context, *models.Appointment) error { return nil },
		listByCreatorFn: func(context.Context, uint) ([]models.Appointment, error) { return nil, nil },
		listFn: func(context.Context, repository.AppointmentFilter) ([]models.Appointment, error) {
			return nil, nil
		},
	}
}

type govActRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.GovAct, error)
	createFn  func(context.Context, *models.GovAct) error
	updateFn  func(context.Context, *models.GovAct) error
	listFn    func(context.Context, repository.ActFilter) ([]models.GovAct, error)
	searchFn  func(context.Context, string, int) ([]models.GovAct, error)
}

func (s *govActRepoStub) GetByID(ctx context.Context, id uint) (*models.GovAct, error) {
	return s.getByIDFn(ctx, id)
}
func (s *govActRepoStub) Create(ctx context.Context, act *models.GovAct) error {
	return s.createFn(ctx, act)
}
func (s *govActRepoStub) Update(ctx context.Context, act *models.GovAct) error {
	return s.updateFn(ctx, act)
}
func (s *govActRepoStub) List(ctx context.Context, filter repository.ActFilter) ([]models.GovAct, error) {
	return s.listFn(ctx, filter)
}
func (s *govActRepoStub) Search(ctx context.Context, query string, limit int) ([]models.GovAct, error) {
	return s.searchFn(ctx, query, limit)
}

func noopGovActRepo() *govActRepoStub {
	return &govActRepoStub{
		getByIDFn: func(context.Context, uint) (*models.GovAct, error) { return &models.GovAct{}, nil },
		createFn:  func(context.Context, *models.GovAct) error { return nil },
		updateFn:  func(context.Context, *models.GovAct) error { return nil },
		listFn:    func(context.Context, repository.ActFilter) ([]models.GovAct, error) { return nil, nil },
		searchFn:  func(context.Context, string, int) ([]models.GovAct, error) { return nil, nil },
	}
}

type courtActRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.CourtAct, error)
	createFn  func(context.Context, *models.CourtAct) error
	updateFn  func(context.Context, *models.CourtAct) error
	listFn    func(context.Context, repository.ActFilter) ([]models.CourtAct, error)
	searchFn  func(context.Context, string, int) ([]models.CourtAct, error)
}

func (s *courtActRepoStub) GetByID(ctx context.Context, id uint) (*models.CourtAct, error) {
	return s.getByIDFn(ctx, id)
}
func (s *courtActRepoStub) Create(ctx context.Context, act *models.CourtAct) error {
	return s.createFn(ctx, act)
}
func (s *courtActRepoStub) Update(ctx context.Context, act *models.CourtAct) error {
	return s.updateFn(ctx, act)
}
func (s *courtActRepoStub) List(ctx context.Context, filter repository.ActFilter) ([]models.CourtAct, error) {
	return s.listFn(ctx, filter)
}
func (s *courtActRepoStub) Search(ctx context.Context, query string, limit int) ([]models.CourtAct, error) {
	return s.searchFn(ctx, query, limit)
}

func noopCourtActRepo() *courtActRepoStub {
	return &courtActRepoStub{
		getByIDFn: func(context.Context, uint) (*models.CourtAct, error) { return &models.CourtAct{}, nil },
		createFn:  func(context.Context, *models.CourtAct) error { return nil },
		updateFn:  func(context.Context, *models.CourtAct) error { return nil },
		listFn:    func(context.Context, repository.ActFilter) ([]models.CourtAct, error) { return nil, nil },
		searchFn:  func(context.Context, string, int) ([]models.CourtAct, error) { return nil, nil },
	}
}

type warrantRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Warrant, error)
	createFn  func(context.Context, *models.Warrant) error
	updateFn  func(context.Context, *models.Warrant) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context, repository.WarrantFilter) ([]models.Warrant, error)
	searchFn  func(context.Context, string, int) ([]models.Warrant, error)
}

func (s *warrantRepoStub) GetByID(ctx context.Context, id uint) (*models.Warrant, error) {
	return s.getByIDFn(ctx, id)
}
func (s *warrantRepoStub) Create(ctx context.Context, warrant *models.Warrant) error {
	return s.createFn(ctx, warrant)
}
func (s *warrantRepoStub) Update(ctx context.Context, warrant *models.Warrant) error {
	return s.updateFn(ctx, warrant)
}
func (s *warrantRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *warrantRepoStub) List(ctx context.Context, filter repository.WarrantFilter) ([]models.Warrant, error) {
	return s.listFn(ctx, filter)
}
func (s *warrantRepoStub) Search(ctx context.Context, query string, limit int) ([]models.Warrant, error) {
	return s.searchFn(ctx, query, limit)
}

func noopWarrantRepo() *warrantRepoStub {
	return &warrantRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Warrant, error) { return &models.Warrant{}, nil },
		createFn:  func(context.Context, *models.Warrant) error { return nil },
		updateFn:  func(context.Context, *models.Warrant) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		listFn:    func(context.Context, repository.WarrantFilter) ([]models.Warrant, error) { return nil, nil },
		searchFn:  func(context.Context, string, int) ([]models.Warrant, error) { return nil, nil },
	}
}

type caseRepoStub struct {
	getByIDFn     func(context.Context, uint) (*models.Case, error)
	getByNumberFn func(context.Context, string) (*models.Case, error)
	createFn      func(context.Context, *models.Case) error
	updateFn      func(context.Context, *models.Case) error
	listFn        func(context.Context, repository.CaseFilter) ([]models.Case, error)
}

func (s *caseRepoStub) GetByID(ctx context.Context, id uint) (*models.Case, error) {
	return s.getByIDFn(ctx, id)
}
func (s *caseRepoStub) GetByNumber(ctx context.Context, number string) (*models.Case, error) {
	return s.getByNumberFn(ctx, number)
}
func (s *caseRepoStub) Create(ctx context.Context, record *models.Case) error {
	return s.createFn(ctx, record)
}
func (s *caseRepoStub) Update(ctx context.Context, record *models.Case) error {
	return s.updateFn(ctx, record)
}
func (s *caseRepoStub) List(ctx context.Context, filter repository.CaseFilter) ([]models.Case, error) {
	return s.listFn(ctx, filter)
}

func noopCaseRepo() *caseRepoStub {
	return &caseRepoStub{
		getByIDFn:     func(context.Context, uint) (*models.Case, error) { return &models.Case{}, nil },
		getByNumberFn: func(context.Context, string) (*models.Case, error) { return nil, nil },
		createFn:      func(context.Context, *models.Case) error { return nil },
		updateFn:      func(context.Context, *models.Case) error { return nil },
		listFn:        func(context.Context, repository.CaseFilter) ([]models.Case, error) { return nil, nil },
	}
}

type sessionRepoStub struct {
	getByIDFn      func(context.Context, uint) (*models.CourtSession, error)
	createFn       func(context.Context, *models.CourtSession) error
	updateFn       func(context.Context, *models.CourtSession) error
	listByCaseFn   func(context.Context, uint) ([]models.CourtSession, error)
	listUpcomingFn func(context.Context, int) ([]models.CourtSession, error)
}

func (s *sessionRepoStub) GetByID(ctx context.Context, id uint) (*models.CourtSession, error) {
	return s.getByIDFn(ctx, id)
}
func (s *sessionRepoStub) Create(ctx context.Context, session *models.CourtSession) error {
	return s.createFn(ctx, session)
}
func (s *sessionRepoStub) Update(ctx context.Context, session *models.CourtSession) error {
	return s.updateFn(ctx, session)
}
func (s *sessionRepoStub) ListByCase(ctx context.Context, caseID uint) ([]models.CourtSession, error) {
	return s.listByCaseFn(ctx, caseID)
}
func (s *sessionRepoStub) ListUpcoming(ctx context.Context, limit int) ([]models.CourtSession, error) {
	return s.listUpcomingFn(ctx, limit)
}

func noopSessionRepo() *sessionRepoStub {
	return &sessionRepoStub{
		getByIDFn: func(context.Context, uint) (*models.CourtSession, error) {
			return &models.CourtSession{}, nil
		},
		createFn:       func(context.Context, *models.CourtSession) error { return nil },
		updateFn:       func(context.Context, *models.CourtSession) error { return nil },
		listByCaseFn:   func(context.Context, uint) ([]models.CourtSession, error) { return nil, nil },
		listUpcomingFn: func(context.Context, int) ([]models.CourtSession, error) { return nil, nil },
	}
}

type lawyerRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.Lawyer, error)
	getByProfileIDFn func(context.Context, uint) (*models.Lawyer, error)
	createFn         func(context.Context, *models.Lawyer) error
	updateFn         func(context.Context, *models.Lawyer) error
	listFn           func(context.Context, int, int) ([]models.Lawyer, error)
}

func (s *lawyerRepoStub) GetByID(ctx context.Context, id uint) (*models.Lawyer, error) {
	return s.getByIDFn(ctx, id)
}
func (s *lawyerRepoStub) GetByProfileID(ctx context.Context, profileID uint) (*models.Lawyer, error) {
	return s.getByProfileIDFn(ctx, profileID)
}
func (s *lawyerRepoStub) Create(ctx context.Context, lawyer *models.Lawyer) error {
	return s.createFn(ctx, lawyer)
}
func (s *lawyerRepoStub) Update(ctx context.Context, lawyer *models.Lawyer) error {
	return s.updateFn(ctx, lawyer)
}
func (s *lawyerRepoStub) List(ctx context.Context, limit, offset int) ([]models.Lawyer, error) {
	return s.listFn(ctx, limit, offset)
}

func noopLawyerRepo() *lawyerRepoStub {
	return &lawyerRepoStub{
		getByIDFn:        func(context.Context, uint) (*models.Lawyer, error) { return &models.Lawyer{}, nil },
		getByProfileIDFn: func(context.Context, uint) (*models.Lawyer, error) { return nil, nil },
		createFn:         func(context.Context, *models.Lawyer) error { return nil },
		updateFn:         func(context.Context, *models.Lawyer) error { return nil },
		listFn:           func(context.Context, int, int) ([]models.Lawyer, error) { return nil, nil },
	}
}

type lawyerRequestRepoStub struct {
	getByIDFn      func(context.Context, uint) (*models.LawyerRequest, error)
	createFn       func(context.Context, *models.LawyerRequest) error
	updateFn       func(context.Context, *models.LawyerRequest) error
	listByClientFn func(context.Context, uint) ([]models.LawyerRequest, error)
	listByLawyerFn func(context.Context, uint, models.RequestStatus) ([]models.LawyerRequest, error)
}

func (s *lawyerRequestRepoStub) GetByID(ctx context.Context, id uint) (*models.LawyerRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *lawyerRequestRepoStub) Create(ctx context.Context, req *models.LawyerRequest) error {
	return s.createFn(ctx, req)
}
func (s *lawyerRequestRepoStub) Update(ctx context.Context, req *models.LawyerRequest) error {
	return s.updateFn(ctx, req)
}
func (s *lawyerRequestRepoStub) ListByClient(ctx context.Context, clientID uint) ([]models.LawyerRequest, error) {
	return s.listByClientFn(ctx, clientID)
}
func (s *lawyerRequestRepoStub) ListByLawyer(ctx context.Context, lawyerID uint, status models.RequestStatus) ([]models.LawyerRequest, error) {
	return s.listByLawyerFn(ctx, lawyerID, status)
}

func noopLawyerRequestRepo() *lawyerRequestRepoStub {
	return &lawyerRequestRepoStub{
		getByIDFn: func(context.Context, uint) (*models.LawyerRequest, error) {
			return &models.LawyerRequest{}, nil
		},
		createFn:       func(context.Context, *models.LawyerRequest) error { return nil },
		updateFn:       func(context.Context, *models.LawyerRequest) error { return nil },
		listByClientFn: func(context.Context, uint) ([]models.LawyerRequest, error) { return nil, nil },
		listByLawyerFn: func(context.Context, uint, models.RequestStatus) ([]models.LawyerRequest, error) {
			return nil, nil
		},
	}
}
