package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"mdr/config"
	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/repository"
	"mdr/internal/domain/service"
	"mdr/internal/infra/auth"
	"mdr/internal/infra/notification"
	"mdr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Tokens: &config.TokensConfig{
			SetupValidity:    24 * time.Hour,
			ReverifyValidity: 48 * time.Hour,
			ResetValidity:    time.Hour,
			DeleteValidity:   24 * time.Hour,
			AccessTokenTTL:   15 * time.Minute,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"

	return cfg
}

// manualClock is a controllable service.Clock.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock(now time.Time) *manualClock {
	return &manualClock{now: now}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *manualClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingNotifier captures dispatched links and can be told to fail.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []*entity.LinkMessage
	err  error
}

func (n *recordingNotifier) SendLink(_ context.Context, msg *entity.LinkMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)

	return nil
}

func (n *recordingNotifier) Close() error {
	return nil
}

func (n *recordingNotifier) last() *entity.LinkMessage {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.sent) == 0 {
		return nil
	}

	return n.sent[len(n.sent)-1]
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.sent)
}

// memStore is an in-memory TransactionManager. Each Execute runs serially and
// restores the previous state when fn fails.
type memStore struct {
	mu           sync.Mutex
	accounts     map[uuid.UUID]*entity.Account
	patients     map[uuid.UUID]*entity.Patient
	updateLogs   []*entity.ProfileUpdateLog
	deletionLogs []*entity.AccountDeletionLog
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[uuid.UUID]*entity.Account),
		patients: make(map[uuid.UUID]*entity.Patient),
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	if err := fn(&memFactory{store: s}); err != nil {
		s.restore(snapshot)

		return err
	}

	return nil
}

type memSnapshot struct {
	accounts     map[uuid.UUID]*entity.Account
	patients     map[uuid.UUID]*entity.Patient
	updateLogs   int
	deletionLogs int
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		accounts:     make(map[uuid.UUID]*entity.Account, len(s.accounts)),
		patients:     make(map[uuid.UUID]*entity.Patient, len(s.patients)),
		updateLogs:   len(s.updateLogs),
		deletionLogs: len(s.deletionLogs),
	}
	for id, account := range s.accounts {
		snap.accounts[id] = cloneAccount(account)
	}
	for id, patient := range s.patients {
		snap.patients[id] = clonePatient(patient)
	}

	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.accounts = snap.accounts
	s.patients = snap.patients
	s.updateLogs = s.updateLogs[:snap.updateLogs]
	s.deletionLogs = s.deletionLogs[:snap.deletionLogs]
}

func (s *memStore) addPatient(patient *entity.Patient) *entity.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	s.patients[patient.ID] = clonePatient(patient)

	return patient
}

func (s *memStore) account(id uuid.UUID) (*entity.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, false
	}

	return cloneAccount(account), true
}

func (s *memStore) accountByEmail(email string) (*entity.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return cloneAccount(account), true
		}
	}

	return nil, false
}

func (s *memStore) patient(id uuid.UUID) (*entity.Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patient, ok := s.patients[id]
	if !ok {
		return nil, false
	}

	return clonePatient(patient), true
}

// mutateAccount edits a stored account outside any lifecycle operation.
func (s *memStore) mutateAccount(id uuid.UUID, fn func(*entity.Account)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.accounts[id])
}

func (s *memStore) accountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.accounts)
}

func (s *memStore) deletionLogCount(accountID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, entry := range s.deletionLogs {
		if entry.AccountID == accountID {
			count++
		}
	}

	return count
}

func (s *memStore) profileUpdateLogs() []*entity.ProfileUpdateLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.ProfileUpdateLog(nil), s.updateLogs...)
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) AccountRepo() repository.AccountRepository {
	return &memAccountRepo{store: f.store}
}

func (f *memFactory) PatientRepo() repository.PatientRepository {
	return &memPatientRepo{store: f.store}
}

func (f *memFactory) AuditLogRepo() repository.AuditLogRepository {
	return &memAuditRepo{store: f.store}
}

type memAccountRepo struct {
	store *memStore
}

func (r *memAccountRepo) load(account *entity.Account) *entity.Account {
	loaded := cloneAccount(account)
	if account.PatientID != nil {
		if patient, ok := r.store.patients[*account.PatientID]; ok {
			loaded.Patient = clonePatient(patient)
		}
	}

	return loaded
}

func (r *memAccountRepo) find(match func(*entity.Account) bool) (*entity.Account, error) {
	for _, account := range r.store.accounts {
		if match(account) {
			return r.load(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.find(func(a *entity.Account) bool { return a.ID == id })
}

func (r *memAccountRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	return r.find(func(a *entity.Account) bool { return a.Username == username })
}

func (r *memAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	return r.find(func(a *entity.Account) bool { return a.Email == email })
}

func (r *memAccountRepo) FindByPatientID(_ context.Context, patientID uuid.UUID) (*entity.Account, error) {
	return r.find(func(a *entity.Account) bool { return a.PatientID != nil && *a.PatientID == patientID })
}

func (r *memAccountRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.FindByID(ctx, id)
}

func (r *memAccountRepo) FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error) {
	return r.FindByEmail(ctx, email)
}

func (r *memAccountRepo) List(_ context.Context) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		accounts = append(accounts, r.load(account))
	}

	return accounts, nil
}

func (r *memAccountRepo) checkUnique(account *entity.Account) error {
	for _, existing := range r.store.accounts {
		if existing.ID == account.ID {
			continue
		}
		if existing.Username == account.Username {
			return domainerrors.ErrUsernameInUse
		}
		if existing.Email == account.Email {
			return domainerrors.ErrEmailInUse
		}
		if existing.PatientID != nil && account.PatientID != nil && *existing.PatientID == *account.PatientID {
			return domainerrors.ErrPatientProfileLinked
		}
	}

	return nil
}

func (r *memAccountRepo) Create(_ context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if err := r.checkUnique(account); err != nil {
		return err
	}
	r.store.accounts[account.ID] = cloneAccount(account)

	return nil
}

func (r *memAccountRepo) Update(_ context.Context, account *entity.Account) error {
	if _, ok := r.store.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	if err := r.checkUnique(account); err != nil {
		return err
	}
	r.store.accounts[account.ID] = cloneAccount(account)

	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.store.accounts, id)

	return nil
}

type memPatientRepo struct {
	store *memStore
}

func (r *memPatientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, ok := r.store.patients[id]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}

	return clonePatient(patient), nil
}

func (r *memPatientRepo) FindByEmail(_ context.Context, email string) (*entity.Patient, error) {
	for _, patient := range r.store.patients {
		if patient.Email == email {
			return clonePatient(patient), nil
		}
	}

	return nil, repository.ErrPatientNotFound
}

func (r *memPatientRepo) Update(_ context.Context, patient *entity.Patient) error {
	if _, ok := r.store.patients[patient.ID]; !ok {
		return repository.ErrPatientNotFound
	}
	r.store.patients[patient.ID] = clonePatient(patient)

	return nil
}

type memAuditRepo struct {
	store *memStore
}

func (r *memAuditRepo) RecordProfileUpdate(_ context.Context, log *entity.ProfileUpdateLog) error {
	entry := *log
	entry.ChangedFields = append([]string(nil), log.ChangedFields...)
	r.store.updateLogs = append(r.store.updateLogs, &entry)

	return nil
}

func (r *memAuditRepo) RecordAccountDeletion(_ context.Context, log *entity.AccountDeletionLog) error {
	entry := *log
	r.store.deletionLogs = append(r.store.deletionLogs, &entry)

	return nil
}

func cloneAccount(account *entity.Account) *entity.Account {
	cloned := *account
	cloned.VerifyToken = cloneToken(account.VerifyToken)
	cloned.ResetToken = cloneToken(account.ResetToken)
	cloned.DeleteToken = cloneToken(account.DeleteToken)
	cloned.Patient = nil
	if account.PatientID != nil {
		patientID := *account.PatientID
		cloned.PatientID = &patientID
	}

	return &cloned
}

func cloneToken(token *entity.PendingToken) *entity.PendingToken {
	if token == nil {
		return nil
	}
	cloned := *token

	return &cloned
}

func clonePatient(patient *entity.Patient) *entity.Patient {
	cloned := *patient
	cloned.Allergies = append([]string(nil), patient.Allergies...)
	cloned.AppointmentHistory = append([]string(nil), patient.AppointmentHistory...)

	return &cloned
}

// lifecycleFixture wires the account and profile services to the in-memory
// store, the real token policy and bcrypt hasher, and a recording notifier.
type lifecycleFixture struct {
	accounts usecase.AccountUsecase
	profiles usecase.ProfileUsecase
	store    *memStore
	clock    *manualClock
	notifier *recordingNotifier
	hasher   service.PasswordHasher
}

var fixtureStart = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	cfg := newTestConfig()
	clock := newManualClock(fixtureStart)
	store := newMemStore()
	notifier := &recordingNotifier{}
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost, nil)
	tokenPolicy := auth.NewTokenPolicy(clock)
	links := notification.NewLinkBuilder(cfg)

	tokenService, err := auth.NewJWTService(cfg, clock)
	if err != nil {
		t.Fatalf("failed to build token service: %v", err)
	}

	accounts := NewAccountService(AccountServiceParams{
		TxManager:    store,
		Hasher:       hasher,
		Generator:    auth.NewPasswordGenerator(cfg),
		TokenPolicy:  tokenPolicy,
		TokenService: tokenService,
		Notifier:     notifier,
		Links:        links,
		Clock:        clock,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
	profiles := NewProfileService(ProfileServiceParams{
		TxManager:   store,
		TokenPolicy: tokenPolicy,
		Notifier:    notifier,
		Links:       links,
		Clock:       clock,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return &lifecycleFixture{
		accounts: accounts,
		profiles: profiles,
		store:    store,
		clock:    clock,
		notifier: notifier,
		hasher:   hasher,
	}
}

func (f *lifecycleFixture) provision(t *testing.T, username, email string, role entity.Role) *entity.Account {
	t.Helper()

	account, err := f.accounts.ProvisionAccount(context.Background(), &usecase.ProvisionAccountInput{
		Username:    username,
		Email:       email,
		PhoneNumber: "+351910000000",
		Role:        role,
	})
	if err != nil {
		t.Fatalf("provision %s: %v", username, err)
	}

	return account
}

func (f *lifecycleFixture) registerPatient(t *testing.T, username, email, password string) *entity.Account {
	t.Helper()

	f.store.addPatient(&entity.Patient{
		FirstName:           "Ana",
		LastName:            "Silva",
		MedicalRecordNumber: "MRN-" + username,
		Email:               email,
	})

	account, err := f.accounts.RegisterPatient(context.Background(), &usecase.RegisterPatientInput{
		Username:    username,
		Email:       email,
		PhoneNumber: "+351920000000",
		Password:    password,
	})
	if err != nil {
		t.Fatalf("register patient %s: %v", username, err)
	}

	return account
}

// storedToken returns the token currently stored for purpose on the account.
func (f *lifecycleFixture) storedToken(t *testing.T, accountID uuid.UUID, purpose entity.TokenPurpose) *entity.PendingToken {
	t.Helper()

	account, ok := f.store.account(accountID)
	if !ok {
		t.Fatalf("account %s not stored", accountID)
	}

	return account.Token(purpose)
}

var errDispatch = errors.New("smtp unavailable")
