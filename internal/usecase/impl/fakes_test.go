package impl

import (
	"context"
	"log/slog"
	"sync"

	"saathi/internal/domain/entity"
	domainerrors "saathi/internal/domain/errors"
	"saathi/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Hand-written in-memory fakes. The repository contract is simple enough that
// fakes stay honest and keep the tests free of a mocking framework.

type fakeFarmerRepo struct {
	mu      sync.Mutex
	farmers map[string]*entity.Farmer
	hashes  map[string]string

	createErr error
	updateErr error
}

func newFakeFarmerRepo() *fakeFarmerRepo {
	return &fakeFarmerRepo{
		farmers: make(map[string]*entity.Farmer),
		hashes:  make(map[string]string),
	}
}

func (r *fakeFarmerRepo) FindByUsername(_ context.Context, username string) (*entity.Farmer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	farmer, ok := r.farmers[username]
	if !ok {
		return nil, repository.ErrFarmerNotFound
	}
	copied := *farmer

	return &copied, nil
}

func (r *fakeFarmerRepo) FindCredential(_ context.Context, username string) (*entity.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hash, ok := r.hashes[username]
	if !ok {
		return nil, repository.ErrFarmerNotFound
	}

	return &entity.Credential{Username: username, PasswordHash: hash}, nil
}

func (r *fakeFarmerRepo) Create(_ context.Context, farmer *entity.Farmer, passwordHash string) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.farmers[farmer.Username]; exists {
		return domainerrors.ErrDuplicateUsername
	}
	copied := *farmer
	r.farmers[farmer.Username] = &copied
	r.hashes[farmer.Username] = passwordHash

	return nil
}

func (r *fakeFarmerRepo) UpdateProfile(_ context.Context, username string, profile entity.FarmerProfile) error {
	if r.updateErr != nil {
		return r.updateErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	farmer, ok := r.farmers[username]
	if !ok {
		return repository.ErrFarmerNotFound
	}
	farmer.Profile = profile

	return nil
}

func (r *fakeFarmerRepo) List(_ context.Context) ([]*entity.Farmer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Farmer, 0, len(r.farmers))
	for _, farmer := range r.farmers {
		copied := *farmer
		out = append(out, &copied)
	}

	return out, nil
}

type fakeSessionRepo struct {
	mu        sync.Mutex
	principal *entity.Principal

	saveErr error
}

func (r *fakeSessionRepo) Load(_ context.Context) (*entity.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.principal == nil {
		return nil, repository.ErrSessionNotFound
	}
	copied := *r.principal

	return &copied, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, principal *entity.Principal) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *principal
	r.principal = &copied

	return nil
}

func (r *fakeSessionRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.principal = nil

	return nil
}

// fakeTxManager runs the function against the live fakes. When fn fails its
// writes are rolled back by restoring snapshots taken before it ran.
type fakeTxManager struct {
	farmerRepo  *fakeFarmerRepo
	sessionRepo *fakeSessionRepo
}

type fakeRepoFactory struct {
	farmerRepo  *fakeFarmerRepo
	sessionRepo *fakeSessionRepo
}

func (f *fakeRepoFactory) FarmerRepo() repository.FarmerRepository {
	return f.farmerRepo
}

func (f *fakeRepoFactory) SessionRepo() repository.SessionRepository {
	return f.sessionRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(txRepos repository.RepositoryFactory) error) error {
	priorFarmers := make(map[string]entity.Farmer, len(m.farmerRepo.farmers))
	for username, farmer := range m.farmerRepo.farmers {
		priorFarmers[username] = *farmer
	}
	var priorSession *entity.Principal
	if m.sessionRepo.principal != nil {
		copied := *m.sessionRepo.principal
		priorSession = &copied
	}

	err := fn(&fakeRepoFactory{farmerRepo: m.farmerRepo, sessionRepo: m.sessionRepo})
	if err != nil {
		for username, farmer := range priorFarmers {
			copied := farmer
			m.farmerRepo.farmers[username] = &copied
		}
		m.sessionRepo.principal = priorSession

		return err
	}

	return nil
}

// fakeHasher stores passwords with a marker prefix; good enough to verify the
// usecase never compares plaintext against plaintext.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(username string, role entity.Role) (string, error) {
	return "token-" + username + "-" + string(role), nil
}

func (fakeTokenService) ValidateToken(string) (*jwt.Token, error) {
	return &jwt.Token{Valid: true}, nil
}

type fakePrefRepo struct {
	mu   sync.Mutex
	lang entity.Language

	saveErr error
}

func (r *fakePrefRepo) Language(_ context.Context) (entity.Language, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lang == "" {
		return "", repository.ErrPreferenceNotFound
	}

	return r.lang, nil
}

func (r *fakePrefRepo) SaveLanguage(_ context.Context, lang entity.Language) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lang = lang

	return nil
}

// fakeSensor scripts the raw sensor boundary.
type fakeSensor struct {
	mu       sync.Mutex
	snapshot entity.SensorSnapshot
	readErr  error
	pumpErr  error
	reads    int
	pumpSets []entity.PumpState
}

func (s *fakeSensor) Read(_ context.Context) (*entity.SensorSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	copied := s.snapshot

	return &copied, nil
}

func (s *fakeSensor) SetPump(_ context.Context, state entity.PumpState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pumpSets = append(s.pumpSets, state)
	if s.pumpErr != nil {
		return s.pumpErr
	}
	s.snapshot.Pump = state

	return nil
}

func (s *fakeSensor) History(_ context.Context, _ string) ([]entity.TimestampedReading, error) {
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
