package impl

import (
	"context"
	"log/slog"
	"time"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/repository"
	"ayra/internal/domain/service"
	"ayra/internal/errors"
	"ayra/internal/usecase"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// seedSentinelEmail marks an already seeded database.
const seedSentinelEmail = "joao@example.com"

type seedSite struct {
	latitude, longitude float64
	daysAgo             int

	markerTitle, markerDescription string
	intensity                      string
	radius                         float64

	alertTitle, alertDescription string
	alertHoursAgo                int
	place                        string

	route, shelter, tip string
}

// seedSites are five points in and around São Paulo, each with a marker, an
// alert and one safe route, location and tip.
//
//nolint:gochecknoglobals
var seedSites = []seedSite{
	{
		latitude: -23.5505, longitude: -46.6333, daysAgo: 1,
		markerTitle:       "Inundação no Centro",
		markerDescription: "Água acumulada nas ruas do centro após chuvas fortes.",
		intensity:         entity.IntensityHigh, radius: 99.99,
		alertTitle:       "Inundação Severa no Centro",
		alertDescription: "Inundação severa próxima ao rio Tietê com risco para moradores no centro de São Paulo.",
		alertHoursAgo:    2, place: "Centro de São Paulo",
		route:   "Rua Direita -> Avenida Paulista -> Praça da Sé",
		shelter: "Praça da Sé",
		tip:     "Evite áreas próximas ao rio Tietê em dias de chuva forte.",
	},
	{
		latitude: -23.4800, longitude: -46.6300, daysAgo: 0,
		markerTitle:       "Alagamento em Santana",
		markerDescription: "Alagamento em vias secundárias de Santana após chuvas intensas.",
		intensity:         entity.IntensityMedium, radius: 80.0,
		alertTitle:       "Alagamento em Santana",
		alertDescription: "Alagamento em vias secundárias de Santana após chuvas intensas.",
		alertHoursAgo:    5, place: "Santana, São Paulo",
		route:   "Avenida Braz Leme -> Rua Voluntários da Pátria",
		shelter: "Parque da Juventude",
		tip:     "Não dirija por vias alagadas após chuvas intensas.",
	},
	{
		latitude: -23.6000, longitude: -46.6700, daysAgo: 2,
		markerTitle:       "Erosão em Moema",
		markerDescription: "Erosão severa em área urbana de Moema próxima a córregos.",
		intensity:         entity.IntensityHigh, radius: 70.0,
		alertTitle:       "Erosão Urbana em Moema",
		alertDescription: "Erosão severa em área urbana de Moema próxima a córregos.",
		alertHoursAgo:    10, place: "Moema, São Paulo",
		route:   "Avenida Ibirapuera -> Rua dos Otonis",
		shelter: "Parque Ibirapuera",
		tip:     "Mantenha-se longe de córregos e áreas com erosão visível.",
	},
	{
		latitude: -23.5100, longitude: -46.8800, daysAgo: 3,
		markerTitle:       "Inundação Leve em Barueri",
		markerDescription: "Água acumulada em áreas baixas de Barueri após chuvas fortes.",
		intensity:         entity.IntensityLow, radius: 50.0,
		alertTitle:       "Inundação Leve em Barueri",
		alertDescription: "Água acumulada em áreas baixas de Barueri após chuvas fortes.",
		alertHoursAgo:    15, place: "Barueri, São Paulo",
		route:   "Rodovia Castelo Branco -> Alphaville",
		shelter: "Alphaville Tênis Clube",
		tip:     "Use rotas alternativas em caso de alagamentos.",
	},
	{
		latitude: -23.4600, longitude: -46.5300, daysAgo: 4,
		markerTitle:       "Área Segura em Guarulhos",
		markerDescription: "Abrigo seguro localizado em Guarulhos.",
		intensity:         entity.IntensityLow, radius: 30.0,
		alertTitle:       "Área Segura em Guarulhos",
		alertDescription: "Abrigo seguro localizado em Guarulhos.",
		alertHoursAgo:    20, place: "Guarulhos, São Paulo",
		route:   "Rodovia Presidente Dutra -> Centro de Guarulhos",
		shelter: "Prefeitura de Guarulhos",
		tip:     "Procure abrigos designados em emergências.",
	},
}

type seedUser struct {
	name, email, password, phone string
	site                         int
}

//nolint:gochecknoglobals
var seedUsers = []seedUser{
	{name: "João Silva", email: seedSentinelEmail, password: "senha123", phone: "11999999999", site: 0},
	{name: "Maria Souza", email: "maria@example.com", password: "senha456", phone: "11888888888", site: 1},
}

// seeder implements usecase.Seeder.
type seeder struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	clock     clockwork.Clock
	logger    *slog.Logger
}

// SeederParams holds dependencies for the seeder, injected by Fx.
type SeederParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// NewSeeder is the constructor for seeder.
func NewSeeder(params SeederParams) usecase.Seeder {
	clock := params.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &seeder{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		clock:     clock,
		logger:    params.Logger,
	}
}

// Seed writes the sample data set in one transaction unless it is already present.
func (s *seeder) Seed(ctx context.Context) (bool, error) {
	passwordHashes := make([]string, len(seedUsers))
	for i, user := range seedUsers {
		hash, err := s.hasher.Hash(user.password)
		if err != nil {
			return false, errors.Wrap(err, "failed to hash seed password")
		}
		passwordHashes[i] = hash
	}

	now := s.clock.Now()
	seeded := false

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.UserRepo().FindByEmail(ctx, seedSentinelEmail)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check seed state")
		}

		coordinates := make([]*entity.Coordinate, len(seedSites))
		for i, site := range seedSites {
			coordinate, err := s.seedSite(ctx, repoFactory, site, now)
			if err != nil {
				return err
			}
			coordinates[i] = coordinate
		}

		for i, user := range seedUsers {
			coordinate := coordinates[user.site]
			if err := repoFactory.UserRepo().Create(ctx, &entity.User{
				Name:         user.name,
				Email:        user.email,
				PasswordHash: passwordHashes[i],
				Phone:        user.phone,
				CoordinateID: &coordinate.ID,
			}); err != nil {
				return errors.Wrapf(err, "failed to seed user %s", user.email)
			}
		}
		seeded = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute seed transaction")
	}

	if seeded {
		s.logger.Info("Database seeded with sample data",
			slog.Int("sites", len(seedSites)),
			slog.Int("users", len(seedUsers)),
		)
	} else {
		s.logger.Info("Seed data already present, skipping")
	}

	return seeded, nil
}

func (s *seeder) seedSite(ctx context.Context, repoFactory repository.RepositoryFactory, site seedSite, now time.Time) (*entity.Coordinate, error) {
	coordinate := &entity.Coordinate{
		Latitude:  site.latitude,
		Longitude: site.longitude,
		Date:      calendarDate(now.AddDate(0, 0, -site.daysAgo)),
	}
	if err := repoFactory.CoordinateRepo().Create(ctx, coordinate); err != nil {
		return nil, errors.Wrap(err, "failed to seed coordinate")
	}

	marker := &entity.MapMarker{
		Title:        site.markerTitle,
		Description:  site.markerDescription,
		Intensity:    site.intensity,
		Radius:       site.radius,
		CoordinateID: coordinate.ID,
	}
	if err := repoFactory.MapMarkerRepo().Create(ctx, marker); err != nil {
		return nil, errors.Wrap(err, "failed to seed map marker")
	}

	alert := &entity.Alert{
		Title:         site.alertTitle,
		Description:   site.alertDescription,
		Intensity:     site.intensity,
		AlertDatetime: now.Add(-time.Duration(site.alertHoursAgo) * time.Hour),
		Location:      site.place,
		Radius:        site.radius,
		CoordinateID:  coordinate.ID,
		MapMarkerID:   &marker.ID,
	}
	if err := repoFactory.AlertRepo().Create(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to seed alert")
	}

	safetyRepo := repoFactory.SafetyRepo()
	if err := safetyRepo.CreateRoute(ctx, &entity.SafeRoute{AlertID: alert.ID, Route: site.route}); err != nil {
		return nil, errors.Wrap(err, "failed to seed safe route")
	}
	if err := safetyRepo.CreateLocation(ctx, &entity.SafeLocation{AlertID: alert.ID, Location: site.shelter}); err != nil {
		return nil, errors.Wrap(err, "failed to seed safe location")
	}
	if err := safetyRepo.CreateTip(ctx, &entity.SafeTip{AlertID: alert.ID, Tip: site.tip}); err != nil {
		return nil, errors.Wrap(err, "failed to seed safe tip")
	}

	return coordinate, nil
}
