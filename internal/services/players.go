package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/database"
)

// PlayerStore persists the default draft board and serves it to the
// boundary layer. The scoring engine itself never touches storage.
type PlayerStore struct {
	db  *database.DB
	log *logrus.Logger
}

func NewPlayerStore(db *database.DB, log *logrus.Logger) *PlayerStore {
	return &PlayerStore{db: db, log: log}
}

// Migrate creates the players table.
func (s *PlayerStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.Player{}); err != nil {
		return fmt.Errorf("migrating players table: %w", err)
	}
	return nil
}

// SeedDefaultBoard loads the bundled ADP board when the table is
// empty. Safe to call on every startup.
func (s *PlayerStore) SeedDefaultBoard() error {
	var count int64
	if err := s.db.Model(&models.Player{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting players: %w", err)
	}
	if count > 0 {
		s.log.WithField("players", count).Debug("Player board already seeded")
		return nil
	}

	board := DefaultBoard()
	if err := s.db.Create(&board).Error; err != nil {
		return fmt.Errorf("seeding player board: %w", err)
	}
	s.log.WithField("players", len(board)).Info("Seeded default player board")
	return nil
}

// List returns the board ordered by ADP.
func (s *PlayerStore) List() ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Order("adp asc").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	return players, nil
}

// ListByPosition returns the board filtered to one position.
func (s *PlayerStore) ListByPosition(pos models.Position) ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Where("position = ?", pos).Order("adp asc").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("listing %s players: %w", pos, err)
	}
	return players, nil
}

// DefaultBoard is the bundled consensus ADP board used when no
// external player feed is configured.
func DefaultBoard() []models.Player {
	return []models.Player{
		{Name: "Ja'Marr Chase", Position: models.PositionWR, Team: "CIN", ADP: 1, Tier: 1, ByeWeek: 10},
		{Name: "Bijan Robinson", Position: models.PositionRB, Team: "ATL", ADP: 2, Tier: 1, ByeWeek: 5},
		{Name: "Saquon Barkley", Position: models.PositionRB, Team: "PHI", ADP: 3, Tier: 1, ByeWeek: 9},
		{Name: "Justin Jefferson", Position: models.PositionWR, Team: "MIN", ADP: 4, Tier: 1, ByeWeek: 6},
		{Name: "Jahmyr Gibbs", Position: models.PositionRB, Team: "DET", ADP: 5, Tier: 1, ByeWeek: 8},
		{Name: "CeeDee Lamb", Position: models.PositionWR, Team: "DAL", ADP: 6, Tier: 1, ByeWeek: 10},
		{Name: "Christian McCaffrey", Position: models.PositionRB, Team: "SF", ADP: 7, Tier: 1, ByeWeek: 14},
		{Name: "Amon-Ra St. Brown", Position: models.PositionWR, Team: "DET", ADP: 8, Tier: 1, ByeWeek: 8},
		{Name: "Malik Nabers", Position: models.PositionWR, Team: "NYG", ADP: 9, Tier: 1, ByeWeek: 14},
		{Name: "Puka Nacua", Position: models.PositionWR, Team: "LAR", ADP: 10, Tier: 1, ByeWeek: 8},
		{Name: "Nico Collins", Position: models.PositionWR, Team: "HOU", ADP: 11, Tier: 2, ByeWeek: 6},
		{Name: "Tyreek Hill", Position: models.PositionWR, Team: "MIA", ADP: 12, Tier: 2, ByeWeek: 12},
		{Name: "A.J. Brown", Position: models.PositionWR, Team: "PHI", ADP: 13, Tier: 2, ByeWeek: 9},
		{Name: "Drake London", Position: models.PositionWR, Team: "ATL", ADP: 14, Tier: 2, ByeWeek: 5},
		{Name: "Ashton Jeanty", Position: models.PositionRB, Team: "LV", ADP: 15, Tier: 2, ByeWeek: 8},
		{Name: "Derrick Henry", Position: models.PositionRB, Team: "BAL", ADP: 16, Tier: 2, ByeWeek: 7},
		{Name: "De'Von Achane", Position: models.PositionRB, Team: "MIA", ADP: 17, Tier: 2, ByeWeek: 12},
		{Name: "Brian Thomas Jr.", Position: models.PositionWR, Team: "JAX", ADP: 18, Tier: 2, ByeWeek: 8},
		{Name: "Jonathan Taylor", Position: models.PositionRB, Team: "IND", ADP: 19, Tier: 2, ByeWeek: 11},
		{Name: "Josh Jacobs", Position: models.PositionRB, Team: "GB", ADP: 20, Tier: 2, ByeWeek: 5},
		{Name: "Brock Bowers", Position: models.PositionTE, Team: "LV", ADP: 21, Tier: 2, ByeWeek: 8},
		{Name: "Trey McBride", Position: models.PositionTE, Team: "ARI", ADP: 22, Tier: 2, ByeWeek: 8},
		{Name: "Kyren Williams", Position: models.PositionRB, Team: "LAR", ADP: 23, Tier: 3, ByeWeek: 8},
		{Name: "James Cook", Position: models.PositionRB, Team: "BUF", ADP: 24, Tier: 3, ByeWeek: 7},
		{Name: "Tee Higgins", Position: models.PositionWR, Team: "CIN", ADP: 25, Tier: 3, ByeWeek: 10},
		{Name: "Jaxon Smith-Njigba", Position: models.PositionWR, Team: "SEA", ADP: 26, Tier: 3, ByeWeek: 8},
		{Name: "Mike Evans", Position: models.PositionWR, Team: "TB", ADP: 27, Tier: 3, ByeWeek: 9},
		{Name: "Terry McLaurin", Position: models.PositionWR, Team: "WSH", ADP: 28, Tier: 3, ByeWeek: 12},
		{Name: "Davante Adams", Position: models.PositionWR, Team: "LAR", ADP: 29, Tier: 3, ByeWeek: 8},
		{Name: "DK Metcalf", Position: models.PositionWR, Team: "PIT", ADP: 30, Tier: 3, ByeWeek: 5},
		{Name: "Isiah Pacheco", Position: models.PositionRB, Team: "KC", ADP: 41, Tier: 3, ByeWeek: 10},
		{Name: "Kenneth Walker III", Position: models.PositionRB, Team: "SEA", ADP: 42, Tier: 3, ByeWeek: 8},
		{Name: "David Montgomery", Position: models.PositionRB, Team: "DET", ADP: 43, Tier: 3, ByeWeek: 8},
		{Name: "Alvin Kamara", Position: models.PositionRB, Team: "NO", ADP: 44, Tier: 3, ByeWeek: 11},
		{Name: "Breece Hall", Position: models.PositionRB, Team: "NYJ", ADP: 45, Tier: 3, ByeWeek: 9},
		{Name: "James Conner", Position: models.PositionRB, Team: "ARI", ADP: 51, Tier: 4, ByeWeek: 8},
		{Name: "Aaron Jones", Position: models.PositionRB, Team: "MIN", ADP: 52, Tier: 4, ByeWeek: 6},
		{Name: "Khalil Shakir", Position: models.PositionWR, Team: "BUF", ADP: 57, Tier: 4, ByeWeek: 7},
		{Name: "Jordan Addison", Position: models.PositionWR, Team: "MIN", ADP: 60, Tier: 4, ByeWeek: 6},
		{Name: "Jaylen Warren", Position: models.PositionRB, Team: "PIT", ADP: 101, Tier: 5, ByeWeek: 5},
		{Name: "Tyjae Spears", Position: models.PositionRB, Team: "TEN", ADP: 105, Tier: 5, ByeWeek: 10},
		{Name: "Josh Allen", Position: models.PositionQB, Team: "BUF", ADP: 118, Tier: 5, ByeWeek: 7},
		{Name: "Lamar Jackson", Position: models.PositionQB, Team: "BAL", ADP: 119, Tier: 5, ByeWeek: 7},
		{Name: "Jalen Hurts", Position: models.PositionQB, Team: "PHI", ADP: 120, Tier: 5, ByeWeek: 9},
		{Name: "Patrick Mahomes", Position: models.PositionQB, Team: "KC", ADP: 121, Tier: 6, ByeWeek: 10},
		{Name: "Joe Burrow", Position: models.PositionQB, Team: "CIN", ADP: 122, Tier: 6, ByeWeek: 10},
		{Name: "C.J. Stroud", Position: models.PositionQB, Team: "HOU", ADP: 123, Tier: 6, ByeWeek: 6},
		{Name: "George Kittle", Position: models.PositionTE, Team: "SF", ADP: 140, Tier: 6, ByeWeek: 14},
		{Name: "Sam LaPorta", Position: models.PositionTE, Team: "DET", ADP: 141, Tier: 6, ByeWeek: 8},
		{Name: "Travis Kelce", Position: models.PositionTE, Team: "KC", ADP: 142, Tier: 6, ByeWeek: 10},
		{Name: "T.J. Hockenson", Position: models.PositionTE, Team: "MIN", ADP: 143, Tier: 6, ByeWeek: 6},
		{Name: "Brandon Aubrey", Position: models.PositionK, Team: "DAL", ADP: 170, Tier: 6, ByeWeek: 10},
		{Name: "Justin Tucker", Position: models.PositionK, Team: "BAL", ADP: 175, Tier: 6, ByeWeek: 7},
		{Name: "Cameron Dicker", Position: models.PositionK, Team: "LAC", ADP: 178, Tier: 6, ByeWeek: 12},
		{Name: "Ravens D/ST", Position: models.PositionDST, Team: "BAL", ADP: 180, Tier: 6, ByeWeek: 7},
		{Name: "Broncos D/ST", Position: models.PositionDST, Team: "DEN", ADP: 182, Tier: 6, ByeWeek: 12},
		{Name: "Eagles D/ST", Position: models.PositionDST, Team: "PHI", ADP: 185, Tier: 6, ByeWeek: 9},
	}
}
