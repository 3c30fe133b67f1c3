package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/fplboard/internal/models"
)

// Repository is the session context: it owns the team and player indexes for
// the lifetime of the process. Indexes are written once after the bootstrap
// fetch resolves and are read by every feature.
type Repository struct {
	teams       map[int]models.Team
	players     map[int]models.Player
	lastUpdated time.Time
	mu          sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveIndexes(teams map[int]models.Team, players map[int]models.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = teams
	r.players = players
	r.lastUpdated = time.Now()
}

// Teams returns the team index, or an empty map when it is not populated yet.
func (r *Repository) Teams() map[int]models.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.teams == nil {
		return map[int]models.Team{}
	}
	return r.teams
}

func (r *Repository) Players() map[int]models.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.players == nil {
		return map[int]models.Player{}
	}
	return r.players
}

func (r *Repository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.lastUpdated.IsZero()
}
