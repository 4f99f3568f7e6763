package inmemdb

import (
	"sync"

	"github.com/gouravgowda/SeniorAI-Redesign/core/gamify"
	"github.com/gouravgowda/SeniorAI-Redesign/core/progress"
	"github.com/gouravgowda/SeniorAI-Redesign/core/resource"
	"github.com/gouravgowda/SeniorAI-Redesign/core/user"
)

// DB is an in-memory stand-in for the document store; used by tests and
// local development without postgres.
type DB struct {
	mu         sync.RWMutex
	users      map[string]*user.User
	activities []gamify.Activity
	steps      map[string][]progress.Step // ordered by Seq
	resources  []resource.Resource
}

func Open() (*DB, error) {
	return &DB{
		users: make(map[string]*user.User),
		steps: make(map[string][]progress.Step),
	}, nil
}

// Reset drops all data; test helper.
func (db *DB) Reset() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.users = make(map[string]*user.User)
	db.activities = nil
	db.steps = make(map[string][]progress.Step)
	db.resources = nil
}
