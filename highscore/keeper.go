package highscore

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

const DefaultKey = "highScore"

// Keeper exposes one key of a Store as a session high score.
type Keeper struct {
	mu    sync.Mutex
	store Store
	key   string
}

func NewKeeper(store Store, key string) *Keeper {
	if key == "" {
		key = DefaultKey
	}
	return &Keeper{store: store, key: key}
}

// HighScore reads the stored value; unreadable storage counts as no record.
func (k *Keeper) HighScore() int {
	v, ok, err := k.store.Get(k.key)
	if err != nil {
		log.Warnf("highscore: read %q: %v", k.key, err)
		return 0
	}
	if !ok {
		return 0
	}
	return v
}

// SaveHighScore writes only when score beats what is stored, so sessions
// sharing a keeper cannot lower the record.
func (k *Keeper) SaveHighScore(score int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if current := k.HighScore(); current >= score {
		log.Infof("highscore: %d not above stored %d", score, current)
		return
	}
	if err := k.store.Set(k.key, score); err != nil {
		log.Errorf("highscore: write %q=%d: %v", k.key, score, err)
		return
	}
	log.Infof("highscore: new record %d", score)
}
