package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/streakdrawer/config"
	"github.com/automoto/streakdrawer/shared/reward"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const claimsKey = "claims"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for claim statistics
func InitPersistence() error {
	if !cfg.Persistence.Enabled {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadStats loads claim statistics from disk. Missing or unreadable data
// yields empty stats.
func LoadStats() reward.Stats {
	if !gdataInitialized || gdataManager == nil {
		return reward.Stats{}
	}

	data, err := gdataManager.LoadItem(claimsKey)
	if err != nil {
		log.Printf("Warning: Could not load claim stats: %v", err)
		return reward.Stats{}
	}
	if len(data) == 0 {
		return reward.Stats{}
	}

	var stats reward.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse saved claim stats: %v", err)
		return reward.Stats{}
	}
	return stats
}

// SaveStats saves claim statistics to disk
func SaveStats(stats reward.Stats) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("serialize claim stats: %w", err)
	}
	if err := gdataManager.SaveItem(claimsKey, data); err != nil {
		return fmt.Errorf("save claim stats: %w", err)
	}
	return nil
}

// UpdatePersistence writes the stats after a claim completed. A failed write
// is logged and retried.
func UpdatePersistence(ecs *ecs.ECS) {
	rewardData := GetReward(ecs)
	if rewardData == nil || !rewardData.Saver.Due() {
		return
	}
	err := SaveStats(rewardData.Stats)
	if err != nil {
		log.Printf("Warning: Could not save claim stats: %v", err)
	}
	rewardData.Saver.Done(err)
}
