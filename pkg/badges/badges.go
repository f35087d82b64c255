// Package badges holds the static milestone catalog. The catalog is
// immutable configuration: loaded once at startup, never mutated.
package badges

import (
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

type Type string

const (
	TypePoints              Type = "points"
	TypeTasksCompleted      Type = "tasks_completed"
	TypeEarlyTask           Type = "early_task"
	TypeLevel               Type = "level"
	TypeChallengesCompleted Type = "challenges_completed"
)

type Badge struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	Milestone   int    `json:"milestone"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Load reads the badge catalog from a JSON file.
func Load(path string) ([]Badge, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading badge catalog error: " + err.Error())
	}
	var catalog []Badge
	if err = sonic.Unmarshal(raw, &catalog); err != nil {
		return nil, errors.New("parsing badge catalog error: " + err.Error())
	}
	seen := make(map[string]struct{}, len(catalog))
	for _, b := range catalog {
		if b.ID == "" {
			return nil, errors.New("badge catalog entry without id")
		}
		if _, ok := seen[b.ID]; ok {
			return nil, fmt.Errorf("duplicated badge id %q in catalog", b.ID)
		}
		seen[b.ID] = struct{}{}
		switch b.Type {
		case TypePoints, TypeTasksCompleted, TypeEarlyTask, TypeLevel, TypeChallengesCompleted:
		default:
			return nil, fmt.Errorf("badge %q has unknown type %q", b.ID, b.Type)
		}
	}
	return catalog, nil
}
