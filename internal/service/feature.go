package service

import (
	"context"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

// GroceryGenerationFlag gates grocery-list generation on assignment.
const GroceryGenerationFlag = "grocery_generation"

const featureKeyPrefix = "feature:"

// FeatureService reads runtime feature toggles from Redis. Values are
// read fresh on every check; when Redis has no value (or is unreachable)
// the configured default applies.
type FeatureService struct {
	client   *redis.Client
	defaults map[string]bool
}

// NewFeatureService creates a new FeatureService instance
func NewFeatureService(client *redis.Client, defaults map[string]bool) *FeatureService {
	if defaults == nil {
		defaults = make(map[string]bool)
	}
	return &FeatureService{client: client, defaults: defaults}
}

// IsEnabled reports whether a feature toggle is on right now.
func (s *FeatureService) IsEnabled(ctx context.Context, name string) bool {
	if s.client != nil {
		val, err := s.client.Get(ctx, featureKeyPrefix+name).Result()
		switch {
		case err == nil:
			switch strings.ToLower(strings.TrimSpace(val)) {
			case "true", "1", "on":
				return true
			case "false", "0", "off":
				return false
			}
			log.Printf("feature %s: unrecognized value %q, using default", name, val)
		case err != redis.Nil:
			log.Printf("feature %s: redis read failed, using default: %v", name, err)
		}
	}
	return s.defaults[name]
}

// SetEnabled stores a toggle value so later checks observe it.
func (s *FeatureService) SetEnabled(ctx context.Context, name string, enabled bool) error {
	if s.client == nil {
		s.defaults[name] = enabled
		return nil
	}
	val := "false"
	if enabled {
		val = "true"
	}
	return s.client.Set(ctx, featureKeyPrefix+name, val, 0).Err()
}
