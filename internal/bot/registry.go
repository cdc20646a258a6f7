package bot

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered bot.
type Info struct {
	ID          string
	Description string
}

// Factory is a function that creates a new instance of a bot. Bots
// without randomness ignore the seed; for the rest, 0 means time-based.
type Factory func(seed int64) Bot

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a bot factory to the registry. Typically called from a
// bot's init() function. Panics if the id is already taken.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("bot: %q already registered", id))
	}

	factories[id] = f
	descriptions[id] = description
}

// List returns information about all registered bots, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new bot by its ID.
func Create(id string, seed int64) (Bot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("bot: unknown bot %q", id)
	}

	return f(seed), nil
}

// Exists checks if a bot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
