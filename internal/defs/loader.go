// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadEnemyDefinitions reads an enemy configuration file and merges it into
// EnemyLibrary. Types missing from the file keep their built-in values.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := DefaultEnemies()
	for _, def := range enemyDefs {
		if _, ok := library[def.ID]; !ok {
			return fmt.Errorf("unknown enemy type %q in %s", def.ID, path)
		}
		if def.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be positive", def.ID)
		}
		library[def.ID] = def
	}
	EnemyLibrary = library

	log.Printf("Loaded %d enemy definitions from %s", len(enemyDefs), path)
	return nil
}
