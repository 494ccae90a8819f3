package prefabs

import (
	"log"
	"path/filepath"
	"sync"
)

const combatFile = "combat.yaml"

// Tuning holds the current combat spec and can reload it from disk when a
// Watcher reports an edit. Readers take a copy, so a reload only affects
// sessions created afterwards.
type Tuning struct {
	mu      sync.RWMutex
	combat  CombatSpec
	watcher *Watcher
	wg      sync.WaitGroup
}

func NewTuning() (*Tuning, error) {
	t := &Tuning{}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Combat returns a copy of the current combat spec.
func (t *Tuning) Combat() CombatSpec {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.combat
}

// Reload re-reads combat.yaml. On error the previous spec is kept.
func (t *Tuning) Reload() error {
	spec, err := LoadSpec[CombatSpec](combatFile)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.combat = spec
	t.mu.Unlock()
	return nil
}

// Watch starts reloading whenever combat.yaml changes under dirs.
func (t *Tuning) Watch(dirs ...string) error {
	w, err := NewWatcher(dirs...)
	if err != nil {
		return err
	}
	t.watcher = w
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(name) != combatFile {
					continue
				}
				if err := t.Reload(); err != nil {
					log.Printf("prefabs: reload %s: %v", combatFile, err)
					continue
				}
				log.Printf("prefabs: reloaded %s", combatFile)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("prefabs: watch: %v", err)
			}
		}
	}()
	return nil
}

func (t *Tuning) Close() error {
	if t.watcher == nil {
		return nil
	}
	err := t.watcher.Close()
	t.wg.Wait()
	return err
}
