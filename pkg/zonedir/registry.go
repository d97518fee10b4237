// Package zonedir maintains a registry of named fixed-offset zones loaded
// from YAML files, so deployments can refer to curated offsets ("IST",
// "JST") by name instead of spelling out ±HH:MM everywhere.
package zonedir

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/almanac/pkg/chrono"
)

// Entry is one zone declaration in a zone file.
type Entry struct {
	// Name identifies the zone, e.g. "IST". Case-sensitive, unique
	// within the registry.
	Name string `yaml:"name"`

	// Offset is the UTC offset in ISO form, e.g. "+05:30" or "-08:00".
	Offset string `yaml:"offset"`
}

// File is the top-level shape of a zone YAML file.
type File struct {
	Zones []Entry `yaml:"zones"`
}

// Registry holds named zones behind an RWMutex; safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	zones    map[string]*chrono.FixedZone
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onChange func(event, name string)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		zones: make(map[string]*chrono.FixedZone),
	}
}

// NewRegistryWithDirectory creates a registry and loads every zone file in
// the directory.
func NewRegistryWithDirectory(dir string) (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadDirectory(dir); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a named zone. Registering a name twice with a different
// offset is an error; re-registering the same offset is a no-op.
func (r *Registry) Register(name string, zone *chrono.FixedZone) error {
	if name == "" {
		return fmt.Errorf("zone name cannot be empty")
	}
	if zone == nil {
		return fmt.Errorf("zone cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.zones[name]; ok {
		if existing.Equal(zone) {
			return nil
		}
		return fmt.Errorf("zone %q already registered with offset %s", name, existing.Name())
	}
	r.zones[name] = zone
	return nil
}

// Unregister removes a named zone.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.zones[name]; !ok {
		return fmt.Errorf("zone %q not found", name)
	}
	delete(r.zones, name)
	return nil
}

// Get returns the zone registered under name.
func (r *Registry) Get(name string) (*chrono.FixedZone, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	zone, ok := r.zones[name]
	return zone, ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.zones))
	for name := range r.zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered zones.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.zones)
}

// LoadFile loads a single zone YAML file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	for i, entry := range f.Zones {
		zone, err := entryZone(entry)
		if err != nil {
			return fmt.Errorf("%s: zone %d: %w", filepath.Base(path), i, err)
		}
		if err := r.Register(entry.Name, zone); err != nil {
			return fmt.Errorf("%s: zone %d: %w", filepath.Base(path), i, err)
		}
	}
	return nil
}

func entryZone(entry Entry) (*chrono.FixedZone, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	offset, err := chrono.ParseOffsetISO(entry.Offset)
	if err != nil {
		return nil, fmt.Errorf("offset for %q: %w", entry.Name, err)
	}
	zone, err := chrono.NewFixedZone(offset, entry.Name)
	if err != nil {
		return nil, fmt.Errorf("offset for %q: %w", entry.Name, err)
	}
	return zone, nil
}

// LoadDirectory loads every .yaml/.yml file in the directory. A missing
// directory loads nothing.
func (r *Registry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, name)); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading zones: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// Reload clears the registry and reloads the configured directory.
func (r *Registry) Reload() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for reload")
	}

	r.mu.Lock()
	r.zones = make(map[string]*chrono.FixedZone)
	r.mu.Unlock()

	return r.LoadDirectory(r.dir)
}

// SetOnChange sets a callback invoked when a watched zone file changes.
// The name argument is the file that changed.
func (r *Registry) SetOnChange(fn func(event, name string)) {
	r.onChange = fn
}

// Watch starts watching the configured directory for zone file changes.
func (r *Registry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}
	return nil
}

// StopWatch stops the directory watcher.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
		r.stopChan = nil
	}
	if r.watcher != nil {
		r.watcher.Close()
		r.watcher = nil
	}
}

func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				r.handleFileChange(event.Name, "create")
			case event.Op&fsnotify.Write == fsnotify.Write:
				r.handleFileChange(event.Name, "modify")
			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				r.handleFileRemove(event.Name)
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient watcher error is not fatal.
		}
	}
}

func (r *Registry) handleFileChange(path, eventType string) {
	// A changed file may redefine a name with a new offset, which
	// Register would reject as a conflict with the stale entry; rebuild
	// from the directory instead of loading the one file on top.
	if err := r.Reload(); err != nil {
		return
	}
	if r.onChange != nil {
		r.onChange(eventType, filepath.Base(path))
	}
}

func (r *Registry) handleFileRemove(path string) {
	// Files do not track which zones they defined, so rebuild from the
	// directory.
	if err := r.Reload(); err != nil {
		return
	}
	if r.onChange != nil {
		r.onChange("remove", filepath.Base(path))
	}
}
