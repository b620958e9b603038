/*
* Layouts live in files.  Any number of read only file systems can be
* registered, each with a priority; the file system with the lowest priority
* number that has a path wins.  Saving goes to the single writable file system.
*
* The file extension picks the format: .json or .yaml/.yml.  Rects are written
* with lowercase keys in both formats:
*
*	name: tiles
*	regions:
*	  - name: a
*	    bounds: {x: 0, y: 0, width: 256, height: 256, degrees: 0}
*
* Loaded layouts are cached by path, Load hands out a copy each time so the
* cached value can't be changed behind the store's back.
 */

package region

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	systemLog "log"
	"os"
	"path"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var log = systemLog.New(os.Stderr, "Region ", systemLog.Ltime)

// Path is a slash separated path inside the registered file systems.
type Path string

type fsWrapper struct {
	FileSystem fs.FS
	Priority   int
}

type layoutStore struct {
	FileSystems []*fsWrapper
	WriteFS     WriteableFileSystem

	// Maps a Path to an already loaded layout
	LoadPathToLayout map[Path]*Layout
}

var store = newLayoutStore()

func newLayoutStore() *layoutStore {
	return &layoutStore{
		FileSystems:      []*fsWrapper{},
		LoadPathToLayout: map[Path]*Layout{},
	}
}

// Reset forgets every registered file system and cached layout.
func Reset() {
	store = newLayoutStore()
}

func RegisterFileSystem(filesystem fs.FS, priority int) error {
	if filesystem == nil {
		return fmt.Errorf("nil file system")
	}
	store.AddFS(&fsWrapper{FileSystem: filesystem, Priority: priority})
	return nil
}

func RegisterWritableFileSystem(filesystem WriteableFileSystem) error {
	store.WriteFS = filesystem
	return nil
}

type LoadOptions struct {
	// ForceReload reads the file again even when the path is cached.
	ForceReload bool
}

func Load(layoutPath Path) (*Layout, error) {
	return store.LoadWithOptions(layoutPath, LoadOptions{})
}

func LoadWithOptions(layoutPath Path, options LoadOptions) (*Layout, error) {
	return store.LoadWithOptions(layoutPath, options)
}

func Save(layoutPath Path, layout *Layout) error {
	return store.Save(layoutPath, layout)
}

func ReadFile(layoutPath Path) ([]byte, error) {
	return store.ReadFile(layoutPath)
}

func (s *layoutStore) AddFS(wrapper *fsWrapper) {
	s.FileSystems = append(s.FileSystems, wrapper)
	slices.SortStableFunc(s.FileSystems, func(a, b *fsWrapper) int {
		return a.Priority - b.Priority
	})
}

func (s *layoutStore) ReadFile(layoutPath Path) ([]byte, error) {
	for _, fsys := range s.FileSystems {
		data, err := fs.ReadFile(fsys.FileSystem, string(layoutPath))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("reading %s from fs with priority %d: %v", layoutPath, fsys.Priority, err)
		}
	}
	return nil, fmt.Errorf("unable to find path (%s) in any registered FS", layoutPath)
}

func (s *layoutStore) LoadWithOptions(layoutPath Path, options LoadOptions) (*Layout, error) {
	if cached, ok := s.LoadPathToLayout[layoutPath]; ok && !options.ForceReload {
		return cached.Clone(), nil
	}
	data, err := s.ReadFile(layoutPath)
	if err != nil {
		return nil, err
	}
	layout, err := decode(layoutPath, data)
	if err != nil {
		return nil, err
	}
	if err := layout.PostLoad(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", layoutPath, err)
	}
	s.LoadPathToLayout[layoutPath] = layout
	log.Printf("loaded %s with %d regions", layoutPath, len(layout.Regions))
	return layout.Clone(), nil
}

func (s *layoutStore) Save(layoutPath Path, layout *Layout) error {
	if s.WriteFS == nil {
		return fmt.Errorf("can't save layout - no writable FS")
	}
	if layout == nil {
		return fmt.Errorf("can't save nil layout to %s", layoutPath)
	}
	if formatOf(layoutPath) == "" {
		layoutPath = layoutPath + ".json"
	}
	layout = layout.Clone()
	if err := layout.PostLoad(); err != nil {
		return fmt.Errorf("saving %s: %w", layoutPath, err)
	}
	data, err := encode(layoutPath, layout)
	if err != nil {
		return err
	}
	if err := s.WriteFS.WriteFile(layoutPath, data); err != nil {
		return fmt.Errorf("saving %s: %w", layoutPath, err)
	}
	s.LoadPathToLayout[layoutPath] = layout
	return nil
}

func formatOf(layoutPath Path) string {
	switch strings.ToLower(path.Ext(string(layoutPath))) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

func decode(layoutPath Path, data []byte) (*Layout, error) {
	layout := &Layout{}
	var err error
	switch formatOf(layoutPath) {
	case "json":
		err = json.Unmarshal(data, layout)
	case "yaml":
		err = yaml.Unmarshal(data, layout)
	default:
		return nil, fmt.Errorf("unknown layout format for %s", layoutPath)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", layoutPath, err)
	}
	return layout, nil
}

func encode(layoutPath Path, layout *Layout) ([]byte, error) {
	switch formatOf(layoutPath) {
	case "json":
		return json.MarshalIndent(layout, "", "  ")
	case "yaml":
		return yaml.Marshal(layout)
	}
	return nil, fmt.Errorf("unknown layout format for %s", layoutPath)
}
