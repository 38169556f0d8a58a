package cmd

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// watchContent calls reload once edits under dir settle. Directories created
// after the watch starts are added as they appear.
func watchContent(dir string, reload func() error) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("Error walking %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.Printf("Failed to watch %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.Printf("Change detected: %s (%s)", event.Name, event.Op)
				if event.Has(fsnotify.Create) && isDir(event.Name) {
					if err := watcher.Add(event.Name); err != nil {
						log.Printf("Error adding %s to watcher: %v", event.Name, err)
					}
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					if err := reload(); err != nil {
						log.Printf("Reload failed, keeping previous catalog: %v", err)
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}()

	log.Printf("Watching %s for changes", dir)
	return watcher, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
