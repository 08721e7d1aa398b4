package config

import (
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads configuration whenever the .env file changes and hands the
// fresh Config to onReload. Editors replace the file on save, so Create
// events are watched alongside Write. Returns a stop function.
//
// If no .env file exists there is nothing to watch and Watch is a no-op.
func Watch(onReload func(*Config)) (func(), error) {
	if _, err := os.Stat(".env"); err != nil {
		return func() {}, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add("."); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != ".env" && event.Name != "./.env" {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				log.Println("Detected .env change, reloading configuration")
				onReload(Load())
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
