// Package watch re-validates dictionary files as they change on disk.
// A debounced fsnotify watcher reacts to saves; an optional cron
// scheduler sweeps all watched files on a fixed schedule.
package watch
