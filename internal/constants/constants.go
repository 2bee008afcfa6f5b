package constants

import "time"

const (
	AppName           = "wellness"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/wellness/wellness.db"

	// DateFormat is the standard day-key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// UnlockWindow is how long a newly unlocked achievement stays in the
	// transient notification set
	UnlockWindow = 5 * time.Second

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "wellness-"
	BackupFileSuffix = ".db"
)
