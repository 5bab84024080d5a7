package constants

const (
	AppName           = "habitloop"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/habitloop/habitloop.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitloop-"

	// StoreVersion is the current version of the JSON store document
	StoreVersion = 2
)
