package usecase

const (
	// folderNameSuffix is appended to the project name to form its backup
	// folder name.
	folderNameSuffix = " - Asana Backup"

	// documentNamePrefix + documentDateLayout form the spreadsheet title,
	// e.g. "Backup_2026-08-31". Two runs on the same day produce documents
	// with the same title but distinct IDs.
	documentNamePrefix = "Backup_"
	documentDateLayout = "2006-01-02"
)
