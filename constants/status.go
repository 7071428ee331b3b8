package constants

// JobStatus is the canonical status for rows in import_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // waiting for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusTextOK  JobStatus = "TEXT_OK"  // stage 1 completed (text extracted)
	JobStatusParseOK JobStatus = "PARSE_OK" // stage 2 completed (records parsed)
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)

// ImportMode selects which parsing flow a job runs.
type ImportMode string

const (
	ModePriceList ImportMode = "PRICE_LIST" // mercuriale rows
	ModeRecipe    ImportMode = "RECIPE"     // fiche technique
)
