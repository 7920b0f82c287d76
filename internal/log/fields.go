package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldYear       = "year"
	FieldPath       = "path"
	FieldCSVPath    = "csv_path"
	FieldOutputPath = "output_path"
	FieldRows       = "rows"
	FieldActivities = "activities"
	FieldDuration   = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentSource  = "source"
	ComponentStats   = "stats"
	ComponentRender  = "render"
	ComponentStorage = "storage"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpParse     = "parse"
	OpAggregate = "aggregate"
	OpRender    = "render"
	OpArchive   = "archive"
	OpValidate  = "validate"
	OpStartup   = "startup"
)
