package sql

import (
	_ "embed"
)

//go:embed queries/register_load_run.sql
var RegisterLoadRun string

//go:embed queries/lookup_load_run.sql
var LookupLoadRun string

//go:embed queries/update_run_status.sql
var UpdateRunStatus string

//go:embed queries/set_run_counts.sql
var SetRunCounts string

//go:embed queries/analyze_entities.sql
var AnalyzeEntities string
