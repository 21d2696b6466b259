package httptransport

import "expvar"

var (
	metricTableCreateTotal = expvar.NewInt("table_create_total")

	metricMoveSubmitTotal  = expvar.NewInt("move_submit_total")
	metricMoveSubmitErrors = expvar.NewInt("move_submit_errors_total")
	metricMoveAllInTotal   = expvar.NewInt("move_allin_total")

	metricBlindPostTotal = expvar.NewInt("blind_post_total")

	metricJournalQueryTotal  = expvar.NewInt("journal_query_total")
	metricJournalQueryErrors = expvar.NewInt("journal_query_errors_total")
)
