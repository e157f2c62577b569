package ports

type GameMetrics interface {
	RecordAction(actionType string)
	RecordDayAdvance()
	RecordConflict()
	RecordFailure()
}
