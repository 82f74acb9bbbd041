package bench

// Listener receives arena progress updates. OnGameFinished is called from
// the worker goroutines, possibly concurrently; OnFinished is called once,
// after every worker is done.
type Listener interface {
	OnGameFinished(info VersusWorkerInfo)
	OnFinished(summary VersusSummaryInfo)
}

// DefaultListener ignores every callback.
type DefaultListener struct{}

func (DefaultListener) OnGameFinished(info VersusWorkerInfo) {}

func (DefaultListener) OnFinished(summary VersusSummaryInfo) {}
