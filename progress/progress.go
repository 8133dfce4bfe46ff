package progress

// Reporter receives progress for one unit of work.
type Reporter interface {
	SetTotal(total int64)
	Increment(n int64)
	Finish()
}

// Monitor is the user-facing side of a pipeline run.
type Monitor interface {
	// Phase announces the start of pipeline step n of total.
	Phase(n int, total int, msg string)
	Warn(msg string)
	// Bar returns a reporter labelled with name. Bars created between two
	// Phase calls are shown together.
	Bar(name string) Reporter
	// Wait blocks until every bar handed out so far has finished.
	Wait()
}

type nopReporter struct{}

func (nopReporter) SetTotal(int64)  {}
func (nopReporter) Increment(int64) {}
func (nopReporter) Finish()         {}

func Nop() Reporter {
	return nopReporter{}
}
