package repotypes

const DefaultLimit = 100

// LogFilter holds optional equality constraints. Empty strings and a zero
// status code mean "no constraint".
type LogFilter struct {
	Level      string
	Service    string
	StatusCode int
	Env        string
}

type Page struct {
	Limit  uint64
	Offset uint64
}

func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}
