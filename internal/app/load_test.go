package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Egor213/LogiGraph/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	result := domain.LoadResult{BatchID: "b1", Source: "logs.csv", Inserted: 3}

	var out bytes.Buffer
	printResult(&out, result, nil)
	assert.Equal(t, "load b1: 3 rows from logs.csv\n", out.String())

	out.Reset()
	printResult(&out, result, errors.New("row 5: bad"))
	assert.Equal(t, "load b1 failed after 3 rows: row 5: bad\n", out.String())
}
