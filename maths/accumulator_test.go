package maths

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/excel-wasm/excel/log"
)

type recordingLogger struct {
	levels   []log.Level
	messages []string
}

func (r *recordingLogger) Log(level log.Level, format string, args ...any) {
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func setRecordingLogger(t *testing.T) *recordingLogger {
	recorder := &recordingLogger{}

	log.SetLogger(recorder)
	t.Cleanup(func() { log.SetLogger(nil) })

	return recorder
}

func TestAccumulatorZeroValue(t *testing.T) {
	var acc Accumulator

	require.Zero(t, acc.Sum())
	require.Zero(t, acc.Count())
	require.Zero(t, acc.Add())
}

func TestAccumulatorMatchesSum(t *testing.T) {
	numbers := []float64{0.1, 0.2, 0.3, 1e17, 1, -1e17, 2.56, -42}

	type test struct {
		name   string
		chunks []int
	}

	tests := []*test{
		{
			name:   "OneCall",
			chunks: []int{8},
		},
		{
			name:   "OnePerCall",
			chunks: []int{1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			name:   "Uneven",
			chunks: []int{3, 0, 4, 1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var (
				acc    Accumulator
				offset int
			)

			for _, size := range test.chunks {
				acc.Add(numbers[offset : offset+size]...)
				offset += size
			}

			require.Equal(t, len(numbers), acc.Count())
			requireSameFloat(t, Sum(numbers), acc.Sum())
		})
	}
}

func TestAccumulatorAddReturnsRunningSum(t *testing.T) {
	var acc Accumulator

	require.Equal(t, 1.0, acc.Add(1))
	require.Equal(t, 6.0, acc.Add(2, 3))
	require.Equal(t, 6.0, acc.Sum())
}

func TestAccumulatorLogsFirstNonFinite(t *testing.T) {
	recorder := setRecordingLogger(t)

	var acc Accumulator

	acc.Add(1, 2)
	require.Empty(t, recorder.messages)

	acc.Add(math.Inf(1), 4)
	acc.Add(math.Inf(-1), math.NaN())

	require.True(t, math.IsNaN(acc.Sum()))
	require.Equal(t, []log.Level{log.LevelDebug}, recorder.levels)
	require.Equal(
		t,
		[]string{"(Maths) Running sum became +Inf after adding element 2 with value +Inf"},
		recorder.messages,
	)
}

func TestAccumulatorReset(t *testing.T) {
	recorder := setRecordingLogger(t)

	var acc Accumulator

	acc.Add(math.NaN())
	acc.Reset()

	require.Zero(t, acc.Sum())
	require.Zero(t, acc.Count())

	// The non-finite notice is re-armed by a reset
	acc.Add(math.Inf(-1))
	require.Len(t, recorder.messages, 2)
}
