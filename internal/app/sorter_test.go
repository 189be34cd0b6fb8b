package app

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ZanzyTHEbar/tasksort/internal/domain"
	"github.com/ZanzyTHEbar/tasksort/internal/ports/mocks"
)

func seqOf(pairs []domain.Pair, err error) iter.Seq2[domain.Pair, error] {
	return func(yield func(domain.Pair, error) bool) {
		for _, p := range pairs {
			if !yield(p, nil) {
				return
			}
		}
		if err != nil {
			yield(domain.Pair{}, err)
		}
	}
}

func TestSorter_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockPairReader(ctrl)
	writer := mocks.NewMockPlanWriter(ctrl)

	pairs := []domain.Pair{
		{Dependency: "t1", Task: "t2"},
		{Dependency: "t1", Task: "t3"},
		{Dependency: "t2", Task: "t4"},
	}
	want := domain.Plan{
		Levels: []domain.Level{
			{Depth: 0, Tasks: []string{"t1"}},
			{Depth: 1, Tasks: []string{"t2", "t3"}},
			{Depth: 2, Tasks: []string{"t4"}},
		},
		Edges: pairs,
	}

	reader.EXPECT().ReadPairs(gomock.Any()).Return(seqOf(pairs, nil))
	writer.EXPECT().WritePlan(gomock.Any()).DoAndReturn(func(got domain.Plan) error {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("plan mismatch (-want +got):\n%s", diff)
		}
		return nil
	})

	plan, err := NewSorter(reader, writer, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, plan)
}

func TestSorter_Run_ReadErrorWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockPairReader(ctrl)
	writer := mocks.NewMockPlanWriter(ctrl)

	lineErr := &domain.LineError{Line: 2, Text: "broken"}
	reader.EXPECT().ReadPairs(gomock.Any()).
		Return(seqOf([]domain.Pair{{Dependency: "a", Task: "b"}}, lineErr))
	writer.EXPECT().WritePlan(gomock.Any()).Times(0)

	_, err := NewSorter(reader, writer, zerolog.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedLine)
}

func TestSorter_Run_CycleWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockPairReader(ctrl)
	writer := mocks.NewMockPlanWriter(ctrl)

	reader.EXPECT().ReadPairs(gomock.Any()).Return(seqOf([]domain.Pair{
		{Dependency: "a", Task: "b"},
		{Dependency: "b", Task: "a"},
	}, nil))
	writer.EXPECT().WritePlan(gomock.Any()).Times(0)

	_, err := NewSorter(reader, writer, zerolog.Nop()).Run(context.Background())
	var cycle *domain.CycleError
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, []string{"a", "b", "a"}, cycle.Path)
}

func TestSorter_Run_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockPairReader(ctrl)
	writer := mocks.NewMockPlanWriter(ctrl)

	boom := errors.New("disk full")
	reader.EXPECT().ReadPairs(gomock.Any()).Return(seqOf(nil, nil))
	writer.EXPECT().WritePlan(domain.Plan{Levels: []domain.Level{}, Edges: []domain.Pair{}}).Return(boom)

	_, err := NewSorter(reader, writer, zerolog.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSorter_Run_LogsRunID(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockPairReader(ctrl)
	writer := mocks.NewMockPlanWriter(ctrl)

	reader.EXPECT().ReadPairs(gomock.Any()).Return(seqOf([]domain.Pair{{Dependency: "a", Task: "b"}}, nil))
	writer.EXPECT().WritePlan(gomock.Any()).Return(nil)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := NewSorter(reader, writer, logger).Run(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"run_id":`)
	assert.Contains(t, out, `"tasks":2`)
	assert.Contains(t, out, "task graph built")
	assert.Contains(t, out, "tasks sorted")
}
